package handler

import (
	"io"
	"log/slog"
	"net/http"

	"rpromo/internal/delivery/http/response"
	"rpromo/internal/domain/entity"
	"rpromo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PhotoHandler holds dependencies for attachment handlers.
type PhotoHandler struct {
	uc     usecase.PhotoUsecase
	logger *slog.Logger
}

// NewPhotoHandler is the constructor for PhotoHandler, injected by Fx.
func NewPhotoHandler(uc usecase.PhotoUsecase, logger *slog.Logger) *PhotoHandler {
	return &PhotoHandler{uc: uc, logger: logger}
}

// Upload receives one multipart attachment for a registration. The file
// part is named "foto"; the category rides in the "categoria" form field.
func (h *PhotoHandler) Upload(c echo.Context) error {
	personID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador inválido")
	}

	fileHeader, err := c.FormFile("foto")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "Arquivo de foto ausente")
	}

	category := entity.PhotoCategory(c.FormValue("categoria"))
	if category == "" {
		category = entity.PhotoOther
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	photo, err := h.uc.Upload(c.Request().Context(), &usecase.UploadPhotoInput{
		PersonID: personID,
		Name:     fileHeader.Filename,
		MIMEType: fileHeader.Header.Get("Content-Type"),
		Category: category,
		Data:     data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, photo, "Foto enviada com sucesso")
}

// ListByPerson returns the attachment metadata of one registration.
func (h *PhotoHandler) ListByPerson(c echo.Context) error {
	personID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador inválido")
	}

	photos, err := h.uc.ListByPerson(c.Request().Context(), personID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, photos, "")
}

// Get serves the raw attachment bytes with the stored content type.
func (h *PhotoHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador inválido")
	}

	photo, payload, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, photo.MIMEType, payload)
}

// Delete removes one attachment.
func (h *PhotoHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador inválido")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Foto removida com sucesso")
}
