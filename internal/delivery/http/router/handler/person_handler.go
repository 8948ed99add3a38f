// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"rpromo/internal/delivery/http/response"
	"rpromo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateLayout is the wire format for the creation date range filters.
const dateLayout = "2006-01-02"

// PersonHandler holds dependencies for registration-related handlers.
type PersonHandler struct {
	uc     usecase.PersonUsecase
	logger *slog.Logger
}

// NewPersonHandler is the constructor for PersonHandler, injected by Fx.
func NewPersonHandler(uc usecase.PersonUsecase, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{uc: uc, logger: logger}
}

// List returns the collection. With filter query params it searches; bare
// it returns the full registry snapshot, stale data plus error included
// when the provider is down.
func (h *PersonHandler) List(c echo.Context) error {
	input, err := searchInputFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", "Filtro de busca inválido")
	}

	ctx := c.Request().Context()

	if !input.Filters().Empty() {
		people, err := h.uc.Search(ctx, input)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, people, "")
	}

	snapshot, err := h.uc.List(ctx)
	if err != nil && len(snapshot.People) == 0 {
		return errors.WithStack(err)
	}

	// A stale snapshot still serves; LastError explains why.
	return response.Success(c, http.StatusOK, snapshot, "")
}

// Get returns one registration by id.
func (h *PersonHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador inválido")
	}

	person, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, person, "")
}

// Create registers a new person.
func (h *PersonHandler) Create(c echo.Context) error {
	var input *usecase.CreatePersonInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de cadastro inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	person, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, person, "Cadastro realizado com sucesso")
}

// Update merges a partial update into a registration.
func (h *PersonHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador inválido")
	}

	var input *usecase.UpdatePersonInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de atualização inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	person, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, person, "Cadastro atualizado com sucesso")
}

// Delete removes a registration and its attachments.
func (h *PersonHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador inválido")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Cadastro removido com sucesso")
}

// ChangeStatus activates or inactivates a registration.
func (h *PersonHandler) ChangeStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador inválido")
	}

	var input *usecase.ChangeStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de status inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	person, err := h.uc.ChangeStatus(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, person, "Status atualizado com sucesso")
}

// Stats returns the dashboard summary.
func (h *PersonHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// FilterOptions returns the distinct values available to the search form.
func (h *PersonHandler) FilterOptions(c echo.Context) error {
	options, err := h.uc.FilterOptions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, options, "")
}

// searchInputFromQuery reads the filter query params. The date range uses
// whole days: dataFim is extended to the end of its day so the bound stays
// inclusive.
func searchInputFromQuery(c echo.Context) (usecase.SearchInput, error) {
	input := usecase.SearchInput{
		Term:         c.QueryParam("termo"),
		Status:       c.QueryParam("status"),
		Neighborhood: c.QueryParam("bairro"),
		City:         c.QueryParam("cidade"),
	}

	if raw := c.QueryParam("dataInicio"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			return input, err
		}
		input.DateFrom = &from
	}

	if raw := c.QueryParam("dataFim"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return input, err
		}
		to := parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
		input.DateTo = &to
	}

	return input, nil
}
