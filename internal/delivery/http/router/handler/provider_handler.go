package handler

import (
	"log/slog"
	"net/http"

	"rpromo/internal/delivery/http/response"
	"rpromo/internal/domain/repository"
	"rpromo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProviderHandler exposes the storage provider selection.
type ProviderHandler struct {
	uc     usecase.ProviderUsecase
	logger *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler, injected by Fx.
func NewProviderHandler(uc usecase.ProviderUsecase, logger *slog.Logger) *ProviderHandler {
	return &ProviderHandler{uc: uc, logger: logger}
}

type switchProviderInput struct {
	Provider string `json:"provider" validate:"required"`
}

type providerStateOutput struct {
	Current   repository.ProviderInfo   `json:"current"`
	Available []repository.ProviderInfo `json:"available"`
}

// State returns the active provider and every registered one.
func (h *ProviderHandler) State(c echo.Context) error {
	return response.Success(c, http.StatusOK, providerStateOutput{
		Current:   h.uc.Current(),
		Available: h.uc.Available(),
	}, "")
}

// Switch activates a different storage provider and reloads the registry.
func (h *ProviderHandler) Switch(c echo.Context) error {
	var input *switchProviderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Provider inválido")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	info, err := h.uc.Use(c.Request().Context(), repository.ProviderKind(input.Provider))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, info, "Provider alterado com sucesso")
}
