package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comanda-eventos/internal/application/dto"
	"github.com/jhoicas/comanda-eventos/internal/application/session"
	"github.com/jhoicas/comanda-eventos/internal/application/usecase"
)

// SettingsHandler configuración general y pantalla activa.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Configuración general
// @Tags         settings
// @Produce      json
// @Success      200  {object}  entity.Settings
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get())
}

// Update godoc
// @Summary      Guardar nombre del local y tipo de evento
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettingsRequest  true  "Configuración"
// @Success      200   {object}  entity.Settings
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.SettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), in.RestaurantName, in.EventType)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetView godoc
// @Summary      Pantalla activa y badge de pendientes
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.ViewResponse
// @Router       /api/view [get]
func (h *SettingsHandler) GetView(c *fiber.Ctx) error {
	return c.JSON(h.viewResponse())
}

// SetView godoc
// @Summary      Cambiar de pantalla (pos, dispatch, history, settings)
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ViewRequest  true  "Pantalla"
// @Success      200   {object}  dto.ViewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/view [put]
func (h *SettingsHandler) SetView(c *fiber.Ctx) error {
	var in dto.ViewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetView(session.View(in.View)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.viewResponse())
}

func (h *SettingsHandler) viewResponse() dto.ViewResponse {
	return dto.ViewResponse{View: string(h.uc.View()), PendingCount: h.uc.PendingCount()}
}
