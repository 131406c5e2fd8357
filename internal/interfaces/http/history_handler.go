package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comanda-eventos/internal/application/usecase"
)

// HistoryHandler historial de ventas y KPIs.
type HistoryHandler struct {
	uc  *usecase.HistoryUseCase
	now func() time.Time
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc, now: time.Now}
}

// Get godoc
// @Summary      Órdenes y KPIs de un día
// @Tags         history
// @Produce      json
// @Param        date  query  string  false  "Día YYYY-MM-DD (por defecto hoy)"
// @Param        all   query  bool    false  "Historial completo"
// @Success      200   {object}  dto.HistoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/history [get]
func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	if c.QueryBool("all", false) {
		out, err := h.uc.All(c.UserContext())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}

	day := h.now()
	if s := c.Query("date"); s != "" {
		parsed, err := h.uc.ParseDay(s)
		if err != nil {
			return writeError(c, err)
		}
		day = parsed
	}
	out, err := h.uc.Day(c.UserContext(), day)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
