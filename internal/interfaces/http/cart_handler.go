package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comanda-eventos/internal/application/dto"
	"github.com/jhoicas/comanda-eventos/internal/application/usecase"
)

// CartHandler carrito activo del POS.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Ver carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get())
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	return c.JSON(h.uc.Clear())
}

// AddItem godoc
// @Summary      Agregar una unidad de un producto
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Producto"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Add(in.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AdjustItem godoc
// @Summary      Sumar o restar cantidad (llegar a 0 elimina la línea)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.AdjustCartItemRequest  true  "Delta"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/items/{id} [patch]
func (h *CartHandler) AdjustItem(c *fiber.Ctx) error {
	var in dto.AdjustCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.Adjust(c.Params("id"), in.Delta))
}

// SetNote godoc
// @Summary      Nota de cocina de una línea
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.CartNoteRequest  true  "Nota"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/items/{id}/note [put]
func (h *CartHandler) SetNote(c *fiber.Ctx) error {
	var in dto.CartNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.SetNote(c.Params("id"), in.Note))
}
