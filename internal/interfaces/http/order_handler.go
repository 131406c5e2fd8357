package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comanda-eventos/internal/application/dto"
	"github.com/jhoicas/comanda-eventos/internal/application/usecase"
)

// OrderHandler cobro, despacho, edición y ticket.
type OrderHandler struct {
	orders  *usecase.OrderUseCase
	tickets *usecase.TicketUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(orders *usecase.OrderUseCase, tickets *usecase.TicketUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, tickets: tickets}
}

// Checkout godoc
// @Summary      Cobrar el carrito (crea la orden o confirma la edición)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Cliente, mesa y medio de pago"
// @Success      201   {object}  entity.Order
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders/checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	order, err := h.orders.Checkout(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// Dispatch godoc
// @Summary      Tablero de cocina
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.DispatchBoardResponse
// @Router       /api/orders/dispatch [get]
func (h *OrderHandler) Dispatch(c *fiber.Ctx) error {
	return c.JSON(h.orders.DispatchBoard())
}

// Deliver godoc
// @Summary      Marcar orden como entregada (idempotente)
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  entity.Order
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/deliver [post]
func (h *OrderHandler) Deliver(c *fiber.Ctx) error {
	order, err := h.orders.Deliver(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(order)
}

// LoadForEdit godoc
// @Summary      Cargar una orden en el carrito para editarla
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  entity.Order
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/edit [post]
func (h *OrderHandler) LoadForEdit(c *fiber.Ctx) error {
	order, err := h.orders.LoadForEdit(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(order)
}

// CancelEdit godoc
// @Summary      Descartar la edición en curso
// @Tags         orders
// @Success      204
// @Router       /api/orders/edit [delete]
func (h *OrderHandler) CancelEdit(c *fiber.Ctx) error {
	h.orders.CancelEdit()
	return c.SendStatus(fiber.StatusNoContent)
}

// Ticket godoc
// @Summary      Ticket de venta en PDF (80 mm)
// @Tags         orders
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/ticket [get]
func (h *OrderHandler) Ticket(c *fiber.Ctx) error {
	pdf, fileName, err := h.tickets.Download(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.Send(pdf)
}
