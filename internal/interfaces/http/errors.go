package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comanda-eventos/internal/application/dto"
	"github.com/jhoicas/comanda-eventos/internal/domain"
)

// writeError traduce los errores de dominio a status HTTP + dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrInvalidBackup):
		status, code = fiber.StatusBadRequest, "INVALID_BACKUP"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrCategoryInUse):
		status, code = fiber.StatusConflict, "CATEGORY_IN_USE"
	case errors.Is(err, domain.ErrCheckoutInProgress):
		status, code = fiber.StatusConflict, "CHECKOUT_IN_PROGRESS"
	case errors.Is(err, domain.ErrEmptyCart):
		status, code = fiber.StatusUnprocessableEntity, "EMPTY_CART"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
