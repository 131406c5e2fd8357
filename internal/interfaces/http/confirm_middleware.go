package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comanda-eventos/internal/application/dto"
)

// RequireConfirmation protege las acciones destructivas (borrar producto o
// categoría, restaurar respaldo). Sin ?confirm=true responde 428 y no ejecuta nada.
func RequireConfirmation(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !c.QueryBool("confirm", false) {
			return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{
				Code:    "CONFIRMATION_REQUIRED",
				Message: "confirme la acción '" + action + "' con ?confirm=true",
			})
		}
		return c.Next()
	}
}
