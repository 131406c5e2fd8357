package ports

import (
	"context"

	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

// TicketPDFGenerator genera el ticket de venta (80 mm) de una orden.
type TicketPDFGenerator interface {
	GenerateTicketPDF(ctx context.Context, order *entity.Order, restaurantName string) ([]byte, error)
}
