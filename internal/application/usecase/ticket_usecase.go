package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/comanda-eventos/internal/application/ports"
	"github.com/jhoicas/comanda-eventos/internal/application/session"
)

// TicketUseCase genera el ticket PDF de una orden.
type TicketUseCase struct {
	orders    *OrderUseCase
	state     *session.State
	generator ports.TicketPDFGenerator
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(orders *OrderUseCase, state *session.State, generator ports.TicketPDFGenerator) *TicketUseCase {
	return &TicketUseCase{orders: orders, state: state, generator: generator}
}

// Download devuelve los bytes del PDF y el nombre de archivo ticket_<últimos 8 del ID>.pdf.
func (uc *TicketUseCase) Download(ctx context.Context, orderID string) ([]byte, string, error) {
	order, err := uc.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateTicketPDF(ctx, order, uc.state.Settings().RestaurantName)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("ticket_%s.pdf", ShortID(order.ID)), nil
}

// ShortID últimos 8 caracteres del ID (como se imprime en el ticket).
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
