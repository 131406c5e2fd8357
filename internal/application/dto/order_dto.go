package dto

import "github.com/jhoicas/comanda-eventos/internal/domain/entity"

// CheckoutRequest datos del cobro. Cliente y mesa vacíos se registran como "Mostrador".
type CheckoutRequest struct {
	Client  string               `json:"client"`
	Table   string               `json:"table"`
	Payment entity.PaymentMethod `json:"payment"`
}

// DispatchBoardResponse órdenes de cocina (pendientes primero) y badge de pendientes.
type DispatchBoardResponse struct {
	Orders       []entity.Order `json:"orders"`
	PendingCount int            `json:"pending_count"`
}
