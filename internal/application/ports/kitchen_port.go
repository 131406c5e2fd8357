package ports

import (
	"context"
	"time"

	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

// Tipos de evento de cocina.
const (
	KitchenOrderCreated   = "order.created"
	KitchenOrderUpdated   = "order.updated"
	KitchenOrderDelivered = "order.delivered"
)

// KitchenEvent aviso a las pantallas de cocina sobre un cambio de orden.
type KitchenEvent struct {
	Type       string             `json:"type"`
	OrderID    string             `json:"order_id"`
	Client     string             `json:"client"`
	Table      string             `json:"table"`
	Status     entity.OrderStatus `json:"status"`
	Items      []entity.CartItem  `json:"items,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// NewKitchenEvent arma el evento a partir de la orden.
func NewKitchenEvent(eventType string, o entity.Order, at time.Time) KitchenEvent {
	return KitchenEvent{
		Type:       eventType,
		OrderID:    o.ID,
		Client:     o.Client,
		Table:      o.Table,
		Status:     o.Status,
		Items:      o.Items,
		OccurredAt: at,
	}
}

// KitchenNotifier puerto de salida para publicar eventos de despacho.
// La publicación es de mejor esfuerzo: un fallo nunca revierte la orden.
type KitchenNotifier interface {
	Publish(ctx context.Context, event KitchenEvent) error
}

// NoopKitchenNotifier descarta los eventos (sin broker configurado).
type NoopKitchenNotifier struct{}

func (NoopKitchenNotifier) Publish(context.Context, KitchenEvent) error { return nil }
