package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medios de pago aceptados en caja.
const (
	PaymentCash     PaymentMethod = "Efectivo"
	PaymentCard     PaymentMethod = "Tarjeta"
	PaymentTransfer PaymentMethod = "Transferencia"
)

// Estados de despacho de una orden. La única transición es pending → delivered.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
)

// CounterLabel se usa como cliente y mesa cuando se dejan en blanco al cobrar.
const CounterLabel = "Mostrador"

// PaymentMethod medio de pago de la orden.
type PaymentMethod string

// Valid indica si el medio de pago es uno de los soportados.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// OrderStatus estado de despacho en cocina.
type OrderStatus string

// Valid indica si el estado es pending o delivered.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusDelivered
}

// Order es una venta confirmada. Total e Items son una instantánea tomada al cobrar
// y no se recalculan si cambia el catálogo.
type Order struct {
	ID      string          `json:"id"`
	Date    time.Time       `json:"date"`
	Client  string          `json:"client"`
	Table   string          `json:"table"`
	Payment PaymentMethod   `json:"payment"`
	Status  OrderStatus     `json:"status"`
	Total   decimal.Decimal `json:"total"`
	Items   []CartItem      `json:"items"`
}

// IsPending indica si la orden aún no fue entregada.
func (o Order) IsPending() bool { return o.Status == OrderStatusPending }

// Clone devuelve una copia con su propio slice de ítems.
func (o Order) Clone() Order {
	o.Items = append([]CartItem(nil), o.Items...)
	return o
}
