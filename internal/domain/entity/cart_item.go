package entity

import "github.com/shopspring/decimal"

// CartItem es una línea del carrito: copia del producto más cantidad y nota libre.
// También es la instantánea que se guarda dentro de cada Order.
type CartItem struct {
	Product
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

// Subtotal devuelve precio × cantidad.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ItemsTotal suma los subtotales de las líneas.
func ItemsTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
