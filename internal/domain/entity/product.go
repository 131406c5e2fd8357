package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo de venta.
// La categoría se referencia por nombre, no por ID.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category Category        `json:"category"`
}
