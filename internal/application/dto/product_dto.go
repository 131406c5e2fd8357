package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o actualizar un producto.
type ProductRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// CategoryRequest entrada para crear una categoría.
type CategoryRequest struct {
	Name string `json:"name"`
}
