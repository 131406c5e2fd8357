package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

// AddCartItemRequest body de POST /api/cart/items.
type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
}

// AdjustCartItemRequest body de PATCH /api/cart/items/:id.
type AdjustCartItemRequest struct {
	Delta int `json:"delta"`
}

// CartNoteRequest body de PUT /api/cart/items/:id/note.
type CartNoteRequest struct {
	Note string `json:"note"`
}

// CartResponse estado del carrito activo.
type CartResponse struct {
	Items     []entity.CartItem `json:"items"`
	Total     decimal.Decimal   `json:"total"`
	EditingID string            `json:"editing_id,omitempty"` // orden en edición, si la hay
}
