package usecase

import (
	"github.com/jhoicas/comanda-eventos/internal/application/dto"
	"github.com/jhoicas/comanda-eventos/internal/application/session"
	"github.com/jhoicas/comanda-eventos/internal/domain"
)

// CartUseCase operaciones del carrito activo resolviendo productos del catálogo.
type CartUseCase struct {
	state *session.State
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(state *session.State) *CartUseCase {
	return &CartUseCase{state: state}
}

// Get estado actual del carrito.
func (uc *CartUseCase) Get() dto.CartResponse {
	c := uc.state.Cart()
	return dto.CartResponse{
		Items:     c.Items(),
		Total:     c.Total(),
		EditingID: uc.state.EditingID(),
	}
}

// Add agrega una unidad del producto. El producto debe existir en el catálogo.
func (uc *CartUseCase) Add(productID string) (dto.CartResponse, error) {
	p, ok := uc.state.Product(productID)
	if !ok {
		return dto.CartResponse{}, domain.ErrNotFound
	}
	uc.state.Cart().Add(p)
	return uc.Get(), nil
}

// Adjust suma delta a la línea; llegar a cero la elimina. Línea ausente: no-op.
func (uc *CartUseCase) Adjust(productID string, delta int) dto.CartResponse {
	uc.state.Cart().AdjustQuantity(productID, delta)
	return uc.Get()
}

// SetNote reemplaza la nota de la línea. Línea ausente: no-op.
func (uc *CartUseCase) SetNote(productID, note string) dto.CartResponse {
	uc.state.Cart().SetNote(productID, note)
	return uc.Get()
}

// Clear vacía el carrito (no cancela la edición en curso).
func (uc *CartUseCase) Clear() dto.CartResponse {
	uc.state.Cart().Clear()
	return uc.Get()
}
