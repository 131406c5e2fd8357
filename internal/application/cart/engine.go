// Package cart mantiene el único carrito activo del punto de venta.
// Vive solo en memoria: nunca se persiste por sí mismo.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

// Engine carrito en construcción. Invariante: toda línea presente tiene Quantity > 0
// y hay a lo sumo una línea por producto.
type Engine struct {
	mu    sync.Mutex
	items []entity.CartItem
}

// New construye un carrito vacío.
func New() *Engine {
	return &Engine{}
}

// Add suma una unidad del producto; si no estaba, agrega la línea con cantidad 1 y nota vacía.
func (e *Engine) Add(p entity.Product) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i := e.indexOf(p.ID); i >= 0 {
		e.items[i].Quantity++
		return
	}
	e.items = append(e.items, entity.CartItem{Product: p, Quantity: 1})
}

// AdjustQuantity aplica delta a la línea. Si el resultado es <= 0 la línea se elimina.
// Devuelve false si el producto no estaba en el carrito.
func (e *Engine) AdjustQuantity(productID string, delta int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.indexOf(productID)
	if i < 0 {
		return false
	}
	qty := e.items[i].Quantity + delta
	if qty <= 0 {
		e.items = append(e.items[:i], e.items[i+1:]...)
		return true
	}
	e.items[i].Quantity = qty
	return true
}

// SetNote reemplaza la nota de la línea; no hace nada si la línea no existe.
func (e *Engine) SetNote(productID, note string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.indexOf(productID)
	if i < 0 {
		return false
	}
	e.items[i].Note = note
	return true
}

// Load reemplaza el contenido por las líneas dadas (edición de una orden existente).
// Las líneas con cantidad no positiva se descartan y las repetidas se fusionan.
func (e *Engine) Load(items []entity.CartItem) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = nil
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		if i := e.indexOf(it.ID); i >= 0 {
			e.items[i].Quantity += it.Quantity
			continue
		}
		e.items = append(e.items, it)
	}
}

// Consume descuenta del carrito las líneas ya cobradas. Lo agregado después de
// tomar esas líneas queda en el carrito.
func (e *Engine) Consume(charged []entity.CartItem) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, it := range charged {
		i := e.indexOf(it.ID)
		if i < 0 {
			continue
		}
		e.items[i].Quantity -= it.Quantity
		if e.items[i].Quantity <= 0 {
			e.items = append(e.items[:i], e.items[i+1:]...)
		}
	}
}

// Clear vacía el carrito.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = nil
}

// Items devuelve una copia de las líneas en orden de inserción.
func (e *Engine) Items() []entity.CartItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]entity.CartItem(nil), e.items...)
}

// Len número de líneas.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.items)
}

// Total suma de precio × cantidad; siempre derivado de las líneas.
func (e *Engine) Total() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return entity.ItemsTotal(e.items)
}

func (e *Engine) indexOf(productID string) int {
	for i := range e.items {
		if e.items[i].ID == productID {
			return i
		}
	}
	return -1
}
