package repository

import (
	"context"
	"time"

	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

// CatalogStore persistencia de productos y categorías (colecciones completas).
type CatalogStore interface {
	GetProducts(ctx context.Context) ([]entity.Product, error)
	SaveProducts(ctx context.Context, products []entity.Product) error
	GetCategories(ctx context.Context) ([]entity.Category, error)
	SaveCategories(ctx context.Context, categories []entity.Category) error
}

// SettingsStore persistencia de la configuración general.
// GetSettings devuelve found=false si nunca se guardó nada.
type SettingsStore interface {
	GetSettings(ctx context.Context) (settings entity.Settings, found bool, err error)
	SaveSettings(ctx context.Context, settings entity.Settings) error
}

// OrderStore persistencia de órdenes con sus líneas.
type OrderStore interface {
	// CreateOrder guarda la cabecera y luego sus ítems.
	CreateOrder(ctx context.Context, order *entity.Order) error
	// UpdateOrder sobrescribe total, cliente, mesa y pago, y reemplaza todos los ítems.
	// Devuelve domain.ErrNotFound si la orden no existe.
	UpdateOrder(ctx context.Context, order *entity.Order) error
	UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error
	// GetOrder devuelve (nil, nil) si no existe.
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]entity.Order, error)
	// ListOrdersByDay devuelve las órdenes creadas en [inicio, fin) del día de `day`
	// (en su zona horaria), de la más nueva a la más antigua.
	ListOrdersByDay(ctx context.Context, day time.Time) ([]entity.Order, error)
}

// Store es el puerto único de persistencia (clave-valor o relacional).
type Store interface {
	CatalogStore
	SettingsStore
	OrderStore
	// Restore reemplaza todo el contenido de forma atómica; nunca mezcla.
	Restore(ctx context.Context, snapshot entity.Snapshot) error
}

// DayRange devuelve [inicio, fin) del día calendario de t.
func DayRange(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
