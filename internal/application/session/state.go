// Package session contiene el contenedor de estado de la aplicación: catálogo,
// configuración, órdenes en despacho, carrito y vista actual. Se crea al inicio
// del proceso desde el Store y se inyecta en los casos de uso.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/comanda-eventos/internal/application/cart"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
	"github.com/jhoicas/comanda-eventos/internal/domain/repository"
)

// View pantalla activa del POS.
type View string

const (
	ViewPOS      View = "pos"
	ViewDispatch View = "dispatch"
	ViewHistory  View = "history"
	ViewSettings View = "settings"
)

// Valid indica si v es una de las cuatro pantallas.
func (v View) Valid() bool {
	switch v {
	case ViewPOS, ViewDispatch, ViewHistory, ViewSettings:
		return true
	}
	return false
}

// State estado en memoria. Todas las lecturas devuelven copias.
type State struct {
	mu         sync.RWMutex
	products   []entity.Product
	categories []entity.Category
	settings   entity.Settings
	orders     []entity.Order // conjunto de despacho, la más nueva primero
	editingID  string
	view       View
	inFlight   bool

	cart *cart.Engine
}

// New construye un estado vacío con el carrito dado (nil = carrito nuevo).
func New(c *cart.Engine) *State {
	if c == nil {
		c = cart.New()
	}
	return &State{cart: c, view: ViewPOS}
}

// Load crea el estado desde el Store. En el primer arranque (sin configuración
// guardada) persiste el catálogo inicial y la configuración por defecto; después
// un catálogo vacío se respeta.
func Load(ctx context.Context, store repository.Store, defaults Defaults) (*State, error) {
	s := New(nil)

	settings, found, err := store.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("session: cargar configuración: %w", err)
	}
	products, err := store.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("session: cargar productos: %w", err)
	}
	categories, err := store.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("session: cargar categorías: %w", err)
	}

	if !found {
		if len(products) == 0 && len(defaults.Products) > 0 {
			products = append([]entity.Product(nil), defaults.Products...)
			if err := store.SaveProducts(ctx, products); err != nil {
				return nil, fmt.Errorf("session: guardar catálogo inicial: %w", err)
			}
		}
		if len(categories) == 0 && len(defaults.Categories) > 0 {
			categories = append([]entity.Category(nil), defaults.Categories...)
			if err := store.SaveCategories(ctx, categories); err != nil {
				return nil, fmt.Errorf("session: guardar categorías iniciales: %w", err)
			}
		}
	}
	if settings.RestaurantName == "" {
		settings.RestaurantName = defaults.Settings.RestaurantName
	}
	if settings.EventType == "" {
		settings.EventType = defaults.Settings.EventType
	}
	if !found {
		if err := store.SaveSettings(ctx, settings); err != nil {
			return nil, fmt.Errorf("session: guardar configuración: %w", err)
		}
	}

	orders, err := store.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("session: cargar órdenes: %w", err)
	}

	s.products = products
	s.categories = categories
	s.settings = settings
	s.orders = PendingOnly(orders)
	return s, nil
}

// PendingOnly filtra las órdenes aún no entregadas.
func PendingOnly(orders []entity.Order) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsPending() {
			out = append(out, o.Clone())
		}
	}
	return out
}

// Cart carrito activo.
func (s *State) Cart() *cart.Engine { return s.cart }

func (s *State) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Product(nil), s.products...)
}

// Product busca un producto por ID.
func (s *State) Product(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

func (s *State) SetProducts(products []entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]entity.Product(nil), products...)
}

func (s *State) Categories() []entity.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Category(nil), s.categories...)
}

func (s *State) SetCategories(categories []entity.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]entity.Category(nil), categories...)
}

func (s *State) Settings() entity.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *State) SetSettings(settings entity.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// Orders conjunto de despacho (copia).
func (s *State) Orders() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

func (s *State) SetOrders(orders []entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make([]entity.Order, len(orders))
	for i, o := range orders {
		s.orders[i] = o.Clone()
	}
}

// PushOrder antepone una orden al conjunto de despacho.
func (s *State) PushOrder(o entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]entity.Order{o.Clone()}, s.orders...)
}

// RemoveOrder saca una orden del conjunto de despacho si está presente.
func (s *State) RemoveOrder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return
		}
	}
}

// Order busca en el conjunto de despacho.
func (s *State) Order(id string) (entity.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return entity.Order{}, false
}

// MarkDelivered cambia el estado en el conjunto de despacho. Devuelve false si la
// orden no está en él.
func (s *State) MarkDelivered(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = entity.OrderStatusDelivered
			return true
		}
	}
	return false
}

// PendingCount cantidad de órdenes pendientes (badge de cocina).
func (s *State) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, o := range s.orders {
		if o.IsPending() {
			n++
		}
	}
	return n
}

// EditingID orden que se está editando ("" si ninguna).
func (s *State) EditingID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editingID
}

func (s *State) SetEditingID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = id
}

func (s *State) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *State) SetView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
}

// BeginCheckout marca un cobro en curso. Devuelve false si ya había uno.
func (s *State) BeginCheckout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

// EndCheckout libera la marca de cobro en curso.
func (s *State) EndCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
}
