package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/comanda-eventos/internal/domain"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
	"github.com/jhoicas/comanda-eventos/internal/domain/repository"
)

// Claves de cada colección.
const (
	KeyProducts       = "comanda_productos"
	KeyOrders         = "comanda_ordenes"
	KeyCategories     = "comanda_categorias"
	KeyRestaurantName = "comanda_restaurant_name"
	KeyEventType      = "comanda_event_type"
)

var _ repository.Store = (*Store)(nil)

// Store adaptador de persistencia sobre KV. Las órdenes se guardan como una sola
// colección (la más nueva primero), por lo que toda escritura de órdenes es
// lectura-modificación-escritura serializada por mu.
type Store struct {
	kv KV
	mu sync.Mutex
}

// NewStore construye el adaptador.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) GetProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := s.getJSON(ctx, KeyProducts, &products); err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return products, nil
}

func (s *Store) SaveProducts(ctx context.Context, products []entity.Product) error {
	if err := s.setJSON(ctx, KeyProducts, nonNil(products)); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	return nil
}

func (s *Store) GetCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := s.getJSON(ctx, KeyCategories, &categories); err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return categories, nil
}

func (s *Store) SaveCategories(ctx context.Context, categories []entity.Category) error {
	if err := s.setJSON(ctx, KeyCategories, nonNil(categories)); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	return nil
}

// GetSettings lee nombre y tipo de evento; se guardan como texto plano.
func (s *Store) GetSettings(ctx context.Context) (entity.Settings, bool, error) {
	name, okName, err := s.kv.Get(ctx, KeyRestaurantName)
	if err != nil {
		return entity.Settings{}, false, fmt.Errorf("get restaurant name: %w", err)
	}
	eventType, okType, err := s.kv.Get(ctx, KeyEventType)
	if err != nil {
		return entity.Settings{}, false, fmt.Errorf("get event type: %w", err)
	}
	return entity.Settings{RestaurantName: string(name), EventType: string(eventType)}, okName || okType, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings entity.Settings) error {
	err := s.kv.SetMany(ctx, map[string][]byte{
		KeyRestaurantName: []byte(settings.RestaurantName),
		KeyEventType:      []byte(settings.EventType),
	})
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// CreateOrder antepone la orden a la colección. Cabecera e ítems viajan en el
// mismo documento, así que no hay estado intermedio.
func (s *Store) CreateOrder(ctx context.Context, order *entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		if o.ID == order.ID {
			return domain.ErrDuplicate
		}
	}
	orders = append([]entity.Order{order.Clone()}, orders...)
	return s.saveOrders(ctx, orders)
}

func (s *Store) UpdateOrder(ctx context.Context, order *entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return err
	}
	i := indexOf(orders, order.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	o := &orders[i]
	o.Total = order.Total
	o.Client = order.Client
	o.Table = order.Table
	o.Payment = order.Payment
	o.Items = append([]entity.CartItem(nil), order.Items...)
	return s.saveOrders(ctx, orders)
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return err
	}
	i := indexOf(orders, id)
	if i < 0 {
		return domain.ErrNotFound
	}
	orders[i].Status = status
	return s.saveOrders(ctx, orders)
}

func (s *Store) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOf(orders, id); i >= 0 {
		o := orders[i]
		return &o, nil
	}
	return nil, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return s.loadOrders(ctx)
}

func (s *Store) ListOrdersByDay(ctx context.Context, day time.Time) ([]entity.Order, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	start, end := repository.DayRange(day)
	var out []entity.Order
	for _, o := range orders {
		if !o.Date.Before(start) && o.Date.Before(end) {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// Restore escribe las cinco claves en una sola operación atómica del KV.
func (s *Store) Restore(ctx context.Context, snapshot entity.Snapshot) error {
	values := make(map[string][]byte, 5)
	for key, v := range map[string]any{
		KeyProducts:   nonNil(snapshot.Products),
		KeyCategories: nonNil(snapshot.Categories),
		KeyOrders:     nonNil(snapshot.Orders),
	} {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("restore: encode %s: %w", key, err)
		}
		values[key] = b
	}
	values[KeyRestaurantName] = []byte(snapshot.Settings.RestaurantName)
	values[KeyEventType] = []byte(snapshot.Settings.EventType)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.SetMany(ctx, values); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	return nil
}

func (s *Store) loadOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := s.getJSON(ctx, KeyOrders, &orders); err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return orders, nil
}

func (s *Store) saveOrders(ctx context.Context, orders []entity.Order) error {
	if err := s.setJSON(ctx, KeyOrders, orders); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

func (s *Store) getJSON(ctx context.Context, key string, dest any) error {
	data, found, err := s.kv.Get(ctx, key)
	if err != nil || !found {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, data)
}

func indexOf(orders []entity.Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}

// nonNil evita guardar "null" en lugar de una colección vacía.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
