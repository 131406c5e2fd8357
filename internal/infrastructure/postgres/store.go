package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
	"github.com/jhoicas/comanda-eventos/internal/domain/repository"
)

var _ repository.Store = (*Store)(nil)

// Store implementa repository.Store sobre PostgreSQL. Las lecturas van al pool;
// toda escritura corre en una transacción.
type Store struct {
	catalog  *CatalogRepo
	settings *SettingsRepo
	orders   *OrderRepo
	tx       *TxRunner
}

// NewStore construye el store relacional.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		catalog:  NewCatalogRepository(pool),
		settings: NewSettingsRepository(pool),
		orders:   NewOrderRepository(pool),
		tx:       NewTxRunner(pool),
	}
}

func (s *Store) GetProducts(ctx context.Context) ([]entity.Product, error) {
	return s.catalog.Products(ctx)
}

func (s *Store) SaveProducts(ctx context.Context, products []entity.Product) error {
	return s.tx.Run(ctx, func(r Repos) error {
		return r.Catalog.ReplaceProducts(ctx, products)
	})
}

func (s *Store) GetCategories(ctx context.Context) ([]entity.Category, error) {
	return s.catalog.Categories(ctx)
}

func (s *Store) SaveCategories(ctx context.Context, categories []entity.Category) error {
	return s.tx.Run(ctx, func(r Repos) error {
		return r.Catalog.ReplaceCategories(ctx, categories)
	})
}

func (s *Store) GetSettings(ctx context.Context) (entity.Settings, bool, error) {
	return s.settings.Get(ctx)
}

func (s *Store) SaveSettings(ctx context.Context, settings entity.Settings) error {
	return s.settings.Save(ctx, settings)
}

// CreateOrder cabecera e ítems en la misma transacción: nunca queda una orden sin ítems.
func (s *Store) CreateOrder(ctx context.Context, order *entity.Order) error {
	return s.tx.Run(ctx, func(r Repos) error {
		return r.Orders.Create(ctx, order)
	})
}

func (s *Store) UpdateOrder(ctx context.Context, order *entity.Order) error {
	return s.tx.Run(ctx, func(r Repos) error {
		return r.Orders.Update(ctx, order)
	})
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	return s.orders.UpdateStatus(ctx, id, status)
}

func (s *Store) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *Store) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return s.orders.List(ctx)
}

func (s *Store) ListOrdersByDay(ctx context.Context, day time.Time) ([]entity.Order, error) {
	start, end := repository.DayRange(day)
	return s.orders.ListBetween(ctx, start, end)
}

// Restore vacía y recarga todas las tablas en una sola transacción.
func (s *Store) Restore(ctx context.Context, snapshot entity.Snapshot) error {
	return s.tx.Run(ctx, func(r Repos) error {
		if err := r.Orders.Clear(ctx); err != nil {
			return err
		}
		if err := r.Catalog.ReplaceProducts(ctx, snapshot.Products); err != nil {
			return err
		}
		if err := r.Catalog.ReplaceCategories(ctx, snapshot.Categories); err != nil {
			return err
		}
		if err := r.Settings.Clear(ctx); err != nil {
			return err
		}
		if err := r.Settings.Save(ctx, snapshot.Settings); err != nil {
			return err
		}
		return r.Orders.BulkInsert(ctx, snapshot.Orders)
	})
}
