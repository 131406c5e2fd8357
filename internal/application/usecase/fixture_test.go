package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comanda-eventos/internal/application/ports"
	"github.com/jhoicas/comanda-eventos/internal/application/session"
	"github.com/jhoicas/comanda-eventos/internal/application/usecase"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
	"github.com/jhoicas/comanda-eventos/internal/domain/repository"
	"github.com/jhoicas/comanda-eventos/internal/infrastructure/kvstore"
	"github.com/jhoicas/comanda-eventos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var (
	burger = entity.Product{ID: "p1", Name: "Hamburguesa", Price: decimal.NewFromInt(8500), Category: "Comida"}
	soda   = entity.Product{ID: "p2", Name: "Gaseosa", Price: decimal.NewFromInt(2500), Category: "Bebidas"}
)

type fixture struct {
	store    *kvstore.Store
	state    *session.State
	catalog  *usecase.CatalogUseCase
	orders   *usecase.OrderUseCase
	cart     *usecase.CartUseCase
	settings *usecase.SettingsUseCase
	notifier *recordingNotifier
}

// newFixture arma los casos de uso sobre un store en memoria con dos productos.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kvstore.NewStore(kvstore.NewMemoryKV())
	return newFixtureWithStore(t, store, store)
}

func newFixtureWithStore(t *testing.T, store *kvstore.Store, orderStore repository.OrderStore) *fixture {
	t.Helper()
	state, err := session.Load(context.Background(), store, session.Defaults{
		Settings:   entity.Settings{RestaurantName: "La Parrilla", EventType: "Feria"},
		Categories: []entity.Category{"Comida", "Bebidas"},
		Products:   []entity.Product{burger, soda},
	})
	require.NoError(t, err)

	log := logger.Nop()
	notifier := &recordingNotifier{}
	return &fixture{
		store:    store,
		state:    state,
		catalog:  usecase.NewCatalogUseCase(state, store, log),
		orders:   usecase.NewOrderUseCase(state, orderStore, notifier, log),
		cart:     usecase.NewCartUseCase(state),
		settings: usecase.NewSettingsUseCase(state, store, log),
		notifier: notifier,
	}
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []ports.KitchenEvent
}

func (n *recordingNotifier) Publish(_ context.Context, e ports.KitchenEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
	return nil
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.events))
	for i, e := range n.events {
		out[i] = e.Type
	}
	return out
}

// failingOrderStore falla en todas las escrituras de órdenes.
type failingOrderStore struct {
	repository.OrderStore
	err error
}

func (f failingOrderStore) CreateOrder(context.Context, *entity.Order) error { return f.err }
func (f failingOrderStore) UpdateOrder(context.Context, *entity.Order) error { return f.err }
func (f failingOrderStore) UpdateOrderStatus(context.Context, string, entity.OrderStatus) error {
	return f.err
}

// failingCatalogStore falla al guardar el catálogo.
type failingCatalogStore struct {
	repository.CatalogStore
	err error
}

func (f failingCatalogStore) SaveProducts(context.Context, []entity.Product) error    { return f.err }
func (f failingCatalogStore) SaveCategories(context.Context, []entity.Category) error { return f.err }
