package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comanda-eventos/internal/application/backup"
	"github.com/jhoicas/comanda-eventos/internal/application/dto"
	"github.com/jhoicas/comanda-eventos/internal/application/session"
	"github.com/jhoicas/comanda-eventos/internal/application/usecase"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
	"github.com/jhoicas/comanda-eventos/internal/infrastructure/kvstore"
	apphttp "github.com/jhoicas/comanda-eventos/internal/interfaces/http"
	"github.com/jhoicas/comanda-eventos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type stubTicket struct{}

func (stubTicket) GenerateTicketPDF(context.Context, *entity.Order, string) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

type testEnv struct {
	app   *fiber.App
	state *session.State
	store *kvstore.Store
}

// buildTestApp arma la API completa sobre el store en memoria con el catálogo inicial.
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()
	store := kvstore.NewStore(kvstore.NewMemoryKV())
	state, err := session.Load(context.Background(), store, session.DefaultCatalog(entity.Settings{
		RestaurantName: "Mi Restaurante", EventType: "Evento Gastronómico",
	}))
	require.NoError(t, err)

	log := logger.Nop()
	orders := usecase.NewOrderUseCase(state, store, nil, log)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC:  usecase.NewCatalogUseCase(state, store, log),
		CartUC:     usecase.NewCartUseCase(state),
		OrderUC:    orders,
		TicketUC:   usecase.NewTicketUseCase(orders, state, stubTicket{}),
		HistoryUC:  usecase.NewHistoryUseCase(store, nil),
		SettingsUC: usecase.NewSettingsUseCase(state, store, log),
		Backup:     backup.NewService(state, store, log),
	})
	return &testEnv{app: app, state: state, store: store}
}

// do lanza la petición con cuerpo JSON opcional.
func (e *testEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo POS → cocina → historial
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoCompleto_CobroEntregaHistorial(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env.do(t, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "1"})
	env.do(t, http.MethodPut, "/api/cart/items/1/note", dto.CartNoteRequest{Note: "sin cebolla"})

	cart := decode[dto.CartResponse](t, env.do(t, http.MethodGet, "/api/cart", nil))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(17000).Equal(cart.Total))

	resp = env.do(t, http.MethodPost, "/api/orders/checkout", dto.CheckoutRequest{Client: "Ana", Payment: entity.PaymentTransfer})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decode[entity.Order](t, resp)
	assert.Equal(t, "Ana", order.Client)
	assert.Equal(t, entity.CounterLabel, order.Table)

	view := decode[dto.ViewResponse](t, env.do(t, http.MethodGet, "/api/view", nil))
	assert.Equal(t, "dispatch", view.View)
	assert.Equal(t, 1, view.PendingCount)

	board := decode[dto.DispatchBoardResponse](t, env.do(t, http.MethodGet, "/api/orders/dispatch", nil))
	require.Len(t, board.Orders, 1)

	resp = env.do(t, http.MethodPost, "/api/orders/"+order.ID+"/deliver", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.do(t, http.MethodPost, "/api/orders/"+order.ID+"/deliver", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "entregar dos veces no es error")

	history := decode[dto.HistoryResponse](t, env.do(t, http.MethodGet, "/api/history", nil))
	require.Len(t, history.Orders, 1)
	assert.Equal(t, 1, history.Summary.DeliveredCount)
	assert.InDelta(t, 1.0, history.Summary.DeliveredRatio, 1e-9)
}

func TestCheckout_CarritoVacio(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/api/orders/checkout", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "EMPTY_CART", body.Code)
}

func TestCheckout_PagoInvalido(t *testing.T) {
	env := buildTestApp(t)
	env.do(t, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "4"})

	resp := env.do(t, http.MethodPost, "/api/orders/checkout", map[string]string{"payment": "Cheque"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCart_AjusteACeroEliminaLinea(t *testing.T) {
	env := buildTestApp(t)
	env.do(t, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "4"})

	cart := decode[dto.CartResponse](t, env.do(t, http.MethodPatch, "/api/cart/items/4", dto.AdjustCartItemRequest{Delta: -1}))
	assert.Empty(t, cart.Items)

	resp := env.do(t, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "nope"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEditarOrden(t *testing.T) {
	env := buildTestApp(t)
	env.do(t, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "1"})
	order := decode[entity.Order](t, env.do(t, http.MethodPost, "/api/orders/checkout", dto.CheckoutRequest{}))

	resp := env.do(t, http.MethodPost, "/api/orders/"+order.ID+"/edit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cart := decode[dto.CartResponse](t, env.do(t, http.MethodGet, "/api/cart", nil))
	assert.Equal(t, order.ID, cart.EditingID)

	env.do(t, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "4"})
	edited := decode[entity.Order](t, env.do(t, http.MethodPost, "/api/orders/checkout", dto.CheckoutRequest{}))
	assert.Equal(t, order.ID, edited.ID)
	assert.True(t, decimal.NewFromInt(11000).Equal(edited.Total))

	resp = env.do(t, http.MethodPost, "/api/orders/desconocida/edit", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo y confirmaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestBorrarProducto_RequiereConfirmacion(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodDelete, "/api/products/7", nil)
	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	assert.Equal(t, "CONFIRMATION_REQUIRED", decode[dto.ErrorResponse](t, resp).Code)
	_, ok := env.state.Product("7")
	assert.True(t, ok, "sin confirmación no se borra nada")

	resp = env.do(t, http.MethodDelete, "/api/products/7?confirm=true", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_, ok = env.state.Product("7")
	assert.False(t, ok)
}

func TestCategorias(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/api/categories", dto.CategoryRequest{Name: "Bebidas Frías"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/categories", dto.CategoryRequest{Name: "Bebidas"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/api/categories/Comida?confirm=true", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CATEGORY_IN_USE", decode[dto.ErrorResponse](t, resp).Code)

	resp = env.do(t, http.MethodDelete, "/api/categories/Bebidas%20Fr%C3%ADas?confirm=true", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.NotContains(t, env.state.Categories(), "Bebidas Frías")
}

func TestCrearProducto_Validacion(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/api/products", map[string]any{"name": "Té", "price": 0, "category": "Bebidas"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/products", map[string]any{"name": "Té", "price": 1500, "category": "Bebidas"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	p := decode[entity.Product](t, resp)
	assert.NotEmpty(t, p.ID)

	list := decode[[]entity.Product](t, env.do(t, http.MethodGet, "/api/products?category=Bebidas", nil))
	assert.Len(t, list, 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// Configuración, ticket y respaldo
// ──────────────────────────────────────────────────────────────────────────────

func TestSettingsYVista(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPut, "/api/settings", dto.SettingsRequest{RestaurantName: "El Fogón", EventType: "Feria"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s := decode[entity.Settings](t, env.do(t, http.MethodGet, "/api/settings", nil))
	assert.Equal(t, "El Fogón", s.RestaurantName)

	resp = env.do(t, http.MethodPut, "/api/view", dto.ViewRequest{View: "caja"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = env.do(t, http.MethodPut, "/api/view", dto.ViewRequest{View: "history"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTicketPDF(t *testing.T) {
	env := buildTestApp(t)
	env.do(t, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "2"})
	order := decode[entity.Order](t, env.do(t, http.MethodPost, "/api/orders/checkout", dto.CheckoutRequest{}))

	resp := env.do(t, http.MethodGet, "/api/orders/"+order.ID+"/ticket", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ticket_"+order.ID[len(order.ID)-8:]+".pdf")
}

func TestBackup_ExportarYRestaurar(t *testing.T) {
	env := buildTestApp(t)
	env.do(t, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "1"})
	env.do(t, http.MethodPost, "/api/orders/checkout", dto.CheckoutRequest{})

	resp := env.do(t, http.MethodGet, "/api/backup", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "comanda_backup_")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// multipart, como lo envía el selector de archivos
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "respaldo.json")
	require.NoError(t, err)
	_, err = fw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/backup/preview", bytes.NewReader(buf.Bytes()))
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	preview := decode[dto.BackupPreviewDTO](t, resp)
	assert.Equal(t, "respaldo.json", preview.FileName)
	assert.Equal(t, 7, preview.Products)
	assert.Equal(t, 1, preview.Orders)

	env.do(t, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "3"})

	req = httptest.NewRequest(http.MethodPost, "/api/backup/restore", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	assert.Equal(t, 1, env.state.Cart().Len())

	req = httptest.NewRequest(http.MethodPost, "/api/backup/restore?confirm=true", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, env.state.Cart().Len(), "restaurar vacía el carrito")
}

func TestBackup_ArchivoInvalido(t *testing.T) {
	env := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/backup/restore?confirm=true", bytes.NewReader([]byte(`{"products":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BACKUP", decode[dto.ErrorResponse](t, resp).Code)
	assert.Len(t, env.state.Products(), 7)
}
