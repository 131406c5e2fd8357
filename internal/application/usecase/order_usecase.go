package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/comanda-eventos/internal/application/dto"
	"github.com/jhoicas/comanda-eventos/internal/application/ports"
	"github.com/jhoicas/comanda-eventos/internal/application/report"
	"github.com/jhoicas/comanda-eventos/internal/application/session"
	"github.com/jhoicas/comanda-eventos/internal/domain"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
	"github.com/jhoicas/comanda-eventos/internal/domain/repository"
	"github.com/jhoicas/comanda-eventos/pkg/logger"
)

// OrderUseCase ciclo de vida de las órdenes: cobro del carrito, edición,
// despacho en cocina.
//
// Máquina de estados: pending → delivered, solo por Deliver y sin retorno.
type OrderUseCase struct {
	state    *session.State
	store    repository.OrderStore
	notifier ports.KitchenNotifier
	log      *logger.Logger
	now      func() time.Time
}

// NewOrderUseCase construye el caso de uso. notifier nil equivale a no publicar.
func NewOrderUseCase(
	state *session.State,
	store repository.OrderStore,
	notifier ports.KitchenNotifier,
	log *logger.Logger,
) *OrderUseCase {
	if notifier == nil {
		notifier = ports.NoopKitchenNotifier{}
	}
	return &OrderUseCase{
		state:    state,
		store:    store,
		notifier: notifier,
		log:      log.Named("orders"),
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *OrderUseCase) WithClock(now func() time.Time) *OrderUseCase {
	uc.now = now
	return uc
}

// Checkout convierte el carrito en una orden.
//
//   - Carrito vacío: domain.ErrEmptyCart, sin cambios.
//   - Cobro ya en curso: domain.ErrCheckoutInProgress.
//   - Con orden en edición: sobrescribe total, cliente, mesa, pago e ítems de esa orden
//     y la saca del conjunto de despacho.
//   - Sin edición: crea una orden pendiente y la agrega al conjunto de despacho.
//
// Si el store falla, el carrito y la marca de edición quedan intactos para reintentar.
// Al confirmar se descuentan solo las líneas cobradas: lo agregado mientras se
// escribía en el store sigue en el carrito.
func (uc *OrderUseCase) Checkout(ctx context.Context, in dto.CheckoutRequest) (*entity.Order, error) {
	payment := in.Payment
	if payment == "" {
		payment = entity.PaymentCash
	}
	if !payment.Valid() {
		return nil, fmt.Errorf("%w: medio de pago %q", domain.ErrInvalidInput, payment)
	}

	if !uc.state.BeginCheckout() {
		return nil, domain.ErrCheckoutInProgress
	}
	defer uc.state.EndCheckout()

	items := uc.state.Cart().Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	client := counterIfBlank(in.Client)
	table := counterIfBlank(in.Table)
	total := entity.ItemsTotal(items)

	var (
		order     entity.Order
		eventType string
	)
	if editID := uc.state.EditingID(); editID != "" {
		existing, err := uc.store.GetOrder(ctx, editID)
		if err != nil {
			uc.log.Error().Err(err).Str("order_id", editID).Msg("obtener orden en edición")
			return nil, fmt.Errorf("checkout: obtener orden %s: %w", editID, err)
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		order = *existing
		order.Total = total
		order.Client = client
		order.Table = table
		order.Payment = payment
		order.Items = items
		if err := uc.store.UpdateOrder(ctx, &order); err != nil {
			uc.log.Error().Err(err).Str("order_id", editID).Msg("actualizar orden")
			return nil, fmt.Errorf("checkout: actualizar orden %s: %w", editID, err)
		}
		uc.state.RemoveOrder(editID)
		eventType = ports.KitchenOrderUpdated
	} else {
		order = entity.Order{
			ID:      uuid.New().String(),
			Date:    uc.now(),
			Client:  client,
			Table:   table,
			Payment: payment,
			Status:  entity.OrderStatusPending,
			Total:   total,
			Items:   items,
		}
		if err := uc.store.CreateOrder(ctx, &order); err != nil {
			uc.log.Error().Err(err).Str("order_id", order.ID).Msg("crear orden")
			return nil, fmt.Errorf("checkout: crear orden: %w", err)
		}
		uc.state.PushOrder(order)
		eventType = ports.KitchenOrderCreated
	}

	uc.state.Cart().Consume(items)
	uc.state.SetEditingID("")
	uc.state.SetView(session.ViewDispatch)

	uc.log.Info().
		Str("order_id", order.ID).
		Str("total", order.Total.String()).
		Int("items", len(order.Items)).
		Str("event", eventType).
		Msg("orden registrada")
	uc.publish(ctx, eventType, order)
	return &order, nil
}

// Deliver marca la orden como entregada. Llamarlo de nuevo no es error.
func (uc *OrderUseCase) Deliver(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == entity.OrderStatusDelivered {
		uc.state.MarkDelivered(id)
		return order, nil
	}
	if err := uc.store.UpdateOrderStatus(ctx, id, entity.OrderStatusDelivered); err != nil {
		uc.log.Error().Err(err).Str("order_id", id).Msg("marcar entregada")
		return nil, fmt.Errorf("deliver: %w", err)
	}
	uc.state.MarkDelivered(id)
	order.Status = entity.OrderStatusDelivered
	uc.publish(ctx, ports.KitchenOrderDelivered, *order)
	return order, nil
}

// LoadForEdit copia los ítems de la orden al carrito y la marca como objetivo
// del próximo Checkout.
func (uc *OrderUseCase) LoadForEdit(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.state.Cart().Load(order.Items)
	uc.state.SetEditingID(order.ID)
	uc.state.SetView(session.ViewPOS)
	return order, nil
}

// CancelEdit descarta la edición en curso y vacía el carrito.
func (uc *OrderUseCase) CancelEdit() {
	if uc.state.EditingID() == "" {
		return
	}
	uc.state.Cart().Clear()
	uc.state.SetEditingID("")
}

// DispatchBoard órdenes de cocina ordenadas para mostrar y cantidad de pendientes.
func (uc *OrderUseCase) DispatchBoard() dto.DispatchBoardResponse {
	orders := uc.state.Orders()
	report.SortForDisplay(orders)
	return dto.DispatchBoardResponse{Orders: orders, PendingCount: uc.state.PendingCount()}
}

// GetOrder busca primero en el conjunto de despacho y luego en el store.
func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	return uc.find(ctx, id)
}

func (uc *OrderUseCase) find(ctx context.Context, id string) (*entity.Order, error) {
	if o, ok := uc.state.Order(id); ok {
		return &o, nil
	}
	o, err := uc.store.GetOrder(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Str("order_id", id).Msg("obtener orden")
		return nil, fmt.Errorf("obtener orden %s: %w", id, err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (uc *OrderUseCase) publish(ctx context.Context, eventType string, o entity.Order) {
	if err := uc.notifier.Publish(ctx, ports.NewKitchenEvent(eventType, o, uc.now())); err != nil {
		uc.log.Warn().Err(err).Str("order_id", o.ID).Str("event", eventType).Msg("publicar evento de cocina")
	}
}

func counterIfBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return entity.CounterLabel
	}
	return s
}
