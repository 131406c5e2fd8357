package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comanda-eventos/internal/application/ports"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error { return nil }

func sampleEvent() ports.KitchenEvent {
	order := entity.Order{
		ID: "o-1", Date: time.Now(), Client: "Ana", Table: "3",
		Payment: entity.PaymentCash, Status: entity.OrderStatusPending, Total: decimal.NewFromInt(2500),
		Items: []entity.CartItem{{
			Product:  entity.Product{ID: "p", Name: "Gaseosa", Price: decimal.NewFromInt(2500), Category: "Bebidas"},
			Quantity: 1, Note: "con hielo",
		}},
	}
	return ports.NewKitchenEvent(ports.KitchenOrderCreated, order, time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC))
}

func TestPublish_MensajePersistenteJSON(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, exchange: "kitchen_topic"}

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))

	assert.Equal(t, "kitchen_topic", ch.exchange)
	assert.Equal(t, "kitchen.order.created", ch.key)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "application/json", ch.msg.ContentType)

	var body map[string]any
	require.NoError(t, json.Unmarshal(ch.msg.Body, &body))
	assert.Equal(t, "o-1", body["order_id"])
	assert.Equal(t, ports.KitchenOrderCreated, body["type"])
}

func TestPublish_ErrorDelCanal(t *testing.T) {
	boom := errors.New("channel closed")
	p := &Publisher{ch: &fakeChannel{err: boom}, exchange: "x"}

	err := p.Publish(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, boom)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "kitchen.order.delivered", RoutingKey(ports.KitchenOrderDelivered))
}
