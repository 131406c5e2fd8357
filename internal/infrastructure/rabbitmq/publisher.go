// Package rabbitmq publica los eventos de cocina en un exchange topic de RabbitMQ.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jhoicas/comanda-eventos/internal/application/ports"
	"github.com/jhoicas/comanda-eventos/pkg/config"
)

var _ ports.KitchenNotifier = (*Publisher)(nil)

// channel subconjunto de *amqp.Channel usado para publicar.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implementa ports.KitchenNotifier. Cada evento sale con routing key
// "kitchen.<tipo>" (ej. kitchen.order.created), persistente y en JSON.
type Publisher struct {
	mu       sync.Mutex // amqp.Channel no admite publicaciones concurrentes
	conn     *amqp.Connection
	ch       channel
	exchange string
}

// Dial conecta, abre un canal y declara el exchange topic (durable).
func Dial(cfg config.AMQPConfig) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: channel: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: declare exchange %s: %w", cfg.Exchange, err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

// RoutingKey clave de ruteo de un tipo de evento.
func RoutingKey(eventType string) string {
	return "kitchen." + eventType
}

// Publish envía el evento serializado como JSON.
func (p *Publisher) Publish(ctx context.Context, e ports.KitchenEvent) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("rabbitmq: encode event: %w", err)
	}
	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    e.OccurredAt.UTC(),
		ContentType:  "application/json",
		MessageId:    e.OrderID + ":" + e.Type,
		Type:         e.Type,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(e.Type), false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq: publish %s: %w", e.Type, err)
	}
	return nil
}

// Close cierra canal y conexión.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
