// Package events publica los eventos de negocio (venta registrada, stock bajo) en RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jhoicas/tacohut-api/internal/application/ports"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/pkg/config"
	"github.com/jhoicas/tacohut-api/pkg/logger"
)

const publishTimeout = 5 * time.Second

var (
	_ ports.EventPublisher = (*AMQPPublisher)(nil)
	_ ports.EventPublisher = NoopPublisher{}
)

// publishChannel subconjunto de *amqp.Channel usado para publicar.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPPublisher publica en un exchange directo durable.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       publishChannel
	exchange string
	log      *logger.Logger
	now      func() time.Time
}

// NewAMQPPublisher conecta al broker y declara el exchange.
func NewAMQPPublisher(cfg config.AMQPConfig, log *logger.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("abrir canal AMQP: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declarar exchange %s: %w", cfg.Exchange, err)
	}
	p := newPublisher(ch, cfg.Exchange, log)
	p.conn = conn
	return p, nil
}

func newPublisher(ch publishChannel, exchange string, log *logger.Logger) *AMQPPublisher {
	if log == nil {
		log = logger.Nop()
	}
	return &AMQPPublisher{ch: ch, exchange: exchange, log: log.Component("events"), now: time.Now}
}

// SaleRecorded publica sale.recorded.
func (p *AMQPPublisher) SaleRecorded(ctx context.Context, sale entity.Sale) error {
	return p.publish(ctx, RoutingSaleRecorded, NewSaleRecorded(sale, p.now()))
}

// LowStock publica inventory.low_stock.
func (p *AMQPPublisher) LowStock(ctx context.Context, alert entity.Alert, item entity.InventoryItem) error {
	return p.publish(ctx, RoutingLowStock, NewLowStock(alert, item, p.now()))
}

func (p *AMQPPublisher) publish(ctx context.Context, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publicar %s: %w", key, err)
	}
	p.log.Debug().Str("routing_key", key).Str("exchange", p.exchange).Msg("evento publicado")
	return nil
}

// Close cierra la conexión con el broker.
func (p *AMQPPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return err
	}
	return nil
}

// NoopPublisher descarta los eventos. Se usa cuando AMQP_URL está vacío.
type NoopPublisher struct{}

func (NoopPublisher) SaleRecorded(context.Context, entity.Sale) error { return nil }

func (NoopPublisher) LowStock(context.Context, entity.Alert, entity.InventoryItem) error { return nil }

// New devuelve el publicador AMQP o uno nulo si no hay URL. close nunca es nil.
func New(cfg config.AMQPConfig, log *logger.Logger) (ports.EventPublisher, func() error, error) {
	if cfg.URL == "" {
		return NoopPublisher{}, func() error { return nil }, nil
	}
	p, err := NewAMQPPublisher(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Close, nil
}
