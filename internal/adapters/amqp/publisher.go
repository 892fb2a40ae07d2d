package amqp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/product_transactions/internal/core/domain"
	"github.com/SscSPs/product_transactions/internal/core/ports"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// channel is the subset of *amqp091.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher sends seed events to a topic exchange.
type Publisher struct {
	mu         sync.Mutex // amqp091 channels are not safe for concurrent publishing
	conn       *amqp091.Connection
	channel    channel
	exchange   string
	routingKey string
}

// Ensure Publisher implements the SeedEventPublisher interface
var _ ports.SeedEventPublisher = (*Publisher)(nil)

// NewPublisher dials url and declares exchange.
func NewPublisher(url, exchange, routingKey string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, channel: ch, exchange: exchange, routingKey: routingKey}, nil
}

func newPublisherWithChannel(ch channel, exchange, routingKey string) *Publisher {
	return &Publisher{channel: ch, exchange: exchange, routingKey: routingKey}
}

// PublishSeeded implements ports.SeedEventPublisher
func (p *Publisher) PublishSeeded(ctx context.Context, result domain.SeedResult) error {
	body, err := NewSeededMessage(result).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,   // exchange
		p.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    result.SeededAt,
			Type:         SeededEventName,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.InfoContext(ctx, "Published seed event",
		"count", result.Count,
		"exchange", p.exchange,
		"routing_key", p.routingKey)
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
