package amqp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/product_transactions/internal/core/domain"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange, key string
	published     []amqp091.Publishing
	err           error
	closed        bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchange, f.key = exchange, key
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublishSeeded(t *testing.T) {
	ch := &fakeChannel{}
	pub := newPublisherWithChannel(ch, "product_transactions", "dataset.seeded")
	seededAt := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

	err := pub.PublishSeeded(context.Background(), domain.SeedResult{Count: 60, SeededAt: seededAt})

	require.NoError(t, err)
	require.Len(t, ch.published, 1)
	assert.Equal(t, "product_transactions", ch.exchange)
	assert.Equal(t, "dataset.seeded", ch.key)
	assert.Equal(t, "application/json", ch.published[0].ContentType)
	assert.Equal(t, uint8(amqp091.Persistent), ch.published[0].DeliveryMode)

	msg, err := SeededMessageFromJSON(ch.published[0].Body)
	require.NoError(t, err)
	assert.Equal(t, SeededEventName, msg.Event)
	assert.Equal(t, 60, msg.Count)
	assert.True(t, seededAt.Equal(msg.SeededAt))
}

func TestPublishSeeded_ChannelError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	pub := newPublisherWithChannel(ch, "x", "y")

	err := pub.PublishSeeded(context.Background(), domain.SeedResult{Count: 1})

	assert.ErrorContains(t, err, "publish message")
}

func TestClose(t *testing.T) {
	ch := &fakeChannel{}
	pub := newPublisherWithChannel(ch, "x", "y")

	assert.NoError(t, pub.Close())
	assert.True(t, ch.closed)
}
