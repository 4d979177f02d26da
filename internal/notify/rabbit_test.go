package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/utils"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
	deadline bool
}

type fakeChannel struct {
	published []published
	err       error
	closed    bool
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	_, hasDeadline := ctx.Deadline()
	c.published = append(c.published, published{exchange: exchange, key: key, msg: msg, deadline: hasDeadline})
	return c.err
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func newTestPublisher(ch *fakeChannel) *RabbitPublisher {
	p := newRabbitPublisher(ch,
		config.Rabbit{Exchange: "recipes.events", RoutingKey: "password.reset_requested"},
		config.App{FrontendURL: "https://namcol.app", ResetTokenTTL: 15 * time.Minute},
		logger.Nop(),
	)
	p.now = func() time.Time { return time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC) }
	return p
}

func TestRabbitPublisher_SendPasswordReset(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch)

	ctx := utils.WithTraceID(context.Background(), "trace-42")
	require.NoError(t, p.SendPasswordReset(ctx, "ana@example.com", "tok"))
	require.Len(t, ch.published, 1)

	got := ch.published[0]
	assert.Equal(t, "recipes.events", got.exchange)
	assert.Equal(t, "password.reset_requested", got.key)
	assert.True(t, got.deadline, "publish must be bounded by a timeout")
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.NotEmpty(t, got.msg.MessageId)
	assert.Equal(t, "trace-42", got.msg.Headers["X-Trace-ID"])

	var event PasswordResetRequested
	require.NoError(t, json.Unmarshal(got.msg.Body, &event))
	assert.Equal(t, "ana@example.com", event.Email)
	assert.Equal(t, "https://namcol.app/reset-password?token=tok", event.ResetLink)
	assert.Equal(t, time.Date(2026, 4, 1, 12, 15, 0, 0, time.UTC), event.ExpiresAt)
}

func TestRabbitPublisher_NoTraceHeaderWithoutTraceID(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch)

	require.NoError(t, p.SendPasswordReset(context.Background(), "ana@example.com", "tok"))
	_, ok := ch.published[0].msg.Headers["X-Trace-ID"]
	assert.False(t, ok)
}

func TestRabbitPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := newTestPublisher(ch)

	err := p.SendPasswordReset(context.Background(), "ana@example.com", "tok")
	assert.ErrorIs(t, err, ErrPublishingEvent)
}

func TestRabbitPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
