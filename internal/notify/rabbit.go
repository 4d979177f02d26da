package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/utils"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	publishTimeout = 3 * time.Second
	traceIDHeader  = "X-Trace-ID"
)

// PasswordResetRequested is the event body published for every reset request.
type PasswordResetRequested struct {
	Email       string    `json:"email"`
	ResetLink   string    `json:"reset_link"`
	RequestedAt time.Time `json:"requested_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// amqpChannel is the part of *amqp.Channel the publisher needs.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher emits [PasswordResetRequested] events to a topic exchange.
type RabbitPublisher struct {
	conn        *amqp.Connection
	ch          amqpChannel
	exchange    string
	routingKey  string
	frontendURL string
	ttl         time.Duration
	now         func() time.Time
	logger      *logger.Logger
}

// NewRabbitPublisher dials the broker and declares a durable topic exchange.
func NewRabbitPublisher(cfg config.Rabbit, app config.App, log *logger.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		log.Err(err).Str("func", "NewRabbitPublisher").Msg("error dialing rabbit")
		return nil, fmt.Errorf("dial rabbit: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	p := newRabbitPublisher(ch, cfg, app, log)
	p.conn = conn
	return p, nil
}

func newRabbitPublisher(ch amqpChannel, cfg config.Rabbit, app config.App, log *logger.Logger) *RabbitPublisher {
	return &RabbitPublisher{
		ch:          ch,
		exchange:    cfg.Exchange,
		routingKey:  cfg.RoutingKey,
		frontendURL: app.FrontendURL,
		ttl:         app.ResetTokenTTL,
		now:         time.Now,
		logger:      log,
	}
}

func (p *RabbitPublisher) SendPasswordReset(ctx context.Context, email, token string) error {
	log := logger.FromContext(ctx)

	now := p.now().UTC()
	body, err := json.Marshal(PasswordResetRequested{
		Email:       email,
		ResetLink:   ResetLink(p.frontendURL, token),
		RequestedAt: now,
		ExpiresAt:   now.Add(p.ttl),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenderingMessage, err)
	}

	// broker back-pressure must not hang the request
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, publishTimeout)
		defer cancel()
	}

	headers := amqp.Table{}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		headers[traceIDHeader] = traceID
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
		MessageId:    uuid.NewString(),
		Timestamp:    now,
		Headers:      headers,
	})
	if err != nil {
		log.Err(err).Str("func", "*RabbitPublisher.SendPasswordReset").Str("exchange", p.exchange).Msg("error publishing reset event")
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	return nil
}

// Close closes the channel and then the connection.
func (p *RabbitPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
