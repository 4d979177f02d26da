package notify

import (
	"context"

	"github.com/MKhiriev/recipe-tracker/internal/metrics"
)

// ObservedGateway counts the outcome of every delivery attempt of the
// wrapped gateway.
type ObservedGateway struct {
	inner   Gateway
	metrics *metrics.Metrics
}

func NewObservedGateway(inner Gateway, m *metrics.Metrics) *ObservedGateway {
	return &ObservedGateway{inner: inner, metrics: m}
}

func (g *ObservedGateway) SendPasswordReset(ctx context.Context, email, token string) error {
	err := g.inner.SendPasswordReset(ctx, email, token)
	g.metrics.ObserveResetNotification(err)
	return err
}

func (g *ObservedGateway) Close() error {
	return g.inner.Close()
}
