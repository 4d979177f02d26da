package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/recipe-tracker/internal/metrics"
	"github.com/MKhiriev/recipe-tracker/internal/mock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestObservedGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockGateway(ctrl)
	m := metrics.New()
	g := NewObservedGateway(inner, m)
	ctx := context.Background()

	sendErr := errors.New("smtp down")
	gomock.InOrder(
		inner.EXPECT().SendPasswordReset(ctx, "ana@example.com", "t1").Return(nil),
		inner.EXPECT().SendPasswordReset(ctx, "ana@example.com", "t2").Return(sendErr),
		inner.EXPECT().Close().Return(nil),
	)

	assert.NoError(t, g.SendPasswordReset(ctx, "ana@example.com", "t1"))
	assert.ErrorIs(t, g.SendPasswordReset(ctx, "ana@example.com", "t2"), sendErr)
	assert.NoError(t, g.Close())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResetRequests.WithLabelValues("sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResetRequests.WithLabelValues("failed")))
}
