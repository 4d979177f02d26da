package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/store"
)

// ResetTokenSweeper periodically deletes expired password reset tokens.
// Expired tokens are already rejected on redemption; the sweep only keeps the
// table small.
type ResetTokenSweeper struct {
	repository store.ResetTokenRepository
	interval   time.Duration
	now        func() time.Time
	logger     *logger.Logger
}

func NewResetTokenSweeper(repository store.ResetTokenRepository, interval time.Duration, logger *logger.Logger) *ResetTokenSweeper {
	return &ResetTokenSweeper{
		repository: repository,
		interval:   interval,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

func (s *ResetTokenSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("reset token sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("reset token sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ResetTokenSweeper) sweep(ctx context.Context) {
	removed, err := s.repository.DeleteExpiredResetTokens(ctx, s.now())
	if err != nil {
		s.logger.Err(err).Msg("error purging expired reset tokens")
		return
	}
	if removed > 0 {
		s.logger.Debug().Int64("removed", removed).Msg("expired reset tokens purged")
	}
}
