package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the workers enabled by cfg.
func NewWorkers(storages *store.Storages, cfg config.App, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.ResetTokenSweepInterval > 0 {
		w.workers = append(w.workers, NewResetTokenSweeper(storages.ResetTokenRepository, cfg.ResetTokenSweepInterval, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("background workers created")
	return w
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
