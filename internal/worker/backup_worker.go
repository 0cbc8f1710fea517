package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/CraftLedger/craft_api/internal/repository"
)

// BackupWorker periodically snapshots the record store document so that a
// damaged db.json can be restored by hand.
type BackupWorker struct {
	productRepo *repository.ProductRepository
	backupPath  string
	interval    time.Duration
}

// NewBackupWorker constructs a BackupWorker.
func NewBackupWorker(productRepo *repository.ProductRepository, backupPath string, interval time.Duration) *BackupWorker {
	return &BackupWorker{
		productRepo: productRepo,
		backupPath:  backupPath,
		interval:    interval,
	}
}

// Start begins the periodic snapshot loop until context is canceled.
func (w *BackupWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Str("path", w.backupPath).Msg("Starting backup worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run()
		case <-ctx.Done():
			log.Info().Msg("Backup worker stopped")
			return
		}
	}
}

func (w *BackupWorker) run() {
	if err := w.productRepo.Snapshot(w.backupPath); err != nil {
		log.Error().Err(err).Msg("Store snapshot failed")
		return
	}
	log.Debug().Str("path", w.backupPath).Msg("Store snapshot written")
}
