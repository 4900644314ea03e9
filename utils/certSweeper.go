package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	courseModels "serene/models/course"
	"serene/storage"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logSweep logs sweeper events with timestamp
func logSweep(message string) {
	log.Printf("[CERT-SWEEP %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartCertificateSweeper schedules a nightly reconciliation of object
// storage against certificate rows. Issuance can leave a document behind
// when the record insert fails; those orphans are inert, and by default the
// sweep only reports them. Deletion is opt-in via deleteOrphans.
func StartCertificateSweeper(db *gorm.DB, store storage.ObjectStore, deleteOrphans bool) *cron.Cron {
	scheduler := cron.New()
	scheduler.AddFunc("0 3 * * *", func() {
		if _, err := SweepOrphanedCertificates(context.Background(), db, store, deleteOrphans); err != nil {
			logSweep("Error sweeping orphaned certificates: " + err.Error())
		}
	})
	scheduler.Start()
	logSweep("Certificate sweeper scheduled (daily at 03:00)")
	return scheduler
}

// SweepOrphanedCertificates lists stored certificate documents and reports
// every object with no matching certificate row. Objects stored since the
// beginning of today are skipped; they may belong to an issuance still in
// flight. Returns the number of orphans found.
func SweepOrphanedCertificates(ctx context.Context, db *gorm.DB, store storage.ObjectStore, deleteOrphans bool) (int, error) {
	cutoff := now.BeginningOfDay()

	objects, err := store.List(ctx, "")
	if err != nil {
		return 0, err
	}

	orphans := 0
	for _, obj := range objects {
		if !obj.LastModified.Before(cutoff) {
			continue
		}

		var count int64
		if err := db.WithContext(ctx).Model(&courseModels.Certificate{}).
			Where("file_url = ?", store.PublicURL(obj.Key)).
			Count(&count).Error; err != nil {
			return orphans, err
		}
		if count > 0 {
			continue
		}

		orphans++
		if deleteOrphans {
			if err := store.Delete(ctx, obj.Key); err != nil {
				logSweep("Failed to delete orphaned object " + obj.Key + ": " + err.Error())
				continue
			}
			logSweep("Deleted orphaned object " + obj.Key)
		} else {
			logSweep("Orphaned object (kept): " + obj.Key)
		}
	}

	logSweep(fmt.Sprintf("Sweep finished: %d objects scanned, %d orphans", len(objects), orphans))
	return orphans, nil
}
