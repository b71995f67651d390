package jobs

import (
	"context"
	"log"
	"time"

	"defensa_juridica_web/config"
	"defensa_juridica_web/services"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// RetentionSchedule runs the contact purge every night at 03:00
const RetentionSchedule = "0 3 * * *"

// StartScheduler starts the background jobs and returns the running
// scheduler so the caller can stop it on shutdown.
func StartScheduler(database *gorm.DB, cfg *config.Config) (*cron.Cron, error) {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		log.Printf("[WARNING] [CRON] America/Santiago unavailable, using UTC: %v", err)
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(RetentionSchedule, func() {
		log.Println("[CRON] Purging expired contact messages...")
		if _, err := PurgeExpiredContacts(context.Background(), database, cfg.ContactRetentionDays, time.Now()); err != nil {
			log.Printf("[CRON] Contact purge failed: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Println("[CRON] Scheduler started")
	return c, nil
}

// PurgeExpiredContacts deletes contact messages older than retentionDays.
// Zero days keeps everything.
func PurgeExpiredContacts(ctx context.Context, database *gorm.DB, retentionDays int, now time.Time) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := now.AddDate(0, 0, -retentionDays)
	purged, err := services.NewContactArchive(database).PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	log.Printf("[JOB] Purged %d contact messages created before %s", purged, cutoff.Format(time.RFC3339))
	return purged, nil
}
