package jobs

import (
	"log"
	"time"

	"github.com/anjiri1684/kids_learning/notifications"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Start schedules the maintenance jobs and returns the running cron so callers can stop it.
// The digest is only scheduled when a mailer is configured.
func Start(db *gorm.DB, mailer notifications.Mailer, purgeSchedule, digestSchedule string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(purgeSchedule, func() {
		if _, err := PurgeOrphanedRecords(db); err != nil {
			log.Printf("🔥 Orphan purge failed: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	if mailer != nil {
		_, err = c.AddFunc(digestSchedule, func() {
			if _, err := SendProgressDigests(db, mailer, time.Now().Add(-digestWindow)); err != nil {
				log.Printf("🔥 Progress digest failed: %v", err)
			}
		})
		if err != nil {
			return nil, err
		}
	}

	c.Start()
	log.Printf("✅ Orphan purge scheduled (%s)", purgeSchedule)
	return c, nil
}
