package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"gharbari_backend/pkg/prefs"
)

// InitPreferenceCleanupCron schedules a nightly sweep that deletes session
// preferences untouched for ttlDays. A ttl of 0 disables the sweep.
func InitPreferenceCleanupCron(store prefs.Store, ttlDays int) {
	if ttlDays <= 0 {
		log.Println("Preference cleanup cron disabled")
		return
	}

	c := cron.New()

	_, err := c.AddFunc("30 3 * * *", func() {
		cleanupStalePreferences(store, ttlDays)
	})

	if err != nil {
		log.Printf("Could not initialize preference cleanup cron: %v", err)
		return
	}

	c.Start()
}

func cleanupStalePreferences(store prefs.Store, ttlDays int) {
	cutoff := time.Now().AddDate(0, 0, -ttlDays)
	log.Printf("Sweeping session preferences older than %s...", cutoff.Format("2006-01-02"))

	removed, err := store.DeleteUpdatedBefore(cutoff)
	if err != nil {
		log.Printf("Error sweeping stale preferences: %v", err)
		return
	}

	log.Printf("Removed %d stale preference records", removed)
}
