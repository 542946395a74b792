package services

import (
	"copyadmin/database"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[ROLLUP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartRollupScheduler periodically re-derives every teacher's rollups and
// the stats snapshot, so any drift introduced outside the core mutation
// paths gets corrected within the interval.
func StartRollupScheduler(store *database.KVStore) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@every 15m", func() {
		stats := RecomputeAll(store)
		logScheduler(fmt.Sprintf("Rollups recomputed: %d teachers, %d trades",
			stats.TotalTeachers, stats.TotalTrades))
	})
	if err != nil {
		logScheduler("Failed to register rollup job: " + err.Error())
		return c
	}

	c.Start()
	logScheduler("Rollup recompute scheduled every 15m")
	return c
}
