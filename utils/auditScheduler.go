package utils

import (
	"academy/config"
	"academy/database"
	"academy/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[AUDIT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredAudits hard-deletes login-audit rows older than the
// configured retention window.
func purgeExpiredAudits() {
	db := database.Database.Db
	if db == nil {
		return
	}

	retention := time.Duration(config.AppConfig.AuditRetentionDays) * 24 * time.Hour
	cutoff := time.Now().Add(-retention)

	result := db.Unscoped().Where("created_at < ?", cutoff).Delete(&models.LoginAudit{})
	if result.Error != nil {
		logScheduler("Error purging audit rows: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Purged expired audit rows")
	}
}

// StartAuditScheduler runs the hourly audit retention sweep.
func StartAuditScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@hourly", purgeExpiredAudits); err != nil {
		log.Fatalf("Failed to schedule audit purge: %v", err)
	}

	c.Start()
	logScheduler("Audit retention scheduler started")
	return c
}
