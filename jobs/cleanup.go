package jobs

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/models"
)

const (
	cleanupInterval   = time.Hour
	unverifiedMaxAge  = 24 * time.Hour
)

// StartUnverifiedUserCleanup runs an hourly sweep that deletes accounts
// which never completed email verification. Cart rows cascade with the user.
func StartUnverifiedUserCleanup(ctx context.Context, db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cleanupUnverifiedUsers(db)
			}
		}
	}()
}

func cleanupUnverifiedUsers(db *gorm.DB) {
	cutoff := time.Now().Add(-unverifiedMaxAge)

	result := db.Where("is_verified = ? AND created_at < ?", false, cutoff).Delete(&models.User{})
	if result.Error != nil {
		log.Printf("❌ Unverified user cleanup failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("✅ Removed %d unverified accounts older than 24h", result.RowsAffected)
	}
}
