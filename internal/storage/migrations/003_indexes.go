package migrations

import "gorm.io/gorm"

// migration003Up creates indexes. The unique index on users.email is the
// authoritative duplicate signal; handler pre-checks only shape messages.
func migration003Up(db *gorm.DB) error {
	statements := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (email)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_profiles_user_id ON profiles (user_id)",
		"CREATE INDEX IF NOT EXISTS idx_media_event_id ON media (event_id)",
		"CREATE INDEX IF NOT EXISTS idx_feedback_user_id ON feedback (user_id)",
		"CREATE INDEX IF NOT EXISTS idx_events_date ON events (date)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// migration003Down drops the indexes
func migration003Down(db *gorm.DB) error {
	statements := []string{
		"DROP INDEX IF EXISTS idx_events_date",
		"DROP INDEX IF EXISTS idx_feedback_user_id",
		"DROP INDEX IF EXISTS idx_media_event_id",
		"DROP INDEX IF EXISTS idx_profiles_user_id",
		"DROP INDEX IF EXISTS idx_users_email",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
