package migrations

import "gorm.io/gorm"

// migration004Up creates foreign key constraints.
// media.event_id cascades so deleting an event cannot strand media rows.
// events.created_by is deliberately NOT a foreign key.
func migration004Up(db *gorm.DB) error {
	if err := db.Exec(`
        ALTER TABLE profiles
        ADD CONSTRAINT fk_profiles_user
        FOREIGN KEY (user_id) REFERENCES users (id)
    `).Error; err != nil {
		return err
	}

	if err := db.Exec(`
        ALTER TABLE media
        ADD CONSTRAINT fk_media_event
        FOREIGN KEY (event_id) REFERENCES events (id)
        ON DELETE CASCADE
    `).Error; err != nil {
		return err
	}

	return nil
}

// migration004Down drops the foreign key constraints
func migration004Down(db *gorm.DB) error {
	if err := db.Exec("ALTER TABLE media DROP CONSTRAINT IF EXISTS fk_media_event").Error; err != nil {
		return err
	}

	if err := db.Exec("ALTER TABLE profiles DROP CONSTRAINT IF EXISTS fk_profiles_user").Error; err != nil {
		return err
	}

	return nil
}
