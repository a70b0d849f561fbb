package migrations

import "gorm.io/gorm"

// migration002Up creates the five core tables
func migration002Up(db *gorm.DB) error {
	if err := db.Exec(`
        CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
            email TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            role user_role NOT NULL DEFAULT 'ATTENDEE',
            created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
        )
    `).Error; err != nil {
		return err
	}

	if err := db.Exec(`
        CREATE TABLE IF NOT EXISTS profiles (
            id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
            user_id UUID NOT NULL,
            first_name TEXT NOT NULL DEFAULT '',
            last_name TEXT NOT NULL DEFAULT '',
            contact_number TEXT
        )
    `).Error; err != nil {
		return err
	}

	if err := db.Exec(`
        CREATE TABLE IF NOT EXISTS events (
            id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
            title TEXT NOT NULL,
            description TEXT NOT NULL,
            date TIMESTAMP WITH TIME ZONE NOT NULL,
            location TEXT NOT NULL,
            created_by TEXT NOT NULL,
            created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
        )
    `).Error; err != nil {
		return err
	}

	if err := db.Exec(`
        CREATE TABLE IF NOT EXISTS media (
            id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
            event_id UUID NOT NULL,
            type media_type NOT NULL,
            url TEXT NOT NULL
        )
    `).Error; err != nil {
		return err
	}

	if err := db.Exec(`
        CREATE TABLE IF NOT EXISTS feedback (
            id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
            user_id UUID,
            content TEXT NOT NULL,
            created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
        )
    `).Error; err != nil {
		return err
	}

	return nil
}

// migration002Down drops the core tables
func migration002Down(db *gorm.DB) error {
	for _, table := range []string{"feedback", "media", "events", "profiles", "users"} {
		if err := db.Exec("DROP TABLE IF EXISTS " + table + " CASCADE").Error; err != nil {
			return err
		}
	}
	return nil
}
