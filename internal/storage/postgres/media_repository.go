package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xpyvent/xpyvent-api/internal/domain/media"
	"github.com/xpyvent/xpyvent-api/internal/logger"
)

// PostgresMediaRepository implements MediaRepository using GORM
type PostgresMediaRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresMediaRepository creates a new PostgreSQL media repository
func NewPostgresMediaRepository(db *gorm.DB) *PostgresMediaRepository {
	return &PostgresMediaRepository{
		db:  db,
		log: logger.Repository("media"),
	}
}

func (r *PostgresMediaRepository) Create(m *media.Media) error {
	r.log.Debug("Creating media", "event_id", m.EventID, "type", m.Type, "url", m.URL)

	if err := m.Validate(); err != nil {
		r.log.Error("Media validation failed", "error", err)
		return fmt.Errorf("media validation failed: %w", err)
	}

	if err := r.db.Create(m).Error; err != nil {
		r.log.Error("Failed to create media", "error", err, "event_id", m.EventID)
		return fmt.Errorf("failed to create media: %w", err)
	}

	r.log.Info("Media created successfully", "id", m.ID, "event_id", m.EventID)
	return nil
}

func (r *PostgresMediaRepository) GetByID(id string) (*media.Media, error) {
	r.log.Debug("retrieving media by ID", "media_id", id)

	mediaID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var m media.Media
	if err := r.db.First(&m, "id = ?", mediaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("Media not found", "id", id)
			return nil, ErrNotFound
		}
		r.log.Error("Failed to get media by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get media by ID: %w", err)
	}

	return &m, nil
}

func (r *PostgresMediaRepository) Delete(id string) (bool, error) {
	r.log.Debug("Deleting media", "id", id)

	mediaID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	result := r.db.Delete(&media.Media{}, "id = ?", mediaID)
	if result.Error != nil {
		r.log.Error("Failed to delete media", "id", id, "error", result.Error)
		return false, fmt.Errorf("failed to delete media: %w", result.Error)
	}

	deleted := result.RowsAffected > 0
	if deleted {
		r.log.Info("Media deleted successfully", "id", id)
	}
	return deleted, nil
}

func (r *PostgresMediaRepository) DeleteByEventID(eventID string) error {
	r.log.Debug("Deleting media by event ID", "event_id", eventID)

	eid, err := uuid.Parse(eventID)
	if err != nil {
		return ErrNotFound
	}

	if err := r.db.Delete(&media.Media{}, "event_id = ?", eid).Error; err != nil {
		r.log.Error("Failed to delete media by event ID", "event_id", eventID, "error", err)
		return fmt.Errorf("failed to delete media by event ID: %w", err)
	}

	return nil
}

func (r *PostgresMediaRepository) ReplaceForEvent(eventID uuid.UUID, items []*media.Media) error {
	r.log.Debug("Replacing media for event", "event_id", eventID, "media_count", len(items))

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&media.Media{}, "event_id = ?", eventID).Error; err != nil {
			return fmt.Errorf("failed to delete existing media: %w", err)
		}

		for _, m := range items {
			m.EventID = eventID
			if err := tx.Create(m).Error; err != nil {
				return fmt.Errorf("failed to create media: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		r.log.Error("Failed to replace media for event", "event_id", eventID, "error", err)
		return err
	}

	r.log.Info("Media replaced successfully", "event_id", eventID, "media_count", len(items))
	return nil
}
