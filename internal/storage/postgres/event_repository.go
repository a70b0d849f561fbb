package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xpyvent/xpyvent-api/internal/domain/event"
	"github.com/xpyvent/xpyvent-api/internal/domain/media"
	"github.com/xpyvent/xpyvent-api/internal/logger"
)

// PostgresEventRepository implements EventRepository using GORM
type PostgresEventRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresEventRepository creates a new PostgreSQL event repository
func NewPostgresEventRepository(db *gorm.DB) *PostgresEventRepository {
	return &PostgresEventRepository{
		db:  db,
		log: logger.Repository("event"),
	}
}

func (r *PostgresEventRepository) Create(e *event.Event) error {
	r.log.Debug("Creating event", "title", e.Title)

	if err := e.Validate(); err != nil {
		r.log.Error("Event validation failed", "error", err)
		return fmt.Errorf("event validation failed: %w", err)
	}

	if err := r.db.Create(e).Error; err != nil {
		r.log.Error("Failed to create event", "error", err, "title", e.Title)
		return fmt.Errorf("failed to create event: %w", err)
	}

	r.log.Info("Event created successfully", "id", e.ID, "title", e.Title)
	return nil
}

func (r *PostgresEventRepository) CreateWithMedia(e *event.Event, items []*media.Media) error {
	r.log.Debug("Creating event with media", "title", e.Title, "media_count", len(items))

	if err := e.Validate(); err != nil {
		r.log.Error("Event validation failed", "error", err)
		return fmt.Errorf("event validation failed: %w", err)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}

		for _, m := range items {
			m.EventID = e.ID
			if err := tx.Create(m).Error; err != nil {
				return fmt.Errorf("failed to create media: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		r.log.Error("Failed to create event with media", "error", err, "title", e.Title)
		return err
	}

	r.log.Info("Event created successfully", "id", e.ID, "title", e.Title, "media_count", len(items))
	return nil
}

func (r *PostgresEventRepository) GetByID(id string, includeMedia bool) (*event.Event, error) {
	r.log.Debug("retrieving event by ID", "event_id", id, "include_media", includeMedia)

	eventID, err := uuid.Parse(id)
	if err != nil {
		r.log.Debug("Invalid event ID format", "id", id, "error", err)
		return nil, ErrNotFound
	}

	query := r.db
	if includeMedia {
		query = query.Preload("Media")
	}

	var e event.Event
	if err := query.First(&e, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("Event not found", "id", id)
			return nil, ErrNotFound
		}
		r.log.Error("Failed to get event by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get event by ID: %w", err)
	}

	return &e, nil
}

func (r *PostgresEventRepository) GetAll(includeMedia bool) ([]*event.Event, error) {
	query := r.db
	if includeMedia {
		query = query.Preload("Media")
	}

	var events []*event.Event
	if err := query.Find(&events).Error; err != nil {
		r.log.Error("Failed to get all events", "error", err)
		return nil, fmt.Errorf("failed to get all events: %w", err)
	}

	r.log.Debug("Retrieved all events", "count", len(events))
	return events, nil
}

func (r *PostgresEventRepository) UpdateCore(id, title, description string, date time.Time, location string) error {
	r.log.Debug("Updating event", "id", id)

	eventID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	result := r.db.Model(&event.Event{}).Where("id = ?", eventID).Updates(map[string]interface{}{
		"title":       title,
		"description": description,
		"date":        date,
		"location":    location,
	})
	if result.Error != nil {
		r.log.Error("Failed to update event", "id", id, "error", result.Error)
		return fmt.Errorf("failed to update event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.log.Info("Event updated successfully", "id", id)
	return nil
}

func (r *PostgresEventRepository) Delete(id string) (bool, error) {
	r.log.Debug("Deleting event", "id", id)

	eventID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	result := r.db.Delete(&event.Event{}, "id = ?", eventID)
	if result.Error != nil {
		r.log.Error("Failed to delete event", "id", id, "error", result.Error)
		return false, fmt.Errorf("failed to delete event: %w", result.Error)
	}

	deleted := result.RowsAffected > 0
	if deleted {
		r.log.Info("Event deleted successfully", "id", id)
	} else {
		r.log.Debug("Event not found for deletion", "id", id)
	}
	return deleted, nil
}
