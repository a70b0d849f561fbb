package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xpyvent/xpyvent-api/internal/domain/media"
)

// Event represents a scheduled event with its attached media
type Event struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Date        time.Time `json:"date" gorm:"not null"`
	Location    string    `json:"location" gorm:"not null"`
	// CreatedBy carries the creator's user id as an opaque string.
	// It is not a foreign key: the original system never enforced it.
	CreatedBy string    `json:"created_by" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Media []media.Media `json:"media,omitempty" gorm:"foreignKey:EventID"`
}

// TableName overrides the table name used by GORM
func (Event) TableName() string {
	return "events"
}

// BeforeCreate sets a UUID before creating the record
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// NewEvent creates a new event with the given parameters
func NewEvent(title, description string, date time.Time, location, createdBy string) *Event {
	return &Event{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Date:        date,
		Location:    location,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}
}

// Validate checks if the event data is valid
func (e *Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("title is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}
