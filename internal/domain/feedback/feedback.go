package feedback

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback represents a feedback entry, optionally tied to a user.
// A nil UserID means the feedback was submitted anonymously.
type Feedback struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid"`
	Content   string     `json:"content" gorm:"not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides the table name used by GORM
func (Feedback) TableName() string {
	return "feedback"
}

// BeforeCreate sets a UUID before creating the record
func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// NewFeedback creates a feedback entry; userID may be nil for anonymous feedback
func NewFeedback(userID *uuid.UUID, content string) *Feedback {
	return &Feedback{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// Validate checks if the feedback data is valid
func (f *Feedback) Validate() error {
	if f.Content == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}
