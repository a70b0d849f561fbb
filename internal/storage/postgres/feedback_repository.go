package postgres

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/xpyvent/xpyvent-api/internal/domain/feedback"
	"github.com/xpyvent/xpyvent-api/internal/logger"
)

// PostgresFeedbackRepository implements FeedbackRepository using GORM
type PostgresFeedbackRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresFeedbackRepository creates a new PostgreSQL feedback repository
func NewPostgresFeedbackRepository(db *gorm.DB) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{
		db:  db,
		log: logger.Repository("feedback"),
	}
}

func (r *PostgresFeedbackRepository) Create(f *feedback.Feedback) error {
	r.log.Debug("Creating feedback", "anonymous", f.UserID == nil)

	if err := f.Validate(); err != nil {
		r.log.Error("Feedback validation failed", "error", err)
		return fmt.Errorf("feedback validation failed: %w", err)
	}

	if err := r.db.Create(f).Error; err != nil {
		r.log.Error("Failed to create feedback", "error", err)
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	r.log.Info("Feedback created successfully", "id", f.ID)
	return nil
}
