package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xpyvent/xpyvent-api/internal/domain/user"
	"github.com/xpyvent/xpyvent-api/internal/logger"
)

// PostgresProfileRepository implements ProfileRepository using GORM
type PostgresProfileRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresProfileRepository creates a new PostgreSQL profile repository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{
		db:  db,
		log: logger.Repository("profile"),
	}
}

func (r *PostgresProfileRepository) Create(p *user.Profile) error {
	r.log.Debug("Creating profile", "user_id", p.UserID)

	if err := p.Validate(); err != nil {
		r.log.Error("Profile validation failed", "error", err)
		return fmt.Errorf("profile validation failed: %w", err)
	}

	if err := r.db.Create(p).Error; err != nil {
		r.log.Error("Failed to create profile", "error", err, "user_id", p.UserID)
		return fmt.Errorf("failed to create profile: %w", err)
	}

	r.log.Info("Profile created successfully", "id", p.ID, "user_id", p.UserID)
	return nil
}

func (r *PostgresProfileRepository) GetByUserID(userID string) (*user.Profile, error) {
	r.log.Debug("retrieving profile by user ID", "user_id", userID)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	var p user.Profile
	if err := r.db.Where("user_id = ?", uid).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("Profile not found", "user_id", userID)
			return nil, ErrNotFound
		}
		r.log.Error("Failed to get profile by user ID", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get profile by user ID: %w", err)
	}

	return &p, nil
}

func (r *PostgresProfileRepository) Update(userID string, fields ProfileUpdate) error {
	r.log.Debug("Updating profile", "user_id", userID)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return ErrNotFound
	}

	if fields.IsEmpty() {
		return nil
	}

	updates := map[string]interface{}{}
	if fields.FirstName != nil {
		updates["first_name"] = *fields.FirstName
	}
	if fields.LastName != nil {
		updates["last_name"] = *fields.LastName
	}
	if fields.ContactNumber != nil {
		updates["contact_number"] = *fields.ContactNumber
	}

	result := r.db.Model(&user.Profile{}).Where("user_id = ?", uid).Updates(updates)
	if result.Error != nil {
		r.log.Error("Failed to update profile", "user_id", userID, "error", result.Error)
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.log.Info("Profile updated successfully", "user_id", userID)
	return nil
}
