package user

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile holds the optional personal details attached to a user.
// Each user owns at most one profile.
type Profile struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	FirstName     string    `json:"first_name" gorm:"not null;default:''"`
	LastName      string    `json:"last_name" gorm:"not null;default:''"`
	ContactNumber *string   `json:"contact_number,omitempty"`
}

// TableName overrides the table name used by GORM
func (Profile) TableName() string {
	return "profiles"
}

// BeforeCreate sets a UUID before creating the record
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// NewProfile creates a profile for the given user
func NewProfile(userID uuid.UUID, firstName, lastName string) *Profile {
	return &Profile{
		ID:        uuid.New(),
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
	}
}

// Validate checks if the profile data is valid
func (p *Profile) Validate() error {
	if p.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	return nil
}
