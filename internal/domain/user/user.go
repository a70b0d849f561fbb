package user

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account identified by a unique email
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         Role      `json:"role" gorm:"type:user_role;not null;default:'ATTENDEE'"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}

// BeforeCreate sets a UUID before creating the record
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// NewUser creates a new user with the given email and password hash
func NewUser(email, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleAttendee,
		CreatedAt:    time.Now(),
	}
}

// Validate checks if the user data is valid
func (u *User) Validate() error {
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	return nil
}

// Role represents the account role of a user
type Role byte

const (
	RoleAttendee Role = iota
	RoleAdmin
	RoleGuest
)

func (r Role) String() string {
	switch r {
	case RoleAttendee:
		return "ATTENDEE"
	case RoleAdmin:
		return "ADMIN"
	case RoleGuest:
		return "GUEST"
	default:
		return "unknown"
	}
}

// MarshalJSON implements the json.Marshaler interface
func (r Role) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (r *Role) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	role, valid := RoleFromString(str)
	if !valid {
		return fmt.Errorf("invalid role: %s", str)
	}
	*r = role
	return nil
}

// RoleFromString converts a string to a Role
func RoleFromString(s string) (Role, bool) {
	switch s {
	case "ATTENDEE":
		return RoleAttendee, true
	case "ADMIN":
		return RoleAdmin, true
	case "GUEST":
		return RoleGuest, true
	default:
		return RoleAttendee, false
	}
}

// Scan implements the sql.Scanner interface for database deserialization
func (r *Role) Scan(value interface{}) error {
	if value == nil {
		*r = RoleAttendee
		return nil
	}

	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("cannot scan %T into Role", value)
	}

	role, valid := RoleFromString(str)
	if !valid {
		return fmt.Errorf("invalid role value: %s", str)
	}
	*r = role
	return nil
}

// Value implements the driver.Valuer interface for database serialization
func (r Role) Value() (driver.Value, error) {
	return r.String(), nil
}
