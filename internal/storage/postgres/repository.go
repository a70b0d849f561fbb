package postgres

import (
	"errors"
	"time"

	"github.com/xpyvent/xpyvent-api/internal/domain/event"
	"github.com/xpyvent/xpyvent-api/internal/domain/feedback"
	"github.com/xpyvent/xpyvent-api/internal/domain/media"
	"github.com/xpyvent/xpyvent-api/internal/domain/user"

	"github.com/google/uuid"
)

// ErrNotFound is returned by read operations when no row matches.
// Callers decide whether absence is an error.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when the email unique constraint is hit.
// The database index is the authoritative duplicate signal; handler
// pre-checks only shape the error message.
var ErrDuplicateEmail = errors.New("email already in use")

// ProfileUpdate is a sparse set of profile fields. Nil pointers leave the
// stored value untouched.
type ProfileUpdate struct {
	FirstName     *string
	LastName      *string
	ContactNumber *string
}

// IsEmpty reports whether no field is set
func (u ProfileUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.ContactNumber == nil
}

// UserRepository defines the data access methods for users
type UserRepository interface {
	Create(u *user.User) error
	GetByID(id string) (*user.User, error)
	GetByEmail(email string) (*user.User, error)
	UpdateEmail(id, email string) error
}

// ProfileRepository defines the data access methods for user profiles
type ProfileRepository interface {
	Create(p *user.Profile) error
	GetByUserID(userID string) (*user.Profile, error)
	Update(userID string, fields ProfileUpdate) error
}

// EventRepository defines the data access methods for events
type EventRepository interface {
	Create(e *event.Event) error
	// CreateWithMedia creates the event and its initial media rows in one
	// transaction: either everything commits or nothing does.
	CreateWithMedia(e *event.Event, items []*media.Media) error
	GetByID(id string, includeMedia bool) (*event.Event, error)
	GetAll(includeMedia bool) ([]*event.Event, error)
	UpdateCore(id, title, description string, date time.Time, location string) error
	// Delete removes the event and reports whether a row existed
	Delete(id string) (bool, error)
}

// MediaRepository defines the data access methods for event media
type MediaRepository interface {
	Create(m *media.Media) error
	GetByID(id string) (*media.Media, error)
	// Delete removes the media row and reports whether a row existed
	Delete(id string) (bool, error)
	DeleteByEventID(eventID string) error
	// ReplaceForEvent deletes every media row of the event and recreates
	// exactly the supplied set in one transaction.
	ReplaceForEvent(eventID uuid.UUID, items []*media.Media) error
}

// FeedbackRepository defines the data access methods for feedback entries
type FeedbackRepository interface {
	Create(f *feedback.Feedback) error
}

// RepositoryContainer bundles the per-entity repositories behind one handle
type RepositoryContainer interface {
	Users() UserRepository
	Profiles() ProfileRepository
	Events() EventRepository
	Media() MediaRepository
	Feedback() FeedbackRepository
	// WithTransaction runs fn against a container whose repositories share
	// one transaction; an error from fn rolls every write back.
	WithTransaction(fn func(RepositoryContainer) error) error
	Health() error
	Close() error
}
