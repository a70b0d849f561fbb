package postgres

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xpyvent/xpyvent-api/internal/domain/event"
	"github.com/xpyvent/xpyvent-api/internal/domain/feedback"
	"github.com/xpyvent/xpyvent-api/internal/domain/media"
	"github.com/xpyvent/xpyvent-api/internal/domain/user"
)

// memoryStore is the shared state behind the in-memory repositories.
// A single lock guards all tables; good enough for tests and local runs.
type memoryStore struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]user.User
	profiles map[uuid.UUID]user.Profile // keyed by user ID
	events   map[uuid.UUID]event.Event
	media    map[uuid.UUID]media.Media
	feedback map[uuid.UUID]feedback.Feedback
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    make(map[uuid.UUID]user.User),
		profiles: make(map[uuid.UUID]user.Profile),
		events:   make(map[uuid.UUID]event.Event),
		media:    make(map[uuid.UUID]media.Media),
		feedback: make(map[uuid.UUID]feedback.Feedback),
	}
}

// MemoryContainer implements RepositoryContainer entirely in memory.
// It backs the handler tests and the memory storage backend.
type MemoryContainer struct {
	store *memoryStore
}

// NewMemoryContainer creates a container with empty in-memory tables
func NewMemoryContainer() *MemoryContainer {
	return &MemoryContainer{store: newMemoryStore()}
}

func (c *MemoryContainer) Users() UserRepository        { return &memoryUserRepository{c.store} }
func (c *MemoryContainer) Profiles() ProfileRepository  { return &memoryProfileRepository{c.store} }
func (c *MemoryContainer) Events() EventRepository      { return &memoryEventRepository{c.store} }
func (c *MemoryContainer) Media() MediaRepository       { return &memoryMediaRepository{c.store} }
func (c *MemoryContainer) Feedback() FeedbackRepository { return &memoryFeedbackRepository{c.store} }

func (c *MemoryContainer) Health() error { return nil }
func (c *MemoryContainer) Close() error  { return nil }

// WithTransaction runs fn against the container itself. The memory backend
// has no isolation or rollback; writes land immediately.
func (c *MemoryContainer) WithTransaction(fn func(RepositoryContainer) error) error {
	return fn(c)
}

// InMemoryUserRepository and friends mirror the semantics of the GORM
// repositories: ErrNotFound on absence, ErrDuplicateEmail on collisions.

type memoryUserRepository struct {
	store *memoryStore
}

func (r *memoryUserRepository) Create(u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.store.users[u.ID] = *u
	return nil
}

func (r *memoryUserRepository) GetByID(id string) (*user.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, exists := r.store.users[userID]
	if !exists {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *memoryUserRepository) GetByEmail(email string) (*user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) UpdateEmail(id, email string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, exists := r.store.users[userID]
	if !exists {
		return ErrNotFound
	}

	for otherID, other := range r.store.users {
		if otherID != userID && other.Email == email {
			return ErrDuplicateEmail
		}
	}

	u.Email = email
	u.UpdatedAt = time.Now()
	r.store.users[userID] = u
	return nil
}

type memoryProfileRepository struct {
	store *memoryStore
}

func (r *memoryProfileRepository) Create(p *user.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.store.profiles[p.UserID] = *p
	return nil
}

func (r *memoryProfileRepository) GetByUserID(userID string) (*user.Profile, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, exists := r.store.profiles[uid]
	if !exists {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *memoryProfileRepository) Update(userID string, fields ProfileUpdate) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return ErrNotFound
	}

	if fields.IsEmpty() {
		return nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, exists := r.store.profiles[uid]
	if !exists {
		return ErrNotFound
	}

	if fields.FirstName != nil {
		p.FirstName = *fields.FirstName
	}
	if fields.LastName != nil {
		p.LastName = *fields.LastName
	}
	if fields.ContactNumber != nil {
		contact := *fields.ContactNumber
		p.ContactNumber = &contact
	}
	r.store.profiles[uid] = p
	return nil
}

type memoryEventRepository struct {
	store *memoryStore
}

func (r *memoryEventRepository) Create(e *event.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	stored := *e
	stored.Media = nil
	r.store.events[e.ID] = stored
	return nil
}

func (r *memoryEventRepository) CreateWithMedia(e *event.Event, items []*media.Media) error {
	if err := e.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	stored := *e
	stored.Media = nil
	r.store.events[e.ID] = stored

	for _, m := range items {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		m.EventID = e.ID
		r.store.media[m.ID] = *m
	}
	return nil
}

func (r *memoryEventRepository) GetByID(id string, includeMedia bool) (*event.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, exists := r.store.events[eventID]
	if !exists {
		return nil, ErrNotFound
	}

	if includeMedia {
		e.Media = r.store.mediaForEventLocked(eventID)
	}
	return &e, nil
}

func (r *memoryEventRepository) GetAll(includeMedia bool) ([]*event.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	events := make([]*event.Event, 0, len(r.store.events))
	for id := range r.store.events {
		e := r.store.events[id]
		if includeMedia {
			e.Media = r.store.mediaForEventLocked(id)
		}
		events = append(events, &e)
	}
	return events, nil
}

func (r *memoryEventRepository) UpdateCore(id, title, description string, date time.Time, location string) error {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, exists := r.store.events[eventID]
	if !exists {
		return ErrNotFound
	}

	e.Title = title
	e.Description = description
	e.Date = date
	e.Location = location
	r.store.events[eventID] = e
	return nil
}

func (r *memoryEventRepository) Delete(id string) (bool, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.events[eventID]; !exists {
		return false, nil
	}

	delete(r.store.events, eventID)
	// mirror the ON DELETE CASCADE on media.event_id
	for mid, m := range r.store.media {
		if m.EventID == eventID {
			delete(r.store.media, mid)
		}
	}
	return true, nil
}

type memoryMediaRepository struct {
	store *memoryStore
}

func (r *memoryMediaRepository) Create(m *media.Media) error {
	if err := m.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.store.media[m.ID] = *m
	return nil
}

func (r *memoryMediaRepository) GetByID(id string) (*media.Media, error) {
	mediaID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, exists := r.store.media[mediaID]
	if !exists {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (r *memoryMediaRepository) Delete(id string) (bool, error) {
	mediaID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.media[mediaID]; !exists {
		return false, nil
	}
	delete(r.store.media, mediaID)
	return true, nil
}

func (r *memoryMediaRepository) DeleteByEventID(eventID string) error {
	eid, err := uuid.Parse(eventID)
	if err != nil {
		return ErrNotFound
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for mid, m := range r.store.media {
		if m.EventID == eid {
			delete(r.store.media, mid)
		}
	}
	return nil
}

func (r *memoryMediaRepository) ReplaceForEvent(eventID uuid.UUID, items []*media.Media) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for mid, m := range r.store.media {
		if m.EventID == eventID {
			delete(r.store.media, mid)
		}
	}
	for _, m := range items {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		m.EventID = eventID
		r.store.media[m.ID] = *m
	}
	return nil
}

type memoryFeedbackRepository struct {
	store *memoryStore
}

func (r *memoryFeedbackRepository) Create(f *feedback.Feedback) error {
	if err := f.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	f.CreatedAt = time.Now()
	r.store.feedback[f.ID] = *f
	return nil
}

// mediaForEventLocked collects an event's media; the caller must hold the lock
func (s *memoryStore) mediaForEventLocked(eventID uuid.UUID) []media.Media {
	var items []media.Media
	for _, m := range s.media {
		if m.EventID == eventID {
			items = append(items, m)
		}
	}
	return items
}
