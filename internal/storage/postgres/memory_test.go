package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpyvent/xpyvent-api/internal/domain/event"
	"github.com/xpyvent/xpyvent-api/internal/domain/feedback"
	"github.com/xpyvent/xpyvent-api/internal/domain/media"
	"github.com/xpyvent/xpyvent-api/internal/domain/user"
)

func strPtr(s string) *string { return &s }

func TestMemoryUserRepositoryCreateAndGet(t *testing.T) {
	c := NewMemoryContainer()
	repo := c.Users()

	u := user.NewUser("ada@example.com", "hash")
	require.NoError(t, repo.Create(u))

	byID, err := repo.GetByID(u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)

	byEmail, err := repo.GetByEmail("ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUserRepositoryDuplicateEmail(t *testing.T) {
	c := NewMemoryContainer()
	repo := c.Users()

	require.NoError(t, repo.Create(user.NewUser("ada@example.com", "hash")))

	err := repo.Create(user.NewUser("ada@example.com", "other"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestMemoryUserRepositoryUpdateEmail(t *testing.T) {
	c := NewMemoryContainer()
	repo := c.Users()

	first := user.NewUser("ada@example.com", "hash")
	second := user.NewUser("grace@example.com", "hash")
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	// collision with another account
	err := repo.UpdateEmail(first.ID.String(), "grace@example.com")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	require.NoError(t, repo.UpdateEmail(first.ID.String(), "ada@newdomain.com"))
	got, err := repo.GetByID(first.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "ada@newdomain.com", got.Email)

	err = repo.UpdateEmail(uuid.NewString(), "x@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryProfileRepositorySparseUpdate(t *testing.T) {
	c := NewMemoryContainer()
	users := c.Users()
	profiles := c.Profiles()

	u := user.NewUser("ada@example.com", "hash")
	require.NoError(t, users.Create(u))
	require.NoError(t, profiles.Create(user.NewProfile(u.ID, "Ada", "Lovelace")))

	// only contact number set; names must survive untouched
	err := profiles.Update(u.ID.String(), ProfileUpdate{ContactNumber: strPtr("555-0100")})
	require.NoError(t, err)

	p, err := profiles.GetByUserID(u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, "Lovelace", p.LastName)
	require.NotNil(t, p.ContactNumber)
	assert.Equal(t, "555-0100", *p.ContactNumber)

	// empty update is a no-op even for missing users
	assert.NoError(t, profiles.Update(uuid.NewString(), ProfileUpdate{}))

	err = profiles.Update(uuid.NewString(), ProfileUpdate{FirstName: strPtr("X")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryEventRepositoryCreateWithMedia(t *testing.T) {
	c := NewMemoryContainer()
	events := c.Events()

	e := event.NewEvent("Launch", "Kickoff", time.Now().Add(24*time.Hour), "HQ", "placeholder_user_id")
	items := []*media.Media{
		media.NewMedia(uuid.Nil, media.TypeImage, "https://cdn.example.com/a.png"),
		media.NewMedia(uuid.Nil, media.TypeImage, "https://cdn.example.com/b.png"),
	}
	require.NoError(t, events.CreateWithMedia(e, items))

	got, err := events.GetByID(e.ID.String(), true)
	require.NoError(t, err)
	assert.Len(t, got.Media, 2)
	for _, m := range got.Media {
		assert.Equal(t, e.ID, m.EventID)
	}

	// without the preload flag media stays empty
	bare, err := events.GetByID(e.ID.String(), false)
	require.NoError(t, err)
	assert.Empty(t, bare.Media)
}

func TestMemoryEventRepositoryDeleteCascadesMedia(t *testing.T) {
	c := NewMemoryContainer()
	events := c.Events()
	mediaRepo := c.Media()

	e := event.NewEvent("Launch", "Kickoff", time.Now(), "HQ", "placeholder_user_id")
	m := media.NewMedia(uuid.Nil, media.TypeVideo, "https://cdn.example.com/clip.mp4")
	require.NoError(t, events.CreateWithMedia(e, []*media.Media{m}))

	existed, err := events.Delete(e.ID.String())
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = mediaRepo.GetByID(m.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)

	existed, err = events.Delete(e.ID.String())
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestMemoryEventRepositoryUpdateCore(t *testing.T) {
	c := NewMemoryContainer()
	events := c.Events()

	e := event.NewEvent("Old", "Old desc", time.Now(), "Old place", "placeholder_user_id")
	require.NoError(t, events.Create(e))

	newDate := time.Now().Add(48 * time.Hour)
	require.NoError(t, events.UpdateCore(e.ID.String(), "New", "New desc", newDate, "New place"))

	got, err := events.GetByID(e.ID.String(), false)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "New desc", got.Description)
	assert.Equal(t, "New place", got.Location)
	assert.WithinDuration(t, newDate, got.Date, time.Second)

	err = events.UpdateCore(uuid.NewString(), "X", "Y", newDate, "Z")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryMediaRepositoryReplaceForEvent(t *testing.T) {
	c := NewMemoryContainer()
	events := c.Events()
	mediaRepo := c.Media()

	e := event.NewEvent("Launch", "Kickoff", time.Now(), "HQ", "placeholder_user_id")
	old := []*media.Media{
		media.NewMedia(uuid.Nil, media.TypeImage, "https://cdn.example.com/a.png"),
		media.NewMedia(uuid.Nil, media.TypeImage, "https://cdn.example.com/b.png"),
	}
	require.NoError(t, events.CreateWithMedia(e, old))

	replacement := media.NewMedia(e.ID, media.TypeVideo, "https://cdn.example.com/teaser.mp4")
	require.NoError(t, mediaRepo.ReplaceForEvent(e.ID, []*media.Media{replacement}))

	got, err := events.GetByID(e.ID.String(), true)
	require.NoError(t, err)
	require.Len(t, got.Media, 1)
	assert.Equal(t, media.TypeVideo, got.Media[0].Type)
	assert.Equal(t, "https://cdn.example.com/teaser.mp4", got.Media[0].URL)

	for _, m := range old {
		_, err := mediaRepo.GetByID(m.ID.String())
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestMemoryMediaRepositoryDelete(t *testing.T) {
	c := NewMemoryContainer()
	repo := c.Media()

	m := media.NewMedia(uuid.New(), media.TypeImage, "https://cdn.example.com/a.png")
	require.NoError(t, repo.Create(m))

	existed, err := repo.Delete(m.ID.String())
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.Delete(m.ID.String())
	require.NoError(t, err)
	assert.False(t, existed)

	// unparseable id behaves like a missing row
	existed, err = repo.Delete("not-a-uuid")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestMemoryContainerWithTransaction(t *testing.T) {
	c := NewMemoryContainer()

	u := user.NewUser("ada@example.com", "hash")
	err := c.WithTransaction(func(tx RepositoryContainer) error {
		if err := tx.Users().Create(u); err != nil {
			return err
		}
		return tx.Profiles().Create(user.NewProfile(u.ID, "Ada", "Lovelace"))
	})
	require.NoError(t, err)

	got, err := c.Users().GetByID(u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)

	p, err := c.Profiles().GetByUserID(u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.FirstName)

	wantErr := errors.New("boom")
	err = c.WithTransaction(func(tx RepositoryContainer) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestMemoryFeedbackRepositoryCreate(t *testing.T) {
	c := NewMemoryContainer()
	repo := c.Feedback()

	f := feedback.NewFeedback(nil, "Great event!")
	require.NoError(t, repo.Create(f))
	assert.NotEqual(t, uuid.Nil, f.ID)
	assert.False(t, f.CreatedAt.IsZero())

	userID := uuid.New()
	withUser := feedback.NewFeedback(&userID, "Loved it")
	require.NoError(t, repo.Create(withUser))
}
