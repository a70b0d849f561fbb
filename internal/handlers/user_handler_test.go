package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpyvent/xpyvent-api/internal/handlers"
)

func TestCreateUserAndAuthenticate(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/user/create", map[string]any{
		"email":    "a@x.com",
		"password": "pw1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	created := decode[handlers.CreateUserResponse](t, w)
	assert.True(t, created.Success)
	assert.NotEmpty(t, created.UserID)
	assert.Equal(t, "User created successfully", created.Message)

	// no name fields were supplied, so no profile row exists and the
	// profile lookup propagates as a fault
	w = doJSON(t, router, http.MethodGet, "/user/profile/"+created.UserID, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "not found")

	w = doJSON(t, router, http.MethodPost, "/user/authenticate", map[string]any{
		"email":    "a@x.com",
		"password": "pw1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	authed := decode[handlers.AuthenticateUserResponse](t, w)
	assert.True(t, authed.Success)
	assert.NotEmpty(t, authed.Token)
}

func TestAuthenticateFailureIsGeneric(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/user/create", map[string]any{
		"email":    "a@x.com",
		"password": "pw1",
	})
	require.True(t, decode[handlers.CreateUserResponse](t, w).Success)

	w = doJSON(t, router, http.MethodPost, "/user/authenticate", map[string]any{
		"email":    "a@x.com",
		"password": "wrong",
	})
	wrongPassword := decode[handlers.AuthenticateUserResponse](t, w)
	assert.False(t, wrongPassword.Success)
	assert.Empty(t, wrongPassword.Token)

	w = doJSON(t, router, http.MethodPost, "/user/authenticate", map[string]any{
		"email":    "nobody@x.com",
		"password": "pw1",
	})
	unknownEmail := decode[handlers.AuthenticateUserResponse](t, w)
	assert.False(t, unknownEmail.Success)

	// the message must not reveal which factor failed
	assert.Equal(t, wrongPassword.Message, unknownEmail.Message)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/user/create", map[string]any{
		"email":    "dup@x.com",
		"password": "pw1",
	})
	require.True(t, decode[handlers.CreateUserResponse](t, w).Success)

	w = doJSON(t, router, http.MethodPost, "/user/create", map[string]any{
		"email":    "dup@x.com",
		"password": "pw2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	dup := decode[handlers.CreateUserResponse](t, w)
	assert.False(t, dup.Success)
	assert.Empty(t, dup.UserID)
	assert.Equal(t, "Email already in use", dup.Message)
	assert.Contains(t, dup.Errors, "email")
}

func TestCreateUserWithNamesCreatesProfile(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/user/create", map[string]any{
		"email":     "named@x.com",
		"password":  "pw1",
		"firstName": "Grace",
	})
	created := decode[handlers.CreateUserResponse](t, w)
	require.True(t, created.Success)

	w = doJSON(t, router, http.MethodGet, "/user/profile/"+created.UserID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	profile := decode[handlers.UserProfileResponse](t, w)
	assert.Equal(t, "Grace", profile.FirstName)
	assert.Equal(t, "", profile.LastName)
	assert.Equal(t, "named@x.com", profile.Email)
	assert.Equal(t, "ATTENDEE", profile.Role)
	assert.NotEmpty(t, profile.CreatedAt)
}

func TestUpdateProfileContactNumberOnly(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/user/create", map[string]any{
		"email":     "c@x.com",
		"password":  "pw1",
		"firstName": "Ada",
		"lastName":  "Lovelace",
	})
	created := decode[handlers.CreateUserResponse](t, w)
	require.True(t, created.Success)

	w = doJSON(t, router, http.MethodPut, "/user/profile/update", map[string]any{
		"userId":        created.UserID,
		"firstName":     "Ada",
		"lastName":      "Lovelace",
		"email":         "c@x.com",
		"contactNumber": "555-0101",
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decode[handlers.UpdateProfileResponse](t, w)
	assert.True(t, updated.Success)
	assert.Len(t, updated.UpdatedFields, 1)
	assert.Equal(t, "555-0101", updated.UpdatedFields["contactNumber"])
}

func TestUpdateProfileEmailCollision(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/user/create", map[string]any{
		"email":    "first@x.com",
		"password": "pw1",
	})
	require.True(t, decode[handlers.CreateUserResponse](t, w).Success)

	w = doJSON(t, router, http.MethodPost, "/user/create", map[string]any{
		"email":     "second@x.com",
		"password":  "pw2",
		"firstName": "B",
	})
	second := decode[handlers.CreateUserResponse](t, w)
	require.True(t, second.Success)

	w = doJSON(t, router, http.MethodPut, "/user/profile/update", map[string]any{
		"userId":    second.UserID,
		"firstName": "B",
		"lastName":  "",
		"email":     "first@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	collided := decode[handlers.UpdateProfileResponse](t, w)
	assert.False(t, collided.Success)
	assert.Empty(t, collided.UpdatedFields)
}

func TestUpdateProfileEmailChange(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/user/create", map[string]any{
		"email":     "old@x.com",
		"password":  "pw1",
		"firstName": "O",
	})
	created := decode[handlers.CreateUserResponse](t, w)
	require.True(t, created.Success)

	w = doJSON(t, router, http.MethodPut, "/user/profile/update", map[string]any{
		"userId":    created.UserID,
		"firstName": "O",
		"lastName":  "",
		"email":     "new@x.com",
	})
	updated := decode[handlers.UpdateProfileResponse](t, w)
	assert.True(t, updated.Success)
	assert.Equal(t, "new@x.com", updated.UpdatedFields["email"])

	w = doJSON(t, router, http.MethodGet, "/user/profile/"+created.UserID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new@x.com", decode[handlers.UserProfileResponse](t, w).Email)
}

func TestCreateUserInvalidEmail(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/user/create", map[string]any{
		"email":    "not-an-email",
		"password": "pw1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "valid format")
}

func TestGetUserProfileInvalidID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/user/profile/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "valid UUID")
}

func TestUpdateProfileInvalidUserID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/user/profile/update", map[string]any{
		"userId":    "not-a-uuid",
		"firstName": "X",
		"lastName":  "Y",
		"email":     "x@y.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "valid UUID")
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/user/profile/update", map[string]any{
		"userId":    "2b1f7a34-1111-4222-8333-444455556666",
		"firstName": "X",
		"lastName":  "Y",
		"email":     "x@y.com",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "does not exist")
}
