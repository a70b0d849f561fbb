package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpyvent/xpyvent-api/internal/handlers"
)

func TestSubmitFeedbackAnonymous(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/feedback/submit", map[string]any{
		"content": "great event",
	})
	require.Equal(t, http.StatusOK, w.Code)

	submitted := decode[handlers.SubmitFeedbackResponse](t, w)
	assert.True(t, submitted.Success)
	assert.NotEmpty(t, submitted.FeedbackID)
}

func TestSubmitFeedbackWithUser(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/user/create", map[string]any{
		"email":    "fb@x.com",
		"password": "pw1",
	})
	created := decode[handlers.CreateUserResponse](t, w)
	require.True(t, created.Success)

	w = doJSON(t, router, http.MethodPost, "/feedback/submit", map[string]any{
		"userId":  created.UserID,
		"content": "loved it",
	})
	require.Equal(t, http.StatusOK, w.Code)

	submitted := decode[handlers.SubmitFeedbackResponse](t, w)
	assert.True(t, submitted.Success)
	assert.NotEmpty(t, submitted.FeedbackID)
}

func TestSubmitFeedbackInvalidUserID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/feedback/submit", map[string]any{
		"userId":  "not-a-uuid",
		"content": "hello",
	})
	require.Equal(t, http.StatusOK, w.Code)

	submitted := decode[handlers.SubmitFeedbackResponse](t, w)
	assert.False(t, submitted.Success)
	assert.Empty(t, submitted.FeedbackID)
	assert.Contains(t, submitted.Message, "Failed to submit feedback")
}

func TestSubmitFeedbackMissingContent(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/feedback/submit", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
