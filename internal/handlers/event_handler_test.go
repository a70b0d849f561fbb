package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpyvent/xpyvent-api/internal/handlers"
)

var eventDate = time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)

func createEvent(t *testing.T, router *gin.Engine, mediaURLs []string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/event/create", map[string]any{
		"title":       "Launch",
		"description": "desc",
		"date":        eventDate.Format(time.RFC3339),
		"location":    "HQ",
		"media":       mediaURLs,
	})
	require.Equal(t, http.StatusOK, w.Code)

	created := decode[handlers.CreateEventResponse](t, w)
	require.True(t, created.Success)
	require.NotEmpty(t, created.EventID)
	return created.EventID
}

func TestCreateEventWithMedia(t *testing.T) {
	router := newTestRouter(t)

	eventID := createEvent(t, router, []string{"u1.png", "u2.png"})

	w := doJSON(t, router, http.MethodGet, "/event/list", nil)
	require.Equal(t, http.StatusOK, w.Code)

	listed := decode[handlers.ListEventsResponse](t, w)
	require.Len(t, listed.Events, 1)

	e := listed.Events[0]
	assert.Equal(t, eventID, e.ID)
	assert.Equal(t, "Launch", e.Title)
	require.Len(t, e.Media, 2)

	urls := []string{e.Media[0].URL, e.Media[1].URL}
	assert.ElementsMatch(t, []string{"u1.png", "u2.png"}, urls)
	// /event/create stores every URL as IMAGE regardless of content
	for _, m := range e.Media {
		assert.Equal(t, "IMAGE", m.Type)
	}
}

func TestGetEventDetailsNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/event/details/9f0a16de-0000-4000-8000-000000000001", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestEventEndpointsRejectInvalidID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/event/details/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "valid UUID")

	w = doJSON(t, router, http.MethodPut, "/event/update/not-a-uuid", map[string]any{
		"title":       "T",
		"description": "D",
		"date":        eventDate.Format(time.RFC3339),
		"location":    "L",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/event/delete/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateEventReplacesMedia(t *testing.T) {
	router := newTestRouter(t)

	eventID := createEvent(t, router, []string{"u1.png", "u2.png"})

	w := doJSON(t, router, http.MethodPut, "/event/update/"+eventID, map[string]any{
		"title":       "Launch v2",
		"description": "desc",
		"date":        eventDate.Format(time.RFC3339),
		"location":    "HQ",
		"mediaContents": []map[string]any{
			{"type": "VIDEO", "url": "teaser.mp4"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decode[handlers.UpdateEventResponse](t, w)
	assert.True(t, updated.Success)
	assert.Contains(t, updated.UpdatedFields, "mediaContents")

	w = doJSON(t, router, http.MethodGet, "/event/details/"+eventID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	details := decode[handlers.EventDetails](t, w)
	assert.Equal(t, "Launch v2", details.Title)
	require.Len(t, details.Media, 1)
	assert.Equal(t, "VIDEO", details.Media[0].Type)
	assert.Equal(t, "teaser.mp4", details.Media[0].URL)
}

func TestUpdateEventEmptyMediaLeavesExisting(t *testing.T) {
	router := newTestRouter(t)

	eventID := createEvent(t, router, []string{"u1.png", "u2.png"})

	w := doJSON(t, router, http.MethodPut, "/event/update/"+eventID, map[string]any{
		"title":         "Renamed",
		"description":   "new desc",
		"date":          eventDate.Format(time.RFC3339),
		"location":      "Elsewhere",
		"mediaContents": []map[string]any{},
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decode[handlers.UpdateEventResponse](t, w)
	assert.True(t, updated.Success)
	// scalars are always reported as updated, even when unchanged
	assert.ElementsMatch(t, []string{"title", "description", "date", "location"}, updated.UpdatedFields)

	w = doJSON(t, router, http.MethodGet, "/event/details/"+eventID, nil)
	details := decode[handlers.EventDetails](t, w)
	assert.Equal(t, "Renamed", details.Title)
	assert.Equal(t, "Elsewhere", details.Location)
	assert.Len(t, details.Media, 2)
}

func TestUpdateEventNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/event/update/9f0a16de-0000-4000-8000-000000000001", map[string]any{
		"title":       "T",
		"description": "D",
		"date":        eventDate.Format(time.RFC3339),
		"location":    "L",
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decode[handlers.UpdateEventResponse](t, w)
	assert.False(t, updated.Success)
	assert.Empty(t, updated.UpdatedFields)
}

func TestDeleteEvent(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/event/delete/9f0a16de-0000-4000-8000-000000000001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[handlers.DeleteEventResponse](t, w).Success)

	eventID := createEvent(t, router, nil)

	w = doJSON(t, router, http.MethodDelete, "/event/delete/"+eventID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[handlers.DeleteEventResponse](t, w).Success)

	w = doJSON(t, router, http.MethodGet, "/event/details/"+eventID, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
