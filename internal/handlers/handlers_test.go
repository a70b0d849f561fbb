package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xpyvent/xpyvent-api/internal/handlers"
	"github.com/xpyvent/xpyvent-api/internal/server"
	"github.com/xpyvent/xpyvent-api/internal/storage/postgres"
)

const testMediaBaseURL = "https://yourmediastorage.url"

// newTestRouter wires the full route table against an empty in-memory
// container
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	container := postgres.NewMemoryContainer()

	router := gin.New()
	server.RegisterRoutes(
		router,
		handlers.NewUserHandler(container),
		handlers.NewEventHandler(container.Events(), container.Media()),
		handlers.NewMediaHandler(container.Media(), testMediaBaseURL),
		handlers.NewFeedbackHandler(container.Feedback()),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
