package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ecem/goodworks/internal/app/controllers"
	"github.com/ecem/goodworks/internal/app/routes"
	"github.com/ecem/goodworks/internal/app/services"
	"github.com/ecem/goodworks/internal/storage"
	"github.com/ecem/goodworks/internal/storage/memory"
)

// newTestRouter wires the full controller stack over a fresh in-memory
// store.
func newTestRouter(t *testing.T) (*gin.Engine, storage.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.New()
	lgr := zerolog.Nop()

	memberService := services.NewMemberService(store)
	workService := services.NewWorkService(store)
	newsService := services.NewNewsService(store)
	eventService := services.NewEventService(store)
	statsService := services.NewStatsService(store)
	contactService := services.NewContactService(lgr)

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewMemberController(memberService),
		controllers.NewWorkController(workService),
		controllers.NewNewsController(newsService),
		controllers.NewEventController(eventService),
		controllers.NewSiteController(statsService, contactService, store, "memory"),
	)
	return router, store
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

