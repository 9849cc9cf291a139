package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecem/goodworks/internal/app/models"
	"github.com/ecem/goodworks/internal/config"
	"github.com/ecem/goodworks/internal/storage/memory"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Storage.Driver = driver
	cfg.Storage.DataDir = t.TempDir()
	return cfg
}

func TestSetupStorageMemoryIsSeeded(t *testing.T) {
	store, backend, err := SetupStorage(testConfig(t, config.DriverMemory), zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, BackendMemory, backend)

	users, err := store.Users().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestSetupStorageFileSeedsFirstRunOnly(t *testing.T) {
	cfg := testConfig(t, config.DriverFile)
	ctx := context.Background()

	store, backend, err := SetupStorage(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, BackendFile, backend)

	users, err := store.Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	extra := &models.User{Username: "extra", Password: "hash", FullName: "Extra", Email: "extra@example.com"}
	require.NoError(t, store.Users().Create(ctx, extra))
	require.NoError(t, store.Close())

	// Second startup over the same directory must not reseed
	store, _, err = SetupStorage(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	users, err = store.Users().List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)
}

func TestSetupStorageAutoWithoutDatabaseUsesFile(t *testing.T) {
	store, backend, err := SetupStorage(testConfig(t, config.DriverAuto), zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, BackendFile, backend)
}

func TestRouterAnswersOptionsWith200(t *testing.T) {
	cfg := testConfig(t, config.DriverMemory)
	cfg.Server.Mode = "production"

	store := memory.New()
	deps := BuildDependencies(store, BackendMemory, zerolog.Nop())
	router := SetupRouter(cfg, deps, zerolog.Nop())

	// CORS preflight
	req := httptest.NewRequest(http.MethodOptions, "/api/works", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Bare OPTIONS without preflight headers
	req = httptest.NewRequest(http.MethodOptions, "/api/members", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupStoragePostgresFallsBackToFile(t *testing.T) {
	cfg := testConfig(t, config.DriverPostgres)
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = "1" // nothing listens here
	cfg.Database.User = "postgres"
	cfg.Database.Password = "postgres"
	cfg.Database.DBName = "goodworks"

	store, backend, err := SetupStorage(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, BackendFile, backend)
}
