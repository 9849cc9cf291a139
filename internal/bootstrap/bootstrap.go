package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ecem/goodworks/internal/app/controllers"
	"github.com/ecem/goodworks/internal/app/models/dto"
	appRoutes "github.com/ecem/goodworks/internal/app/routes"
	appServices "github.com/ecem/goodworks/internal/app/services"
	"github.com/ecem/goodworks/internal/config"
	appMiddleware "github.com/ecem/goodworks/internal/middleware"
	"github.com/ecem/goodworks/internal/pkg/logger"
	"github.com/ecem/goodworks/internal/seed"
	"github.com/ecem/goodworks/internal/storage"
	"github.com/ecem/goodworks/internal/storage/file"
	"github.com/ecem/goodworks/internal/storage/memory"
	"github.com/ecem/goodworks/internal/storage/postgres"
)

// Backend names reported by health and logged at selection time.
const (
	BackendPostgres = "postgres"
	BackendFile     = "file"
	BackendMemory   = "memory"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	MemberService  *appServices.MemberService
	WorkService    *appServices.WorkService
	NewsService    *appServices.NewsService
	EventService   *appServices.EventService
	StatsService   *appServices.StatsService
	ContactService *appServices.ContactService

	MemberController *appControllers.MemberController
	WorkController   *appControllers.WorkController
	NewsController   *appControllers.NewsController
	EventController  *appControllers.EventController
	SiteController   *appControllers.SiteController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage selects and initializes the storage backend. It returns the
// store together with the backend name that was actually selected, which can
// differ from the configured driver when postgres is unreachable.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (storage.Store, string, error) {
	driver := cfg.Storage.Driver

	if driver == config.DriverMemory {
		store := memory.New()
		if err := seed.Apply(context.Background(), store, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to seed memory store, proceeding anyway...")
		}
		lgr.Info().Msg("Using in-memory storage backend")
		return store, BackendMemory, nil
	}

	if driver == config.DriverPostgres || (driver == config.DriverAuto && cfg.DatabaseConfigured()) {
		store, err := setupPostgres(cfg, lgr)
		if err == nil {
			lgr.Info().Msg("Using postgres storage backend")
			return store, BackendPostgres, nil
		}
		lgr.Warn().Err(err).Msg("Postgres unavailable, falling back to file storage backend")
	}

	store, err := setupFile(cfg, lgr)
	if err != nil {
		return nil, "", err
	}
	lgr.Info().Str("dataDir", cfg.Storage.DataDir).Msg("Using file storage backend")
	return store, BackendFile, nil
}

// setupPostgres opens the pool, runs migrations and smoke-tests the
// connection with a real query before committing to the backend.
func setupPostgres(cfg *config.Config, lgr zerolog.Logger) (storage.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	lgr.Info().Msg("Establishing database connection...")
	store, err := postgres.Open(ctx, cfg, "migrations")
	if err != nil {
		return nil, err
	}

	if _, err := store.Users().List(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// setupFile opens the JSON file store and seeds it on first run.
func setupFile(cfg *config.Config, lgr zerolog.Logger) (storage.Store, error) {
	store, err := file.New(cfg.Storage.DataDir)
	if err != nil {
		lgr.Error().Err(err).Str("dataDir", cfg.Storage.DataDir).Msg("Failed to open file storage")
		return nil, err
	}

	ctx := context.Background()
	empty, err := seed.IsEmpty(ctx, store)
	if err != nil {
		return nil, err
	}
	if empty {
		if err := seed.Apply(ctx, store, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to seed file store, proceeding anyway...")
		}
	}
	return store, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(store storage.Store, backend string, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.MemberService = appServices.NewMemberService(store)
	deps.WorkService = appServices.NewWorkService(store)
	deps.NewsService = appServices.NewNewsService(store)
	deps.EventService = appServices.NewEventService(store)
	deps.StatsService = appServices.NewStatsService(store)
	deps.ContactService = appServices.NewContactService(lgr)

	deps.MemberController = appControllers.NewMemberController(deps.MemberService)
	deps.WorkController = appControllers.NewWorkController(deps.WorkService)
	deps.NewsController = appControllers.NewNewsController(deps.NewsService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.SiteController = appControllers.NewSiteController(deps.StatsService, deps.ContactService, store, backend)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.OptionsResponseStatusCode = http.StatusOK
	router.Use(cors.New(corsConfig))

	// Bare OPTIONS requests carry no preflight headers and skip the cors
	// handler; answer them 200 instead of gin's 404
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusOK)
			return
		}
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
	})

	appRoutes.SetupRouter(router,
		deps.MemberController,
		deps.WorkController,
		deps.NewsController,
		deps.EventController,
		deps.SiteController,
	)

	return router
}
