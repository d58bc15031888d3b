package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/campusconnect/internal/app/controllers"
	appRepos "github.com/yigit/campusconnect/internal/app/repositories"
	appRoutes "github.com/yigit/campusconnect/internal/app/routes"
	appServices "github.com/yigit/campusconnect/internal/app/services"
	"github.com/yigit/campusconnect/internal/config"
	appMiddleware "github.com/yigit/campusconnect/internal/middleware"
	pkgAuth "github.com/yigit/campusconnect/internal/pkg/auth"
	"github.com/yigit/campusconnect/internal/pkg/helpers"
	"github.com/yigit/campusconnect/internal/pkg/logger"
	"github.com/yigit/campusconnect/internal/seed"
	"github.com/yigit/campusconnect/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store          *store.Store
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// OpenStorage opens the data directory and builds the repositories over it.
func OpenStorage(cfg *config.Config, lgr zerolog.Logger) (*store.Store, *appRepos.Repositories, error) {
	lgr.Info().Str("dataDir", cfg.Storage.DataDir).Msg("Opening data directory...")
	st, err := store.Open(cfg.Storage.DataDir, lgr.With().Str("component", "store").Logger())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open data directory")
		return nil, nil, err
	}

	repos := appRepos.NewRepositories(st, appRepos.Options{
		DedupeLikes: cfg.Features.DedupeLikes,
	}, lgr)
	return st, repos, nil
}

// SetupStorage opens the data directory and seeds any missing collection.
// Seeding failures are logged; the server still starts.
func SetupStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*store.Store, *appRepos.Repositories, error) {
	st, repos, err := OpenStorage(cfg, lgr)
	if err != nil {
		return nil, nil, err
	}

	if err := seed.CreateDefaultData(ctx, repos, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return st, repos, nil
}

// BuildDependencies initializes services, middleware and controllers.
func BuildDependencies(cfg *config.Config, st *store.Store, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	deps := &Dependencies{
		Store:  st,
		Repos:  repos,
		Logger: lgr,
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(repos, deps.JWTService, lgr)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = &appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.Services.AuthService, lgr.With().Str("controller", "auth").Logger()),
		Club:         appControllers.NewClubController(deps.Services.ClubService),
		Chat:         appControllers.NewChatController(deps.Services.ChatService),
		Call:         appControllers.NewCallController(deps.Services.CallService),
		Confession:   appControllers.NewConfessionController(deps.Services.ConfessionService),
		Announcement: appControllers.NewAnnouncementController(deps.Services.AnnouncementService),
		Admin:        appControllers.NewAdminController(deps.Services.UserService, deps.Services.DashboardService),
		Home:         appControllers.NewHomeController(deps.Services.UserService, deps.Services.DashboardService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr.With().Str("component", "http").Logger()))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
