// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tracker-app/backend/config"
	"github.com/tracker-app/backend/internal/application/usecase/auth"
	"github.com/tracker-app/backend/internal/application/usecase/board"
	"github.com/tracker-app/backend/internal/application/usecase/category"
	"github.com/tracker-app/backend/internal/application/usecase/completion"
	"github.com/tracker-app/backend/internal/application/usecase/statistics"
	"github.com/tracker-app/backend/internal/application/usecase/suggestion"
	"github.com/tracker-app/backend/internal/application/usecase/tracker"
	"github.com/tracker-app/backend/internal/infra/server/router"
	"github.com/tracker-app/backend/internal/integration/adapters"
	"github.com/tracker-app/backend/internal/integration/entrypoint/controller"
	"github.com/tracker-app/backend/internal/integration/entrypoint/middleware"
	"github.com/tracker-app/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	trackerRepo := persistence.NewTrackerRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	completionRepo := persistence.NewCompletionRepository(db)
	suggestionRepo := persistence.NewSuggestionRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	filterPrefs := adapters.NewFilterPreferenceStore(redisClient)
	geminiService := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create tracker use cases
	listTrackersUseCase := tracker.NewListTrackersUseCase(trackerRepo)
	createTrackerUseCase := tracker.NewCreateTrackerUseCase(trackerRepo, categoryRepo)
	updateTrackerUseCase := tracker.NewUpdateTrackerUseCase(trackerRepo, categoryRepo)
	deleteTrackerUseCase := tracker.NewDeleteTrackerUseCase(trackerRepo)
	pinTrackerUseCase := tracker.NewPinTrackerUseCase(trackerRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)

	// Create board use cases
	visibleSectionsUseCase := board.NewVisibleSectionsUseCase(trackerRepo, categoryRepo, completionRepo, filterPrefs)
	getFilterUseCase := board.NewGetFilterUseCase(filterPrefs)
	setFilterUseCase := board.NewSetFilterUseCase(filterPrefs)

	// Create completion, statistics and suggestion use cases
	toggleCompletionUseCase := completion.NewToggleCompletionUseCase(trackerRepo, completionRepo)
	getStatisticsUseCase := statistics.NewGetStatisticsUseCase(trackerRepo, completionRepo)
	suggestTrackerUseCase := suggestion.NewSuggestTrackerUseCase(geminiService, suggestionRepo, categoryRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	trackerController := controller.NewTrackerController(
		listTrackersUseCase,
		createTrackerUseCase,
		updateTrackerUseCase,
		deleteTrackerUseCase,
		pinTrackerUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
	)

	boardController := controller.NewBoardController(
		visibleSectionsUseCase,
		getFilterUseCase,
		setFilterUseCase,
	)

	completionController := controller.NewCompletionController(toggleCompletionUseCase)
	statisticsController := controller.NewStatisticsController(getStatisticsUseCase)
	paletteController := controller.NewPaletteController()
	suggestionController := controller.NewSuggestionController(suggestTrackerUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		trackerController,
		categoryController,
		boardController,
		completionController,
		statisticsController,
		paletteController,
		suggestionController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
