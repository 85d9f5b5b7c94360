// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/tracker-app/backend/internal/integration/entrypoint/controller"
	"github.com/tracker-app/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	trackerController    *controller.TrackerController
	categoryController   *controller.CategoryController
	boardController      *controller.BoardController
	completionController *controller.CompletionController
	statisticsController *controller.StatisticsController
	paletteController    *controller.PaletteController
	suggestionController *controller.SuggestionController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	trackerController *controller.TrackerController,
	categoryController *controller.CategoryController,
	boardController *controller.BoardController,
	completionController *controller.CompletionController,
	statisticsController *controller.StatisticsController,
	paletteController *controller.PaletteController,
	suggestionController *controller.SuggestionController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		trackerController:    trackerController,
		categoryController:   categoryController,
		boardController:      boardController,
		completionController: completionController,
		statisticsController: statisticsController,
		paletteController:    paletteController,
		suggestionController: suggestionController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Tracker routes (require authentication)
		if r.trackerController != nil && r.authMiddleware != nil {
			trackers := v1.Group("/trackers")
			trackers.Use(r.authMiddleware.Authenticate())
			{
				trackers.GET("", r.trackerController.List)
				trackers.POST("", r.trackerController.Create)
				trackers.PUT("/:id", r.trackerController.Update)
				trackers.DELETE("/:id", r.trackerController.Delete)
				trackers.PATCH("/:id/pin", r.trackerController.Pin)

				// Completion toggle (nested under trackers)
				if r.completionController != nil {
					trackers.POST("/:id/toggle", r.completionController.Toggle)
				}
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
			}
		}

		// Board routes (require authentication)
		if r.boardController != nil && r.authMiddleware != nil {
			board := v1.Group("/board")
			board.Use(r.authMiddleware.Authenticate())
			{
				board.GET("", r.boardController.Get)
				board.GET("/filter", r.boardController.GetFilter)
				board.PUT("/filter", r.boardController.SetFilter)
			}
		}

		// Statistics routes (require authentication)
		if r.statisticsController != nil && r.authMiddleware != nil {
			statistics := v1.Group("/statistics")
			statistics.Use(r.authMiddleware.Authenticate())
			{
				statistics.GET("", r.statisticsController.Get)
			}
		}

		// Palette route (static data, no authentication required)
		if r.paletteController != nil {
			v1.GET("/palette", r.paletteController.Get)
		}

		// Suggestion routes (require authentication)
		if r.suggestionController != nil && r.authMiddleware != nil {
			suggestions := v1.Group("/suggestions")
			suggestions.Use(r.authMiddleware.Authenticate())
			{
				suggestions.POST("/tracker", r.suggestionController.Suggest)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
