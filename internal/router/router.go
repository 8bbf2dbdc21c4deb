package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/dayplanner/backend/api/handler"
)

type Handlers struct {
	Auth      *apiHandler.AuthHandler
	Profile   *apiHandler.ProfileHandler
	Task      *apiHandler.TaskHandler
	Settings  *apiHandler.SettingsHandler
	Analytics *apiHandler.AnalyticsHandler
	Health    *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/refresh", handlers.Auth.Refresh)
	r.POST("/api/v1/auth/logout", handlers.Auth.Logout)

	// Protected routes
	r.GET("/api/v1/profile", authMiddleware(handlers.Profile.GetProfile))
	r.PUT("/api/v1/profile", authMiddleware(handlers.Profile.UpdateProfile))

	r.GET("/api/v1/tasks", authMiddleware(handlers.Task.GetTasks))
	r.POST("/api/v1/tasks", authMiddleware(handlers.Task.CreateTask))
	r.GET("/api/v1/tasks/conflict", authMiddleware(handlers.Task.CheckConflict))
	r.POST("/api/v1/tasks/shift", authMiddleware(handlers.Task.ShiftTasks))
	r.POST("/api/v1/tasks/park", authMiddleware(handlers.Task.ParkTasks))
	r.PUT("/api/v1/tasks/{id}", authMiddleware(handlers.Task.UpdateTask))
	r.POST("/api/v1/tasks/{id}/toggle", authMiddleware(handlers.Task.ToggleTask))
	r.DELETE("/api/v1/tasks/{id}", authMiddleware(handlers.Task.DeleteTask))

	r.GET("/api/v1/settings", authMiddleware(handlers.Settings.GetSettings))
	r.PUT("/api/v1/settings", authMiddleware(handlers.Settings.SaveSettings))

	r.GET("/api/v1/analytics/summary", authMiddleware(handlers.Analytics.DaySummary))
	r.GET("/api/v1/analytics/weekly", authMiddleware(handlers.Analytics.Weekly))
	r.GET("/api/v1/analytics/streak", authMiddleware(handlers.Analytics.Streak))
	r.GET("/api/v1/export", authMiddleware(handlers.Analytics.Export))

	return r
}
