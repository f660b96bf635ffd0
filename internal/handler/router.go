package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-schedule-api/internal/middleware"
	"github.com/noah-isme/sma-schedule-api/internal/models"
)

// RouterDeps carries the handlers and request middleware for RegisterRoutes.
type RouterDeps struct {
	Schedules *ScheduleHandler
	Views     *QueryViewHandler
	Metrics   *MetricsHandler
	// Session resolves the caller; required.
	Session gin.HandlerFunc
	// RateLimit is optional and applies to API routes only.
	RateLimit gin.HandlerFunc
}

// RegisterRoutes mounts probes at the root and the schedule API under apiPrefix.
func RegisterRoutes(r *gin.Engine, apiPrefix string, deps RouterDeps) {
	r.GET("/health", deps.Metrics.Health)
	r.GET("/ready", deps.Metrics.Ready)
	r.GET("/metrics", deps.Metrics.Prometheus)
	r.GET("/metrics/summary", deps.Metrics.Summary)

	api := r.Group(apiPrefix)
	if deps.RateLimit != nil {
		api.Use(deps.RateLimit)
	}
	api.Use(middleware.WithResponseMeta(), deps.Session)

	schedules := api.Group("/schedules")
	schedules.GET("", deps.Schedules.List)
	schedules.GET("/filters", deps.Schedules.Filters)
	schedules.GET("/export", deps.Schedules.Export)

	teacher := api.Group("/teacher/schedules", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
	teacher.GET("", deps.Schedules.ListTeacher)
	teacher.GET("/filters", deps.Schedules.TeacherFilters)
	teacher.GET("/export", deps.Schedules.TeacherExport)

	views := api.Group("/views")
	views.POST("", deps.Views.Create)
	views.GET("/:id", deps.Views.Get)
	views.PATCH("/:id/filters", deps.Views.SetFilters)
	views.POST("/:id/sort", deps.Views.SetSort)
	views.POST("/:id/clear", deps.Views.Clear)
	views.PUT("/:id/page", deps.Views.SetPage)
	views.PUT("/:id/page-size", deps.Views.SetPageSize)
	views.POST("/:id/refresh", deps.Views.Refresh)
	views.DELETE("/:id", deps.Views.Delete)
}
