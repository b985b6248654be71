package api

import (
	"alcyxob/training-diary/internal/domain"
	"alcyxob/training-diary/internal/metrics"
	"alcyxob/training-diary/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouteParams carries everything SetupRoutes wires into the router.
type RouteParams struct {
	JWTSecret string
	Metrics   *metrics.Manager
	// Gatherer backs GET /metrics; nil leaves the endpoint out.
	Gatherer prometheus.Gatherer

	Catalog    service.CatalogService
	Scheduler  service.SchedulerService
	Diary      service.DiaryService
	Coach      service.CoachService
	Statistics service.StatisticsService
}

func SetupRoutes(router *gin.Engine, p RouteParams) {
	coachHandler := NewCoachHandler(p.Catalog, p.Scheduler, p.Coach, p.Statistics)
	athleteHandler := NewAthleteHandler(p.Catalog, p.Scheduler, p.Diary, p.Statistics)

	router.Use(Recovery(p.Metrics), RequestLogger(), RequestMetrics(p.Metrics))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if p.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := router.Group("/api/v1")
	apiV1.Use(AuthMiddleware(p.JWTSecret))
	{
		apiV1.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
		})
	}

	// --- Coach Routes ---
	coachGroup := apiV1.Group("/coach")
	coachGroup.Use(RoleMiddleware(domain.RoleCoach))
	{
		coachGroup.GET("/trainings", coachHandler.ListTrainings)
		coachGroup.POST("/trainings", coachHandler.CreateTraining)
		coachGroup.GET("/trainings/:id", coachHandler.GetTraining)
		coachGroup.PUT("/trainings/:id", coachHandler.UpdateTraining)
		coachGroup.DELETE("/trainings/:id", coachHandler.DeleteTraining)
		coachGroup.POST("/trainings/:id/media", coachHandler.RequestMediaUpload)
		coachGroup.DELETE("/trainings/:id/media", coachHandler.RemoveMedia)

		coachGroup.POST("/schedule", coachHandler.Schedule)
		coachGroup.DELETE("/schedule/:id", coachHandler.Unschedule)
		coachGroup.GET("/schedule/week", coachHandler.Week)

		coachGroup.GET("/athletes", coachHandler.ListAthletes)
		coachGroup.GET("/athletes/:athleteId/diary", coachHandler.AthleteDiary)
		coachGroup.GET("/athletes/:athleteId/statistics", coachHandler.AthleteStatistics)
	}

	// --- Athlete Routes ---
	athleteGroup := apiV1.Group("/athlete")
	athleteGroup.Use(RoleMiddleware(domain.RoleAthlete))
	{
		athleteGroup.GET("/trainings", athleteHandler.ListTrainings)
		athleteGroup.GET("/schedule/week", athleteHandler.Week)
		athleteGroup.GET("/diary/pending", athleteHandler.Pending)
		athleteGroup.POST("/diary", athleteHandler.SubmitEntry)
		athleteGroup.GET("/diary", athleteHandler.History)
		athleteGroup.GET("/statistics", athleteHandler.Statistics)
	}
}
