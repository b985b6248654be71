package api

import (
	"alcyxob/training-diary/internal/domain"
	"alcyxob/training-diary/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AthleteHandler struct {
	catalog    service.CatalogService
	scheduler  service.SchedulerService
	diary      service.DiaryService
	statistics service.StatisticsService
}

func NewAthleteHandler(
	catalog service.CatalogService,
	scheduler service.SchedulerService,
	diary service.DiaryService,
	statistics service.StatisticsService,
) *AthleteHandler {
	return &AthleteHandler{
		catalog:    catalog,
		scheduler:  scheduler,
		diary:      diary,
		statistics: statistics,
	}
}

// DiaryRequest is the athlete's report on one past assignment.
type DiaryRequest struct {
	ScheduledTrainingID string                  `json:"scheduledTrainingId" binding:"required"`
	Feeling             int                     `json:"feeling"`
	SleepHours          *float64                `json:"sleepHours"`
	Notes               string                  `json:"notes"`
	CompletionStatus    domain.CompletionStatus `json:"completionStatus"`
}

// ListTrainings godoc
// @Summary List the trainings published by the athlete's coach
// @Tags Athlete
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Training
// @Router /athlete/trainings [get]
func (h *AthleteHandler) ListTrainings(c *gin.Context) {
	athleteID, ok := currentUserID(c)
	if !ok {
		return
	}
	trainings, err := h.catalog.ListForAthlete(c.Request.Context(), athleteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainings)
}

func (h *AthleteHandler) Week(c *gin.Context) {
	athleteID, ok := currentUserID(c)
	if !ok {
		return
	}
	ref, ok := refDate(c)
	if !ok {
		return
	}
	week, err := h.scheduler.Week(c.Request.Context(), service.Selector{AthleteID: athleteID}, ref)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// Pending godoc
// @Summary Past assignments still waiting for a diary entry
// @Tags Athlete
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.ScheduledTraining
// @Router /athlete/diary/pending [get]
func (h *AthleteHandler) Pending(c *gin.Context) {
	athleteID, ok := currentUserID(c)
	if !ok {
		return
	}
	pending, err := h.diary.PendingForAthlete(c.Request.Context(), athleteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pending)
}

// SubmitEntry godoc
// @Summary Report on a past assignment
// @Tags Athlete
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body DiaryRequest true "Diary entry"
// @Success 201 {object} domain.DiaryEntry
// @Failure 400 {object} gin.H "Validation error"
// @Router /athlete/diary [post]
func (h *AthleteHandler) SubmitEntry(c *gin.Context) {
	athleteID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req DiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	scheduledID, err := optionalObjectID(req.ScheduledTrainingID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid scheduledTrainingId format")
		return
	}

	entry, err := h.diary.SubmitEntry(c.Request.Context(), athleteID, service.SubmitEntryInput{
		ScheduledTrainingID: scheduledID,
		Feeling:             req.Feeling,
		SleepHours:          req.SleepHours,
		Notes:               req.Notes,
		CompletionStatus:    req.CompletionStatus,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *AthleteHandler) History(c *gin.Context) {
	athleteID, ok := currentUserID(c)
	if !ok {
		return
	}
	entries, err := h.diary.HistoryForAthlete(c.Request.Context(), athleteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Statistics godoc
// @Summary Aggregated diary statistics
// @Tags Athlete
// @Produce json
// @Security BearerAuth
// @Param range query string false "week (default) or month"
// @Success 200 {object} stats.Statistics
// @Router /athlete/statistics [get]
func (h *AthleteHandler) Statistics(c *gin.Context) {
	athleteID, ok := currentUserID(c)
	if !ok {
		return
	}
	result, err := h.statistics.ForAthlete(c.Request.Context(), athleteID, c.Query("range"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
