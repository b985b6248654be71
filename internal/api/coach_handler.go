package api

import (
	"alcyxob/training-diary/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CoachHandler struct {
	catalog    service.CatalogService
	scheduler  service.SchedulerService
	coach      service.CoachService
	statistics service.StatisticsService
}

func NewCoachHandler(
	catalog service.CatalogService,
	scheduler service.SchedulerService,
	coach service.CoachService,
	statistics service.StatisticsService,
) *CoachHandler {
	return &CoachHandler{
		catalog:    catalog,
		scheduler:  scheduler,
		coach:      coach,
		statistics: statistics,
	}
}

// --- DTOs ---

type ScheduleRequest struct {
	TrainingID string `json:"trainingId" binding:"required"`
	AthleteID  string `json:"athleteId"`
	Date       string `json:"date" binding:"required"`
}

type MediaUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// --- Trainings ---

// ListTrainings godoc
// @Summary List the coach's trainings, newest first
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Param templates query bool false "Only templates"
// @Success 200 {array} domain.Training
// @Router /coach/trainings [get]
func (h *CoachHandler) ListTrainings(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}
	trainings, err := h.catalog.ListForCoach(c.Request.Context(), coachID, c.Query("templates") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainings)
}

// CreateTraining godoc
// @Summary Create a training
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param training body service.TrainingInput true "Training content"
// @Success 201 {object} domain.Training
// @Failure 400 {object} gin.H "Validation error"
// @Router /coach/trainings [post]
func (h *CoachHandler) CreateTraining(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req service.TrainingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	training, err := h.catalog.Create(c.Request.Context(), coachID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, training)
}

func (h *CoachHandler) GetTraining(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	training, err := h.catalog.GetForCoach(c.Request.Context(), coachID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, training)
}

func (h *CoachHandler) UpdateTraining(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req service.TrainingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	training, err := h.catalog.Update(c.Request.Context(), coachID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, training)
}

func (h *CoachHandler) DeleteTraining(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.Delete(c.Request.Context(), coachID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RequestMediaUpload godoc
// @Summary Get a presigned URL to upload training media
// @Description Returns a PUT URL valid for a short time; the public URL is appended to the training's media list.
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Training ID"
// @Param media body MediaUploadRequest true "File details"
// @Success 200 {object} service.MediaUpload
// @Router /coach/trainings/{id}/media [post]
func (h *CoachHandler) RequestMediaUpload(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req MediaUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	upload, err := h.catalog.RequestMediaUpload(c.Request.Context(), coachID, id, req.FileName, req.ContentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, upload)
}

// RemoveMedia godoc
// @Summary Detach a media URL from a training
// @Description Deletes the stored object when the URL points into the media bucket. Unknown URLs are ignored.
// @Tags Coach
// @Security BearerAuth
// @Param id path string true "Training ID"
// @Param url query string true "Media URL to remove"
// @Success 204
// @Router /coach/trainings/{id}/media [delete]
func (h *CoachHandler) RemoveMedia(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.RemoveMedia(c.Request.Context(), coachID, id, c.Query("url")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Schedule ---

// Schedule godoc
// @Summary Schedule a training for an athlete
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schedule body ScheduleRequest true "Training, athlete and day (YYYY-MM-DD)"
// @Success 201 {object} domain.ScheduledTraining
// @Failure 400 {object} gin.H "No athlete selected or malformed input"
// @Failure 403 {object} gin.H "Training or athlete not managed by this coach"
// @Router /coach/schedule [post]
func (h *CoachHandler) Schedule(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainingID, err := optionalObjectID(req.TrainingID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainingId format")
		return
	}
	athleteID, err := optionalObjectID(req.AthleteID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid athleteId format")
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	scheduled, err := h.scheduler.Schedule(c.Request.Context(), coachID, trainingID, athleteID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, scheduled)
}

func (h *CoachHandler) Unschedule(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.scheduler.Unschedule(c.Request.Context(), coachID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Week returns the coach's week, or one managed athlete's week when
// athleteId is given.
func (h *CoachHandler) Week(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}
	athleteID, err := optionalObjectID(c.Query("athleteId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid athleteId format")
		return
	}
	ref, ok := refDate(c)
	if !ok {
		return
	}

	week, err := h.scheduler.Week(c.Request.Context(), service.Selector{CoachID: coachID, AthleteID: athleteID}, ref)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// --- Athletes ---

func (h *CoachHandler) ListAthletes(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}
	athletes, err := h.coach.Athletes(c.Request.Context(), coachID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, athletes)
}

func (h *CoachHandler) AthleteDiary(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}
	athleteID, ok := objectIDParam(c, "athleteId")
	if !ok {
		return
	}
	entries, err := h.coach.AthleteHistory(c.Request.Context(), coachID, athleteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *CoachHandler) AthleteStatistics(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}
	athleteID, ok := objectIDParam(c, "athleteId")
	if !ok {
		return
	}
	result, err := h.statistics.ForManagedAthlete(c.Request.Context(), coachID, athleteID, c.Query("range"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
