package api

import (
	"alcyxob/training-diary/internal/calendar"
	"alcyxob/training-diary/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrForbidden):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBackendUnavailable):
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("backend unavailable")
		abortWithError(c, http.StatusServiceUnavailable, "Service temporarily unavailable, please try again")
	default:
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("unexpected error")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// objectIDParam parses a hex id from the path, aborting with 400 when malformed.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}

// optionalObjectID parses s, treating the empty string as the nil id.
func optionalObjectID(s string) (primitive.ObjectID, error) {
	if s == "" {
		return primitive.NilObjectID, nil
	}
	return primitive.ObjectIDFromHex(s)
}

// parseDay accepts a calendar day (2025-03-17) or an RFC 3339 timestamp.
func parseDay(s string) (time.Time, error) {
	if t, err := time.Parse(calendar.DayLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// refDate reads the ?ref= query. Absent means the zero time, which the
// scheduler reads as today.
func refDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("ref")
	if raw == "" {
		return time.Time{}, true
	}
	ref, err := parseDay(raw)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid ref date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return ref, true
}
