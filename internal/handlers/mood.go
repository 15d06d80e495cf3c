package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugmood/hugmood/backend/internal/apierror"
	"github.com/hugmood/hugmood/backend/internal/logger"
	"github.com/hugmood/hugmood/backend/internal/models"
	"github.com/hugmood/hugmood/backend/internal/service"
)

type MoodHandler struct {
	moodService service.MoodService
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService service.MoodService) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
	}
}

// CreateMoodEntry handles POST /api/v1/moods
func (h *MoodHandler) CreateMoodEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.CreateMoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		if fieldErrors := fieldErrorsFromBinding(err); len(fieldErrors) > 0 {
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
			return
		}
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
		return
	}

	entry, err := h.moodService.SubmitMoodEntry(c.Request.Context(), userID.(string), &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrValidation) {
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
				{Field: "score", Message: err.Error(), Code: "invalid"},
			}))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to submit mood entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// RecordActivity handles POST /api/v1/activities
func (h *MoodHandler) RecordActivity(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.RecordActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		if fieldErrors := fieldErrorsFromBinding(err); len(fieldErrors) > 0 {
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
			return
		}
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
		return
	}

	activity, err := h.moodService.RecordActivity(c.Request.Context(), userID.(string), &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrValidation) {
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
				{Field: "duration_minutes", Message: err.Error(), Code: "invalid"},
			}))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to record activity", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// GetStreak handles GET /api/v1/streak
func (h *MoodHandler) GetStreak(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	streak, err := h.moodService.GetStreak(c.Request.Context(), userID.(string))
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get streak", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, streak)
}
