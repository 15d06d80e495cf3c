package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugmood/hugmood/backend/internal/apierror"
	"github.com/hugmood/hugmood/backend/internal/logger"
	"github.com/hugmood/hugmood/backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetAnalytics handles GET /api/v1/analytics
//
// Query parameters:
//   - days: size of the analysis window in days (default 30, max 365)
//   - include_correlations: whether to compute mood/factor correlations
//     (default true)
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	days := service.DefaultTimeRangeDays
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 {
			apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
				{Field: "days", Message: "must be a positive integer", Code: "invalid"},
			}))
			return
		}
		days = parsed
	}

	includeCorrelations := true
	if v := c.Query("include_correlations"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
				{Field: "include_correlations", Message: "must be a boolean value", Code: "invalid"},
			}))
			return
		}
		includeCorrelations = parsed
	}

	report, err := h.analyticsService.GetAnalytics(c.Request.Context(), userID.(string), days, includeCorrelations)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to compute analytics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, report)
}
