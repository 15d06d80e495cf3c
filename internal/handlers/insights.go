package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugmood/hugmood/backend/internal/apierror"
	"github.com/hugmood/hugmood/backend/internal/logger"
	"github.com/hugmood/hugmood/backend/internal/service"
)

const (
	defaultInsightLimit = 20
	maxInsightLimit     = 100
)

type InsightHandler struct {
	insightService service.InsightService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService service.InsightService) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
	}
}

// ListInsights handles GET /api/v1/insights
//
// Returns non-expired insights ordered by priority, paginated with
// limit/offset query parameters.
func (h *InsightHandler) ListInsights(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	limit := defaultInsightLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
				{Field: "limit", Message: "must be a positive integer", Code: "invalid"},
			}))
			return
		}
		if parsed > maxInsightLimit {
			parsed = maxInsightLimit
		}
		limit = parsed
	}

	offset := 0
	if offsetStr := c.Query("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil || parsed < 0 {
			apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
				{Field: "offset", Message: "must be a non-negative integer", Code: "invalid"},
			}))
			return
		}
		offset = parsed
	}

	insights, err := h.insightService.ListInsights(c.Request.Context(), userID.(string), limit, offset)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list insights", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"insights": insights,
		"limit":    limit,
		"offset":   offset,
	})
}

// MarkInsightRead handles POST /api/v1/insights/:id/read
func (h *InsightHandler) MarkInsightRead(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	insightID := c.Param("id")
	err := h.insightService.MarkInsightRead(c.Request.Context(), userID.(string), insightID)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		switch {
		case errors.Is(err, service.ErrNotFound):
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "insight", insightID))
		case errors.Is(err, service.ErrPermissionDenied):
			apierror.WriteProblem(c, apierror.NewForbiddenError(requestID))
		default:
			logger.Ctx(c.Request.Context()).Error("failed to mark insight read", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
