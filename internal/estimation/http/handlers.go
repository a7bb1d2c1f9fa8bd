package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ghanabuild/estimator-backend/internal/estimation/domain"
	"github.com/ghanabuild/estimator-backend/internal/estimation/pricing"
	"github.com/ghanabuild/estimator-backend/internal/estimation/validation"
	"github.com/ghanabuild/estimator-backend/internal/telemetry"
)

// Handler serves the estimate endpoint. It re-validates every specification
// at the trust boundary; a client-side pass is never authoritative.
type Handler struct {
	sink   telemetry.Sink
	logger *zap.Logger
}

func New(sink telemetry.Sink, logger *zap.Logger) *Handler {
	if sink == nil {
		sink = telemetry.Nop()
	}
	return &Handler{sink: sink, logger: logger}
}

func (h *Handler) estimate(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("estimate failed", zap.Any("panic", r))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate estimate"})
		}
	}()

	var raw domain.RawInput
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	res := validation.Validate(raw)
	if !res.Valid() {
		h.sink.Emit(c.Request.Context(), telemetry.NewEvent(telemetry.EventValidationFailed, map[string]any{
			"violations": res.Violations,
		}))
		h.logger.Warn("estimate request rejected",
			zap.Strings("violations", res.Violations))
		// The itemized violation list stays server-side; clients get one
		// summary string.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	est := pricing.Estimate(*res.Spec)

	h.sink.Emit(c.Request.Context(), telemetry.NewEvent(telemetry.EventRequestSucceeded, map[string]any{
		"region":      res.Spec.Region,
		"projectType": res.Spec.ProjectType,
		"totalCost":   est.TotalCost,
	}))
	h.logger.Info("estimate served",
		zap.String("region", res.Spec.Region),
		zap.String("project_type", res.Spec.ProjectType),
		zap.Int("total_cost", est.TotalCost))

	c.JSON(http.StatusOK, est)
}

// Register attaches the estimate route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/estimate", h.estimate)
}
