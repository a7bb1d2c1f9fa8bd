package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	estdomain "github.com/ghanabuild/estimator-backend/internal/estimation/domain"
	"github.com/ghanabuild/estimator-backend/internal/estimation/validation"
	"github.com/ghanabuild/estimator-backend/internal/projects/repository"
	"github.com/ghanabuild/estimator-backend/internal/telemetry"
)

type Handler struct {
	store  repository.Store
	sink   telemetry.Sink
	logger *zap.Logger
}

func New(store repository.Store, sink telemetry.Sink, logger *zap.Logger) *Handler {
	if sink == nil {
		sink = telemetry.Nop()
	}
	return &Handler{store: store, sink: sink, logger: logger}
}

func (h *Handler) create(c *gin.Context) {
	var raw estdomain.RawInput
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	res := validation.Validate(raw)
	if !res.Valid() {
		h.sink.Emit(c.Request.Context(), telemetry.NewEvent(telemetry.EventValidationFailed, map[string]any{
			"violations": res.Violations,
		}))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	p, err := h.store.Create(c.Request.Context(), *res.Spec)
	if err != nil {
		h.logger.Error("project create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.logger.Info("project created",
		zap.String("id", p.ID),
		zap.String("region", p.Region))
	c.JSON(http.StatusCreated, gin.H{"id": p.ID, "project": p})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error("project list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
}
