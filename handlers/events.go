package handlers

import (
	"context"
	"net/http"
	"strconv"

	"eventura/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EventAPIClient is the slice of the upstream client the event relays use.
type EventAPIClient interface {
	Events(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, event models.Event) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int, event models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int) error
}

// EventHandler relays the admin event catalogue straight through.
type EventHandler struct {
	API EventAPIClient
}

func NewEventHandler(api EventAPIClient) *EventHandler {
	return &EventHandler{API: api}
}

func (h *EventHandler) ListEventsHandler(c *gin.Context) {
	events, err := h.API.Events(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Event list fetch failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Could not load events: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	created, err := h.API.CreateEvent(c.Request.Context(), event)
	if err != nil {
		getLogger(c).Error("Event create failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Event create failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	updated, err := h.API.UpdateEvent(c.Request.Context(), id, event)
	if err != nil {
		getLogger(c).Error("Event update failed", zap.Int("event", id), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Event update failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}
	if err := h.API.DeleteEvent(c.Request.Context(), id); err != nil {
		getLogger(c).Error("Event delete failed", zap.Int("event", id), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Event delete failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
