package handlers

import (
	"net/http"
	"strconv"

	"eventura/models"
	"eventura/services/planner"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlannerHandler serves the planner directory, portfolios and the admin
// planner CRUD relays.
type PlannerHandler struct {
	Planners planner.PlannerService
}

func NewPlannerHandler(planners planner.PlannerService) *PlannerHandler {
	return &PlannerHandler{Planners: planners}
}

// DirectoryHandler lists planners matching the search filters.
func (h *PlannerHandler) DirectoryHandler(c *gin.Context) {
	var filter models.PlannerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	planners, err := h.Planners.Directory(c.Request.Context(), filter)
	if err != nil {
		getLogger(c).Error("Planner directory fetch failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Could not load planners: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, planners)
}

// PortfolioHandler returns one planner with their events merged in.
func (h *PlannerHandler) PortfolioHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid planner id"})
		return
	}

	portfolio, err := h.Planners.Portfolio(c.Request.Context(), id)
	if err != nil {
		getLogger(c).Error("Planner portfolio fetch failed", zap.Int("planner", id), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusNotFound), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// CreatePlannerHandler adds a planner and returns the refreshed list.
func (h *PlannerHandler) CreatePlannerHandler(c *gin.Context) {
	var p models.Planner
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	planners, err := h.Planners.Create(c.Request.Context(), p)
	if err != nil {
		getLogger(c).Error("Planner create failed", zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Planner create failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, planners)
}

// UpdatePlannerHandler replaces a planner record and returns the refreshed list.
func (h *PlannerHandler) UpdatePlannerHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid planner id"})
		return
	}
	var p models.Planner
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	planners, err := h.Planners.Update(c.Request.Context(), id, p)
	if err != nil {
		getLogger(c).Error("Planner update failed", zap.Int("planner", id), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Planner update failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, planners)
}

// DeletePlannerHandler removes a planner and returns the refreshed list.
func (h *PlannerHandler) DeletePlannerHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid planner id"})
		return
	}

	planners, err := h.Planners.Delete(c.Request.Context(), id)
	if err != nil {
		getLogger(c).Error("Planner delete failed", zap.Int("planner", id), zap.Error(err))
		c.JSON(upstreamStatus(err, http.StatusBadGateway), gin.H{"error": "Planner delete failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, planners)
}
