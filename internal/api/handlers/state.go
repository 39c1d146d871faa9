package handlers

import (
	"net/http"

	"teamops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StateHandler handles whole-application snapshot export and import
type StateHandler struct {
	stateService *service.StateService
}

// NewStateHandler creates a new state handler
func NewStateHandler(stateService *service.StateService) *StateHandler {
	return &StateHandler{
		stateService: stateService,
	}
}

// ExportState captures the current application state
// @Summary Export state snapshot
// @Description Export the roster, attendance history, work logs and announcements as one snapshot
// @Tags state
// @Accept json
// @Produce json
// @Success 200 {object} service.StateSnapshot "Current state"
// @Security BearerAuth
// @Router /state [get]
func (h *StateHandler) ExportState(c *gin.Context) {
	snapshot, err := h.stateService.Export()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ImportState replaces collections with a snapshot's
// @Summary Import state snapshot
// @Description Replace the attendance and work log collections whole with a snapshot's contents
// @Tags state
// @Accept json
// @Produce json
// @Param snapshot body service.StateSnapshot true "State snapshot"
// @Success 204 "State imported"
// @Failure 400 {object} ErrorResponse "Snapshot references unknown members"
// @Security BearerAuth
// @Router /state [put]
func (h *StateHandler) ImportState(c *gin.Context) {
	var snapshot service.StateSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.stateService.Import(&snapshot); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
