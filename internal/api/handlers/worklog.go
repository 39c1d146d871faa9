package handlers

import (
	"net/http"
	"strconv"

	"teamops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkLogHandler handles HTTP requests for work log entries
type WorkLogHandler struct {
	workLogService *service.WorkLogService
}

// NewWorkLogHandler creates a new work log handler
func NewWorkLogHandler(workLogService *service.WorkLogService) *WorkLogHandler {
	return &WorkLogHandler{
		workLogService: workLogService,
	}
}

// CreateWorkLog logs a task for the authenticated member
// @Summary Log a task
// @Description Create a work log entry for the authenticated member
// @Tags worklogs
// @Accept json
// @Produce json
// @Param entry body service.CreateWorkLogRequest true "Work log data"
// @Success 201 {object} service.WorkLogResponse "Entry created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /worklogs [post]
func (h *WorkLogHandler) CreateWorkLog(c *gin.Context) {
	memberID, ok := memberIDFromContext(c)
	if !ok {
		return
	}

	var req service.CreateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.workLogService.Create(memberID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListWorkLogs retrieves work log entries, newest first
// @Summary List work log entries
// @Description Get work log entries across the team with optional pagination, or one member's with ?member_id
// @Tags worklogs
// @Accept json
// @Produce json
// @Param member_id query string false "Member ID (UUID)"
// @Param limit query int false "Number of items to return"
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.WorkLogListResponse "Work log entries"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /worklogs [get]
func (h *WorkLogHandler) ListWorkLogs(c *gin.Context) {
	if memberIDStr := c.Query("member_id"); memberIDStr != "" {
		memberID, err := uuid.Parse(memberIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
			return
		}
		entries, err := h.workLogService.ListByMember(memberID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, service.WorkLogListResponse{Entries: entries, Total: int64(len(entries))})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.workLogService.List(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateWorkLog edits a logged task
// @Summary Update a work log entry
// @Description Edit fields of an existing work log entry
// @Tags worklogs
// @Accept json
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Param entry body service.UpdateWorkLogRequest true "Fields to update"
// @Success 200 {object} service.WorkLogResponse "Entry updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /worklogs/{id} [put]
func (h *WorkLogHandler) UpdateWorkLog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	var req service.UpdateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.workLogService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ToggleWorkLogStatus flips an entry between Done and In Progress
// @Summary Toggle entry status
// @Description Flip a work log entry between Done and In Progress
// @Tags worklogs
// @Accept json
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Success 200 {object} service.WorkLogResponse "Entry updated"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /worklogs/{id}/toggle [patch]
func (h *WorkLogHandler) ToggleWorkLogStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	entry, err := h.workLogService.ToggleStatus(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteWorkLog removes a logged task
// @Summary Delete a work log entry
// @Description Remove a work log entry
// @Tags worklogs
// @Accept json
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Success 204 "Entry deleted"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /worklogs/{id} [delete]
func (h *WorkLogHandler) DeleteWorkLog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	if err := h.workLogService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
