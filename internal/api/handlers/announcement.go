package handlers

import (
	"net/http"

	"teamops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnnouncementHandler handles HTTP requests for announcements
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
	}
}

// CreateAnnouncement posts an announcement
// @Summary Post an announcement
// @Description Create an announcement authored by the authenticated member
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body service.CreateAnnouncementRequest true "Announcement data"
// @Success 201 {object} service.AnnouncementResponse "Announcement created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	authorID, ok := memberIDFromContext(c)
	if !ok {
		return
	}

	var req service.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.announcementService.Create(authorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, announcement)
}

// ListAnnouncements retrieves announcements, pinned first
// @Summary List announcements
// @Description Get all announcements, pinned first then newest first
// @Tags announcements
// @Accept json
// @Produce json
// @Success 200 {array} service.AnnouncementResponse "Announcements"
// @Security BearerAuth
// @Router /announcements [get]
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.announcementService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}

// UpdateAnnouncement edits an announcement
// @Summary Update an announcement
// @Description Edit an announcement's title, content or category
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Param announcement body service.UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} service.AnnouncementResponse "Announcement updated"
// @Failure 404 {object} ErrorResponse "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement ID"})
		return
	}

	var req service.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.announcementService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcement)
}

// TogglePin flips an announcement's pinned flag
// @Summary Pin or unpin an announcement
// @Description Flip the pinned flag on an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Success 200 {object} service.AnnouncementResponse "Announcement updated"
// @Failure 404 {object} ErrorResponse "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id}/pin [patch]
func (h *AnnouncementHandler) TogglePin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement ID"})
		return
	}

	announcement, err := h.announcementService.TogglePin(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcement)
}

// MarkRead bumps an announcement's read counter
// @Summary Mark an announcement read
// @Description Increment the read counter on an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Success 204 "Counter incremented"
// @Failure 404 {object} ErrorResponse "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id}/read [post]
func (h *AnnouncementHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement ID"})
		return
	}

	if err := h.announcementService.MarkRead(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAnnouncement removes an announcement
// @Summary Delete an announcement
// @Description Remove an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Success 204 "Announcement deleted"
// @Failure 404 {object} ErrorResponse "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement ID"})
		return
	}

	if err := h.announcementService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
