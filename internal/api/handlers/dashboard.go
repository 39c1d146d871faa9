package handlers

import (
	"net/http"

	"teamops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardHandler handles HTTP requests for derived metrics
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetPersonalSummary computes the authenticated member's dashboard numbers
// @Summary Personal dashboard
// @Description Get the authenticated member's streak, cumulative effort, absence debt and category breakdown
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} service.PersonalSummaryResponse "Personal summary"
// @Security BearerAuth
// @Router /dashboard/me [get]
func (h *DashboardHandler) GetPersonalSummary(c *gin.Context) {
	memberID, ok := memberIDFromContext(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.PersonalSummary(memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetMemberSummary computes another member's dashboard numbers
// @Summary Member dashboard
// @Description Get one member's streak, cumulative effort, absence debt and category breakdown
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} service.PersonalSummaryResponse "Member summary"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /dashboard/members/{id} [get]
func (h *DashboardHandler) GetMemberSummary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	summary, err := h.dashboardService.PersonalSummary(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetTeamBoard joins the roster against one date's attendance
// @Summary Team activity board
// @Description Get every active member's attendance for a date (defaults to today); absent members are included
// @Tags dashboard
// @Accept json
// @Produce json
// @Param date query string false "Calendar date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.TeamBoardResponse "Team board"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Security BearerAuth
// @Router /dashboard/team [get]
func (h *DashboardHandler) GetTeamBoard(c *gin.Context) {
	board, err := h.dashboardService.TeamBoard(c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}
