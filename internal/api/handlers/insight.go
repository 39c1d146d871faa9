package handlers

import (
	"net/http"

	"teamops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InsightHandler handles HTTP requests for generative insights
type InsightHandler struct {
	insightService   *service.InsightService
	dashboardService *service.DashboardService
	workLogService   *service.WorkLogService
	memberService    *service.MemberService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService *service.InsightService, dashboardService *service.DashboardService, workLogService *service.WorkLogService, memberService *service.MemberService) *InsightHandler {
	return &InsightHandler{
		insightService:   insightService,
		dashboardService: dashboardService,
		workLogService:   workLogService,
		memberService:    memberService,
	}
}

// InsightResponse wraps a generated insight text
type InsightResponse struct {
	Insight  string `json:"insight"`
	MockMode bool   `json:"mock_mode"`
}

// ParseWorkLogRequest represents the natural-language logging payload
type ParseWorkLogRequest struct {
	Text string `json:"text" binding:"required"`
}

// GetProductivityInsights generates team-wide productivity observations
// @Summary Productivity insights
// @Description Generate productivity observations from today's board and recent work logs
// @Tags insights
// @Accept json
// @Produce json
// @Success 200 {object} InsightResponse "Generated insight"
// @Failure 429 {object} ErrorResponse "Provider quota exceeded"
// @Security BearerAuth
// @Router /insights/productivity [get]
func (h *InsightHandler) GetProductivityInsights(c *gin.Context) {
	board, err := h.dashboardService.TeamBoard("")
	if err != nil {
		respondError(c, err)
		return
	}
	logs, err := h.workLogService.List(50, 0)
	if err != nil {
		respondError(c, err)
		return
	}

	insight, err := h.insightService.ProductivityInsights(c.Request.Context(), board, logs.Entries)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, InsightResponse{Insight: insight, MockMode: h.insightService.MockMode()})
}

// GetPersonalInsight generates a career-path insight for the authenticated member
// @Summary Personal insight
// @Description Generate a career-path suggestion from the member's dashboard numbers
// @Tags insights
// @Accept json
// @Produce json
// @Success 200 {object} InsightResponse "Generated insight"
// @Failure 429 {object} ErrorResponse "Provider quota exceeded"
// @Security BearerAuth
// @Router /insights/me [get]
func (h *InsightHandler) GetPersonalInsight(c *gin.Context) {
	memberID, ok := memberIDFromContext(c)
	if !ok {
		return
	}

	member, err := h.memberService.GetByID(memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	summary, err := h.dashboardService.PersonalSummary(memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	insight, err := h.insightService.PersonalInsight(c.Request.Context(), member.Name, member.Role, summary)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, InsightResponse{Insight: insight, MockMode: h.insightService.MockMode()})
}

// GetWeeklyReport drafts a weekly summary from recent work logs
// @Summary Weekly report
// @Description Draft a stand-up style weekly team report from recent work logs
// @Tags insights
// @Accept json
// @Produce json
// @Success 200 {object} InsightResponse "Generated report"
// @Failure 429 {object} ErrorResponse "Provider quota exceeded"
// @Security BearerAuth
// @Router /insights/weekly-report [get]
func (h *InsightHandler) GetWeeklyReport(c *gin.Context) {
	logs, err := h.workLogService.List(100, 0)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.insightService.WeeklyReport(c.Request.Context(), logs.Entries)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, InsightResponse{Insight: report, MockMode: h.insightService.MockMode()})
}

// ParseWorkLog extracts structured entries from a natural-language summary and logs them
// @Summary Log work from natural language
// @Description Parse a plain-text work summary into structured entries and persist them as Done
// @Tags insights
// @Accept json
// @Produce json
// @Param summary body ParseWorkLogRequest true "Plain-text work summary"
// @Success 201 {array} service.WorkLogResponse "Entries created"
// @Failure 400 {object} ErrorResponse "Empty or unparseable text"
// @Failure 429 {object} ErrorResponse "Provider quota exceeded"
// @Security BearerAuth
// @Router /insights/parse-log [post]
func (h *InsightHandler) ParseWorkLog(c *gin.Context) {
	memberID, ok := memberIDFromContext(c)
	if !ok {
		return
	}

	var req ParseWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parsed, err := h.insightService.ParseWorkLog(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	entries, err := h.workLogService.CreateFromParsed(memberID, parsed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entries)
}
