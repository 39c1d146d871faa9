package handlers

import (
	"net/http"

	"teamops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AttendanceHandler handles HTTP requests for attendance sessions
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// memberIDFromContext reads the authenticated member's UUID from the context
func memberIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("member_id")
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid member identity"})
		return uuid.Nil, false
	}
	return id, true
}

// CheckIn opens today's session for the authenticated member
// @Summary Check in
// @Description Open today's attendance session. A member gets at most one record per day.
// @Tags attendance
// @Accept json
// @Produce json
// @Param session body service.CheckInRequest true "Session data"
// @Success 201 {object} service.AttendanceResponse "Session opened"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Already checked in today"
// @Security BearerAuth
// @Router /attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	memberID, ok := memberIDFromContext(c)
	if !ok {
		return
	}

	var req service.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.attendanceService.CheckIn(memberID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// CheckOut closes today's open session for the authenticated member
// @Summary Check out
// @Description Close today's open attendance session. Re-checkout is rejected.
// @Tags attendance
// @Accept json
// @Produce json
// @Success 200 {object} service.AttendanceResponse "Session closed"
// @Failure 400 {object} ErrorResponse "Session already closed"
// @Failure 404 {object} ErrorResponse "No session today"
// @Security BearerAuth
// @Router /attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	memberID, ok := memberIDFromContext(c)
	if !ok {
		return
	}

	record, err := h.attendanceService.CheckOut(memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetToday retrieves the authenticated member's record for today
// @Summary Today's session
// @Description Get the authenticated member's attendance record for today, if any
// @Tags attendance
// @Accept json
// @Produce json
// @Success 200 {object} service.AttendanceResponse "Today's record"
// @Failure 404 {object} ErrorResponse "No session today"
// @Security BearerAuth
// @Router /attendance/today [get]
func (h *AttendanceHandler) GetToday(c *gin.Context) {
	memberID, ok := memberIDFromContext(c)
	if !ok {
		return
	}

	record, err := h.attendanceService.GetToday(memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetHistory retrieves a member's attendance history
// @Summary Member attendance history
// @Description Get a member's full attendance history, newest date first
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {array} service.AttendanceResponse "Attendance history"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Security BearerAuth
// @Router /members/{id}/attendance [get]
func (h *AttendanceHandler) GetHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	records, err := h.attendanceService.History(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// ListAttendance retrieves attendance records, optionally for one date
// @Summary List attendance records
// @Description Get attendance records across the team. With ?date=YYYY-MM-DD, only that day's records.
// @Tags attendance
// @Accept json
// @Produce json
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {array} service.AttendanceResponse "Attendance records"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Security BearerAuth
// @Router /attendance [get]
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	var (
		records []service.AttendanceResponse
		err     error
	)
	if date := c.Query("date"); date != "" {
		records, err = h.attendanceService.Board(date)
	} else {
		records, err = h.attendanceService.List()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
