package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"teamops-backend/internal/api/handlers"
	"teamops-backend/internal/database/models"
	"teamops-backend/internal/mocks"
	"teamops-backend/internal/service"
	"teamops-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AttendanceHandlerTestSuite defines the test suite for AttendanceHandler
type AttendanceHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAttendanceRepo *mocks.MockAttendanceRepositoryInterface
	mockMemberRepo     *mocks.MockMemberRepositoryInterface
	http               *testutils.HTTPTestSuite
	member             *models.TeamMember
	clock              time.Time
}

// SetupTest sets up the test suite
func (suite *AttendanceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAttendanceRepo = mocks.NewMockAttendanceRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)

	suite.clock = time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC)
	attendanceService := service.NewAttendanceService(
		suite.mockAttendanceRepo, suite.mockMemberRepo, validator.New(),
	).WithClock(func() time.Time { return suite.clock })
	handler := handlers.NewAttendanceHandler(attendanceService)

	suite.member = &models.TeamMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Raven",
		Role:      "Intern",
		Code:      "RAVEN",
		IsActive:  true,
	}

	suite.http = testutils.SetupHTTPTest()
	// Stand in for the auth middleware
	suite.http.Router.Use(func(c *gin.Context) {
		c.Set("member_id", suite.member.ID.String())
		c.Next()
	})
	suite.http.Router.POST("/attendance/check-in", handler.CheckIn)
	suite.http.Router.POST("/attendance/check-out", handler.CheckOut)
	suite.http.Router.GET("/attendance/today", handler.GetToday)
	suite.http.Router.GET("/attendance", handler.ListAttendance)
}

// TearDownTest cleans up after each test
func (suite *AttendanceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCheckIn tests POST /attendance/check-in
func (suite *AttendanceHandlerTestSuite) TestCheckIn() {
	suite.mockMemberRepo.EXPECT().GetByID(suite.member.ID).Return(suite.member, nil).Times(1)
	suite.mockAttendanceRepo.EXPECT().
		GetByMemberAndDate(suite.member.ID, "2026-02-04").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockAttendanceRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	body := map[string]interface{}{"location": "Office", "vibe": "☕"}
	recorder := suite.http.MakeRequest(http.MethodPost, "/attendance/check-in", body)

	var response service.AttendanceResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "2026-02-04", response.Date)
	assert.NotNil(suite.T(), response.CheckIn)
	assert.Equal(suite.T(), "09:00 AM", *response.CheckIn)
}

// TestCheckInMissingLocation tests that field-validation failures map to 400
func (suite *AttendanceHandlerTestSuite) TestCheckInMissingLocation() {
	body := map[string]interface{}{"vibe": "☕"}
	recorder := suite.http.MakeRequest(http.MethodPost, "/attendance/check-in", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation failed")
}

// TestCheckInConflict tests the duplicate-day 409 mapping
func (suite *AttendanceHandlerTestSuite) TestCheckInConflict() {
	existing := &models.AttendanceRecord{MemberID: suite.member.ID, Date: "2026-02-04"}
	suite.mockMemberRepo.EXPECT().GetByID(suite.member.ID).Return(suite.member, nil).Times(1)
	suite.mockAttendanceRepo.EXPECT().
		GetByMemberAndDate(suite.member.ID, "2026-02-04").
		Return(existing, nil).
		Times(1)

	body := map[string]interface{}{"location": "Remote"}
	recorder := suite.http.MakeRequest(http.MethodPost, "/attendance/check-in", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

// TestCheckOutWithoutSession tests the 404 mapping
func (suite *AttendanceHandlerTestSuite) TestCheckOutWithoutSession() {
	suite.mockAttendanceRepo.EXPECT().
		GetByMemberAndDate(suite.member.ID, "2026-02-04").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/attendance/check-out", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "attendance record not found")
}

// TestCheckOutAlreadyClosed tests the closed-session 400 mapping
func (suite *AttendanceHandlerTestSuite) TestCheckOutAlreadyClosed() {
	checkIn, checkOut := "08:30 AM", "04:30 PM"
	record := &models.AttendanceRecord{
		MemberID: suite.member.ID,
		Date:     "2026-02-04",
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	}
	suite.mockAttendanceRepo.EXPECT().
		GetByMemberAndDate(suite.member.ID, "2026-02-04").
		Return(record, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/attendance/check-out", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "already checked out")
}

// TestListAttendanceByDate tests GET /attendance?date=...
func (suite *AttendanceHandlerTestSuite) TestListAttendanceByDate() {
	checkIn := "09:00 AM"
	records := []models.AttendanceRecord{
		{MemberID: suite.member.ID, MemberName: "Raven", Date: "2026-02-03", CheckIn: &checkIn},
	}
	suite.mockAttendanceRepo.EXPECT().GetByDate("2026-02-03").Return(records, nil).Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/attendance?date=2026-02-03", nil)

	var response []service.AttendanceResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "Raven", response[0].MemberName)
}

// TestListAttendanceInvalidDate tests the malformed-date 400 mapping
func (suite *AttendanceHandlerTestSuite) TestListAttendanceInvalidDate() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/attendance?date=04-02-2026", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation error")
}

func TestAttendanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceHandlerTestSuite))
}
