package service_test

import (
	"testing"
	"time"

	"teamops-backend/internal/database/models"
	apperrors "teamops-backend/internal/errors"
	"teamops-backend/internal/mocks"
	"teamops-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AttendanceServiceTestSuite defines the test suite for AttendanceService
type AttendanceServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAttendanceRepo *mocks.MockAttendanceRepositoryInterface
	mockMemberRepo     *mocks.MockMemberRepositoryInterface
	attendanceService  *service.AttendanceService
	member             *models.TeamMember
	clock              time.Time
}

// SetupTest sets up the test suite
func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAttendanceRepo = mocks.NewMockAttendanceRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)

	// A Wednesday morning
	suite.clock = time.Date(2026, 2, 4, 8, 30, 0, 0, time.UTC)
	suite.attendanceService = service.NewAttendanceService(
		suite.mockAttendanceRepo, suite.mockMemberRepo, validator.New(),
	).WithClock(func() time.Time { return suite.clock })

	suite.member = &models.TeamMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Romeo",
		Role:      "AI Specialist",
		Code:      "ROMEO",
		IsActive:  true,
	}
}

// TearDownTest cleans up after each test
func (suite *AttendanceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCheckIn tests opening today's session
func (suite *AttendanceServiceTestSuite) TestCheckIn() {
	req := &service.CheckInRequest{Location: models.WorkLocationOffice, Vibe: "🚀"}

	suite.mockMemberRepo.EXPECT().
		GetByID(suite.member.ID).
		Return(suite.member, nil).
		Times(1)
	suite.mockAttendanceRepo.EXPECT().
		GetByMemberAndDate(suite.member.ID, "2026-02-04").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockAttendanceRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(record *models.AttendanceRecord) error {
			assert.Equal(suite.T(), "2026-02-04", record.Date)
			assert.NotNil(suite.T(), record.CheckIn)
			assert.Equal(suite.T(), "08:30 AM", *record.CheckIn)
			assert.Nil(suite.T(), record.CheckOut)
			return nil
		}).
		Times(1)

	response, err := suite.attendanceService.CheckIn(suite.member.ID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "Romeo", response.MemberName)
	assert.Equal(suite.T(), models.WorkLocationOffice, response.Location)
	// Live clock equals check-in time, so zero hours so far
	assert.Equal(suite.T(), 0.0, response.SessionHours)
}

// TestCheckInTwiceRejected tests that a second same-day check-in is rejected
func (suite *AttendanceServiceTestSuite) TestCheckInTwiceRejected() {
	req := &service.CheckInRequest{Location: models.WorkLocationRemote}
	existing := &models.AttendanceRecord{MemberID: suite.member.ID, Date: "2026-02-04"}

	suite.mockMemberRepo.EXPECT().GetByID(suite.member.ID).Return(suite.member, nil).Times(1)
	suite.mockAttendanceRepo.EXPECT().
		GetByMemberAndDate(suite.member.ID, "2026-02-04").
		Return(existing, nil).
		Times(1)

	response, err := suite.attendanceService.CheckIn(suite.member.ID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyCheckedIn)
}

// TestCheckInOnLeave tests that leave days store no session times
func (suite *AttendanceServiceTestSuite) TestCheckInOnLeave() {
	req := &service.CheckInRequest{Location: models.WorkLocationOnLeave}

	suite.mockMemberRepo.EXPECT().GetByID(suite.member.ID).Return(suite.member, nil).Times(1)
	suite.mockAttendanceRepo.EXPECT().
		GetByMemberAndDate(suite.member.ID, "2026-02-04").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockAttendanceRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(record *models.AttendanceRecord) error {
			assert.Nil(suite.T(), record.CheckIn)
			assert.Nil(suite.T(), record.CheckOut)
			return nil
		}).
		Times(1)

	response, err := suite.attendanceService.CheckIn(suite.member.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0.0, response.SessionHours)
}

// TestCheckOut tests closing the open session
func (suite *AttendanceServiceTestSuite) TestCheckOut() {
	checkIn := "08:30 AM"
	record := &models.AttendanceRecord{
		MemberID:   suite.member.ID,
		MemberName: "Romeo",
		Date:       "2026-02-04",
		CheckIn:    &checkIn,
	}

	suite.clock = time.Date(2026, 2, 4, 17, 0, 0, 0, time.UTC)
	suite.mockAttendanceRepo.EXPECT().
		GetByMemberAndDate(suite.member.ID, "2026-02-04").
		Return(record, nil).
		Times(1)
	suite.mockAttendanceRepo.EXPECT().Update(record).Return(nil).Times(1)

	response, err := suite.attendanceService.CheckOut(suite.member.ID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response.CheckOut)
	assert.Equal(suite.T(), "05:00 PM", *response.CheckOut)
	assert.InDelta(suite.T(), 8.5, response.SessionHours, 0.001)
}

// TestCheckOutTwiceRejected tests that re-checkout on a closed session fails
func (suite *AttendanceServiceTestSuite) TestCheckOutTwiceRejected() {
	checkIn, checkOut := "08:30 AM", "05:00 PM"
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

	response, err := suite.attendanceService.CheckOut(suite.member.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSessionAlreadyClosed)
}

// TestCheckOutWithoutSession tests checkout with no record today
func (suite *AttendanceServiceTestSuite) TestCheckOutWithoutSession() {
	suite.mockAttendanceRepo.EXPECT().
		GetByMemberAndDate(suite.member.ID, "2026-02-04").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.attendanceService.CheckOut(suite.member.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAttendanceNotFound)
}

// TestBoardInvalidDate tests date validation on the board lookup
func (suite *AttendanceServiceTestSuite) TestBoardInvalidDate() {
	response, err := suite.attendanceService.Board("02/04/2026")

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestHistoryLiveHoursForOpenToday tests that an open session today reports live hours
func (suite *AttendanceServiceTestSuite) TestHistoryLiveHoursForOpenToday() {
	checkIn := "08:00 AM"
	records := []models.AttendanceRecord{
		{MemberID: suite.member.ID, Date: "2026-02-04", CheckIn: &checkIn},
		{MemberID: suite.member.ID, Date: "2026-02-03", CheckIn: &checkIn},
	}

	suite.clock = time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC)
	suite.mockAttendanceRepo.EXPECT().GetByMember(suite.member.ID).Return(records, nil).Times(1)

	responses, err := suite.attendanceService.History(suite.member.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.InDelta(suite.T(), 4.0, responses[0].SessionHours, 0.001)
	// Open session on a past day contributes nothing
	assert.Equal(suite.T(), 0.0, responses[1].SessionHours)
}

func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}
