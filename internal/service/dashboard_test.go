package service_test

import (
	"testing"
	"time"

	"teamops-backend/internal/database/models"
	apperrors "teamops-backend/internal/errors"
	"teamops-backend/internal/mocks"
	"teamops-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// DashboardServiceTestSuite defines the test suite for DashboardService
type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockMemberRepo     *mocks.MockMemberRepositoryInterface
	mockAttendanceRepo *mocks.MockAttendanceRepositoryInterface
	mockWorkLogRepo    *mocks.MockWorkLogRepositoryInterface
	dashboardService   *service.DashboardService
	member             *models.TeamMember
	missionStart       time.Time
	clock              time.Time
}

// SetupTest sets up the test suite
func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.mockAttendanceRepo = mocks.NewMockAttendanceRepositoryInterface(suite.ctrl)
	suite.mockWorkLogRepo = mocks.NewMockWorkLogRepositoryInterface(suite.ctrl)

	suite.missionStart = time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	suite.clock = time.Date(2026, 1, 16, 18, 0, 0, 0, time.UTC)
	suite.dashboardService = service.NewDashboardService(
		suite.mockMemberRepo, suite.mockAttendanceRepo, suite.mockWorkLogRepo, suite.missionStart,
	).WithClock(func() time.Time { return suite.clock })

	suite.member = &models.TeamMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Arnaz",
		Role:      "Backend Developer",
		Code:      "ARNAZ",
		IsActive:  true,
	}
}

// TearDownTest cleans up after each test
func (suite *DashboardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func strptr(s string) *string { return &s }

// TestPersonalSummary tests the full derived-metrics roll-up for one member
func (suite *DashboardServiceTestSuite) TestPersonalSummary() {
	memberID := suite.member.ID
	records := []models.AttendanceRecord{
		// Two qualifying days, one short day, one leave day
		{MemberID: memberID, Date: "2026-01-12", CheckIn: strptr("09:00 AM"), CheckOut: strptr("05:00 PM"), Location: models.WorkLocationOffice},
		{MemberID: memberID, Date: "2026-01-13", CheckIn: strptr("08:00 AM"), CheckOut: strptr("04:30 PM"), Location: models.WorkLocationRemote},
		{MemberID: memberID, Date: "2026-01-14", CheckIn: strptr("10:00 AM"), CheckOut: strptr("11:00 AM"), Location: models.WorkLocationOffice},
		{MemberID: memberID, Date: "2026-01-15", Location: models.WorkLocationOnLeave},
	}
	logs := []models.WorkLogEntry{
		{MemberID: memberID, Category: models.TaskCategoryDevelopment, Status: models.TaskStatusDone, DurationMinutes: 120},
		{MemberID: memberID, Category: models.TaskCategoryDevelopment, Status: models.TaskStatusInProgress, DurationMinutes: 60},
		{MemberID: memberID, Category: models.TaskCategoryMeetings, Status: models.TaskStatusDone, DurationMinutes: 60},
	}

	suite.mockMemberRepo.EXPECT().GetByID(memberID).Return(suite.member, nil).Times(1)
	suite.mockAttendanceRepo.EXPECT().GetByMember(memberID).Return(records, nil).Times(1)
	suite.mockWorkLogRepo.EXPECT().GetByMember(memberID).Return(logs, nil).Times(1)

	summary, err := suite.dashboardService.PersonalSummary(memberID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Arnaz", summary.MemberName)
	assert.Equal(suite.T(), 2, summary.StreakDays)
	assert.InDelta(suite.T(), 8.0+8.5+1.0, summary.CumulativeHours, 0.001)
	assert.Equal(suite.T(), 8, summary.AbsenceHours)
	assert.Equal(suite.T(), 0.0, summary.TodayHours)
	assert.Equal(suite.T(), 2, summary.DoneCount)
	assert.Equal(suite.T(), 2, summary.DistinctCategories)
	assert.Len(suite.T(), summary.CategoryDistribution, 2)
	assert.Equal(suite.T(), models.TaskCategoryDevelopment, summary.CategoryDistribution[0].Category)
	assert.Equal(suite.T(), 75, summary.CategoryDistribution[0].Percent)
}

// TestPersonalSummaryMemberNotFound tests the not-found path
func (suite *DashboardServiceTestSuite) TestPersonalSummaryMemberNotFound() {
	id := uuid.New()
	suite.mockMemberRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	summary, err := suite.dashboardService.PersonalSummary(id)

	assert.Nil(suite.T(), summary)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberNotFound)
}

// TestTeamBoardIncludesAbsentMembers tests that the board is roster-driven
func (suite *DashboardServiceTestSuite) TestTeamBoardIncludesAbsentMembers() {
	other := models.TeamMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Karl",
		Role:      "Intern",
		Code:      "KARL",
		IsActive:  true,
	}
	members := []models.TeamMember{*suite.member, other}
	records := []models.AttendanceRecord{
		{MemberID: suite.member.ID, MemberName: "Arnaz", Date: "2026-01-15",
			CheckIn: strptr("09:00 AM"), CheckOut: strptr("05:00 PM"), Location: models.WorkLocationOffice},
	}

	suite.mockMemberRepo.EXPECT().GetActive().Return(members, nil).Times(1)
	suite.mockAttendanceRepo.EXPECT().GetByDate("2026-01-15").Return(records, nil).Times(1)

	board, err := suite.dashboardService.TeamBoard("2026-01-15")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2026-01-15", board.Date)
	assert.Len(suite.T(), board.Entries, 2)
	assert.True(suite.T(), board.Entries[0].Present)
	assert.InDelta(suite.T(), 8.0, board.Entries[0].SessionHours, 0.001)
	assert.False(suite.T(), board.Entries[1].Present)
	assert.Nil(suite.T(), board.Entries[1].Location)
}

// TestTeamBoardDefaultsToToday tests that an empty date means today
func (suite *DashboardServiceTestSuite) TestTeamBoardDefaultsToToday() {
	suite.mockMemberRepo.EXPECT().GetActive().Return([]models.TeamMember{}, nil).Times(1)
	suite.mockAttendanceRepo.EXPECT().GetByDate("2026-01-16").Return([]models.AttendanceRecord{}, nil).Times(1)

	board, err := suite.dashboardService.TeamBoard("")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2026-01-16", board.Date)
	assert.Empty(suite.T(), board.Entries)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
