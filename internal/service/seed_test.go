package service_test

import (
	"testing"

	"teamops-backend/internal/config"
	"teamops-backend/internal/database/models"
	"teamops-backend/internal/logger"
	"teamops-backend/internal/mocks"
	"teamops-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SeedServiceTestSuite defines the test suite for SeedService
type SeedServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockMemberRepo     *mocks.MockMemberRepositoryInterface
	mockAttendanceRepo *mocks.MockAttendanceRepositoryInterface
	mockWorkLogRepo    *mocks.MockWorkLogRepositoryInterface
	seedService        *service.SeedService
}

// SetupTest sets up the test suite
func (suite *SeedServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.mockAttendanceRepo = mocks.NewMockAttendanceRepositoryInterface(suite.ctrl)
	suite.mockWorkLogRepo = mocks.NewMockWorkLogRepositoryInterface(suite.ctrl)

	cfg := &config.Config{
		MissionStartDate: "2026-01-12",
		RosterFile:       "", // fall back to the built-in roster
		SeedRandomSeed:   42,
	}
	suite.seedService = service.NewSeedService(
		suite.mockMemberRepo, suite.mockAttendanceRepo, suite.mockWorkLogRepo, cfg, logger.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *SeedServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSeedIfEmptySkipsPopulated tests that a populated installation is untouched
func (suite *SeedServiceTestSuite) TestSeedIfEmptySkipsPopulated() {
	suite.mockAttendanceRepo.EXPECT().Count().Return(int64(120), nil).Times(1)

	seeded, err := suite.seedService.SeedIfEmpty()

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), seeded)
}

// TestSeedIfEmptyGeneratesHistory tests the first-boot path end to end
func (suite *SeedServiceTestSuite) TestSeedIfEmptyGeneratesHistory() {
	suite.mockAttendanceRepo.EXPECT().Count().Return(int64(0), nil).Times(1)
	suite.mockMemberRepo.EXPECT().Count().Return(int64(0), nil).Times(1)
	suite.mockMemberRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(members []models.TeamMember) error {
			assert.NotEmpty(suite.T(), members)
			return nil
		}).
		Times(1)
	suite.mockAttendanceRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(records []models.AttendanceRecord) error {
			assert.NotEmpty(suite.T(), records)
			// History never includes weekend days
			for i := range records {
				assert.NotEqual(suite.T(), "2026-01-17", records[i].Date)
				assert.NotEqual(suite.T(), "2026-01-18", records[i].Date)
			}
			return nil
		}).
		Times(1)
	suite.mockWorkLogRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(entries []models.WorkLogEntry) error {
			assert.NotEmpty(suite.T(), entries)
			return nil
		}).
		Times(1)

	seeded, err := suite.seedService.SeedIfEmpty()

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), seeded)
}

// TestSeedIfEmptyReusesExistingRoster tests that members already present are
// not re-created
func (suite *SeedServiceTestSuite) TestSeedIfEmptyReusesExistingRoster() {
	members := []models.TeamMember{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Raven", Code: "RAVEN", IsActive: true},
	}

	suite.mockAttendanceRepo.EXPECT().Count().Return(int64(0), nil).Times(1)
	suite.mockMemberRepo.EXPECT().Count().Return(int64(1), nil).Times(1)
	suite.mockMemberRepo.EXPECT().GetAll().Return(members, nil).Times(1)
	suite.mockAttendanceRepo.EXPECT().CreateBatch(gomock.Any()).Return(nil).Times(1)
	suite.mockWorkLogRepo.EXPECT().CreateBatch(gomock.Any()).Return(nil).Times(1)

	seeded, err := suite.seedService.SeedIfEmpty()

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), seeded)
}

func TestSeedServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SeedServiceTestSuite))
}
