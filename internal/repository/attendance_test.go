//go:build integration
// +build integration

package repository

import (
	"testing"

	"teamops-backend/internal/database/models"
	"teamops-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AttendanceRepositoryTestSuite tests the AttendanceRepository
type AttendanceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AttendanceRepository
	memberRepo    *MemberRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AttendanceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAttendanceRepository(suite.baseTestSuite.DB)
	suite.memberRepo = NewMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AttendanceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AttendanceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AttendanceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AttendanceRepositoryTestSuite) createMember() *models.TeamMember {
	member := suite.factories.Member.Create()
	suite.Require().NoError(suite.memberRepo.Create(member))
	return member
}

// TestGetByMemberAndDate tests the lookup that guards duplicate check-ins
func (suite *AttendanceRepositoryTestSuite) TestGetByMemberAndDate() {
	member := suite.createMember()
	record := suite.factories.Attendance.WithDate(member.ID, "2026-01-13")
	suite.NoError(suite.repo.Create(record))

	found, err := suite.repo.GetByMemberAndDate(member.ID, "2026-01-13")
	suite.NoError(err)
	suite.Equal(record.ID, found.ID)

	_, err = suite.repo.GetByMemberAndDate(member.ID, "2026-01-14")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByMemberOrdering tests that history comes back newest date first
func (suite *AttendanceRepositoryTestSuite) TestGetByMemberOrdering() {
	member := suite.createMember()
	for _, date := range []string{"2026-01-12", "2026-01-14", "2026-01-13"} {
		suite.NoError(suite.repo.Create(suite.factories.Attendance.WithDate(member.ID, date)))
	}

	records, err := suite.repo.GetByMember(member.ID)
	suite.NoError(err)
	suite.Len(records, 3)
	suite.Equal("2026-01-14", records[0].Date)
	suite.Equal("2026-01-12", records[2].Date)
}

// TestCreateBatch tests bulk-inserting a generated history
func (suite *AttendanceRepositoryTestSuite) TestCreateBatch() {
	member := suite.createMember()
	batch := []models.AttendanceRecord{
		*suite.factories.Attendance.WithDate(member.ID, "2026-01-12"),
		*suite.factories.Attendance.WithDate(member.ID, "2026-01-13"),
	}

	suite.NoError(suite.repo.CreateBatch(batch))

	total, err := suite.repo.Count()
	suite.NoError(err)
	suite.EqualValues(2, total)
}

// TestUpdateCheckOut tests closing an open session
func (suite *AttendanceRepositoryTestSuite) TestUpdateCheckOut() {
	member := suite.createMember()
	record := suite.factories.Attendance.Open(member.ID, "2026-01-13")
	suite.NoError(suite.repo.Create(record))
	suite.True(record.IsOpen())

	checkOut := "04:45 PM"
	record.CheckOut = &checkOut
	suite.NoError(suite.repo.Update(record))

	found, err := suite.repo.GetByID(record.ID)
	suite.NoError(err)
	suite.False(found.IsOpen())
	suite.Equal("04:45 PM", *found.CheckOut)
}

// TestReplaceAll tests the snapshot import swap
func (suite *AttendanceRepositoryTestSuite) TestReplaceAll() {
	member := suite.createMember()
	suite.NoError(suite.repo.Create(suite.factories.Attendance.WithDate(member.ID, "2026-01-12")))
	suite.NoError(suite.repo.Create(suite.factories.Attendance.WithDate(member.ID, "2026-01-13")))

	replacement := []models.AttendanceRecord{
		*suite.factories.Attendance.WithDate(member.ID, "2026-02-02"),
	}
	suite.NoError(suite.repo.ReplaceAll(replacement))

	records, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(records, 1)
	suite.Equal("2026-02-02", records[0].Date)
}

func TestAttendanceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceRepositoryTestSuite))
}
