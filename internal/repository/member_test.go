//go:build integration
// +build integration

package repository

import (
	"testing"

	"teamops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MemberRepositoryTestSuite tests the MemberRepository
type MemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MemberRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new member
func (suite *MemberRepositoryTestSuite) TestCreate() {
	member := suite.factories.Member.Create()

	err := suite.repo.Create(member)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, member.ID)
	suite.NotZero(member.CreatedAt)
	suite.NotZero(member.UpdatedAt)
}

// TestCreateDuplicateCode tests creating a member with a duplicate roster code
func (suite *MemberRepositoryTestSuite) TestCreateDuplicateCode() {
	member1 := suite.factories.Member.WithCode("ROMEO")
	err := suite.repo.Create(member1)
	suite.NoError(err)

	member2 := suite.factories.Member.WithCode("ROMEO")
	member2.Name = "Other Romeo"

	err = suite.repo.Create(member2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByCode tests retrieving a member by roster code
func (suite *MemberRepositoryTestSuite) TestGetByCode() {
	member := suite.factories.Member.WithCode("RAVEN")
	member.Name = "Raven"
	member.Role = "Intern"
	suite.NoError(suite.repo.Create(member))

	found, err := suite.repo.GetByCode("RAVEN")
	suite.NoError(err)
	suite.Equal("Raven", found.Name)
	suite.Equal("Intern", found.Role)

	_, err = suite.repo.GetByCode("NOBODY")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByName tests the case-insensitive name lookup used by login
func (suite *MemberRepositoryTestSuite) TestGetByName() {
	member := suite.factories.Member.WithName("Frankie")
	suite.NoError(suite.repo.Create(member))

	found, err := suite.repo.GetByName("frankie")
	suite.NoError(err)
	suite.Equal(member.ID, found.ID)
}

// TestGetAllOrdering tests that members come back sorted by name
func (suite *MemberRepositoryTestSuite) TestGetAllOrdering() {
	for _, name := range []string{"Ronio", "Angelica", "Karl"} {
		suite.NoError(suite.repo.Create(suite.factories.Member.WithName(name)))
	}

	members, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(members, 3)
	suite.Equal("Angelica", members[0].Name)
	suite.Equal("Karl", members[1].Name)
	suite.Equal("Ronio", members[2].Name)
}

// TestCount tests the member count used by seed-on-empty
func (suite *MemberRepositoryTestSuite) TestCount() {
	total, err := suite.repo.Count()
	suite.NoError(err)
	suite.Zero(total)

	suite.NoError(suite.repo.Create(suite.factories.Member.Create()))

	total, err = suite.repo.Count()
	suite.NoError(err)
	suite.EqualValues(1, total)
}

func TestMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemberRepositoryTestSuite))
}
