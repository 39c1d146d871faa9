package handlers_test

import (
	"net/http"
	"testing"

	"teamops-backend/internal/api/handlers"
	"teamops-backend/internal/database/models"
	"teamops-backend/internal/mocks"
	"teamops-backend/internal/service"
	"teamops-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MemberHandlerTestSuite defines the test suite for MemberHandler
type MemberHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockMemberRepositoryInterface
	http     *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *MemberHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)

	memberService := service.NewMemberService(suite.mockRepo, validator.New())
	handler := handlers.NewMemberHandler(memberService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/members", handler.ListMembers)
	suite.http.Router.GET("/members/:id", handler.GetMember)
	suite.http.Router.POST("/members", handler.CreateMember)
}

// TearDownTest cleans up after each test
func (suite *MemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMember tests POST /members
func (suite *MemberHandlerTestSuite) TestCreateMember() {
	suite.mockRepo.EXPECT().GetByCode("IAN").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	body := map[string]interface{}{"name": "Ian", "role": "Intern", "code": "IAN"}
	recorder := suite.http.MakeRequest(http.MethodPost, "/members", body)

	var response service.MemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "Ian", response.Name)
	assert.True(suite.T(), response.IsActive)
}

// TestCreateMemberDuplicateCode tests the 409 mapping
func (suite *MemberHandlerTestSuite) TestCreateMemberDuplicateCode() {
	existing := &models.TeamMember{BaseModel: models.BaseModel{ID: uuid.New()}, Code: "IAN"}
	suite.mockRepo.EXPECT().GetByCode("IAN").Return(existing, nil).Times(1)

	body := map[string]interface{}{"name": "Ian", "role": "Intern", "code": "IAN"}
	recorder := suite.http.MakeRequest(http.MethodPost, "/members", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists with this code")
}

// TestCreateMemberMissingName tests request binding rejection
func (suite *MemberHandlerTestSuite) TestCreateMemberMissingName() {
	body := map[string]interface{}{"role": "Intern", "code": "X1"}
	recorder := suite.http.MakeRequest(http.MethodPost, "/members", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

// TestGetMemberInvalidID tests the UUID guard
func (suite *MemberHandlerTestSuite) TestGetMemberInvalidID() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/members/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid member ID")
}

// TestGetMemberNotFound tests the 404 mapping
func (suite *MemberHandlerTestSuite) TestGetMemberNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/members/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team member not found")
}

// TestListMembersActiveFilter tests the ?active=true query
func (suite *MemberHandlerTestSuite) TestListMembersActiveFilter() {
	members := []models.TeamMember{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Karl", Code: "KARL", IsActive: true},
	}
	suite.mockRepo.EXPECT().GetActive().Return(members, nil).Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/members?active=true", nil)

	var response []service.MemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "Karl", response[0].Name)
}

func TestMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}
