package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hackoverflow/hostel-management-api/internal/constants"
	"github.com/hackoverflow/hostel-management-api/internal/models"
	"github.com/hackoverflow/hostel-management-api/internal/repository"
	"github.com/hackoverflow/hostel-management-api/internal/services"
	"github.com/hackoverflow/hostel-management-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// IssueHandlerTestSuite defines the test suite for IssueHandler
type IssueHandlerTestSuite struct {
	suite.Suite
	db        *gorm.DB
	handler   *IssueHandler
	uploadDir string
}

// SetupTest runs before each test
func (suite *IssueHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Issue{},
	)
	suite.Require().NoError(err)

	suite.uploadDir = suite.T().TempDir()
	uploads, err := storage.NewUploads(suite.uploadDir)
	suite.Require().NoError(err)

	userRepo := repository.NewUserRepository(suite.db)
	issueRepo := repository.NewIssueRepository(suite.db)
	suite.handler = NewIssueHandler(services.NewIssueService(issueRepo, userRepo), uploads)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *IssueHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *IssueHandlerTestSuite) createStudent(username, room string) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
		Role:         models.RoleStudent,
		RoomNumber:   room,
	}
	suite.db.Create(user)
	return user
}

func (suite *IssueHandlerTestSuite) createWorker(username, specialty string) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
		Role:         models.RoleWorker,
		Specialty:    specialty,
	}
	suite.db.Create(user)
	return user
}

// createAuthContext builds a request context carrying the session
// identity the middleware would have set.
func (suite *IssueHandlerTestSuite) createAuthContext(method, target, contentType string, body io.Reader, user *models.User) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, user.ID)
	c.Set(constants.ContextKeyRole, string(user.Role))

	return c, w
}

func reportForm(fields map[string]string, filename string) (io.Reader, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		writer.WriteField(k, v)
	}
	if filename != "" {
		part, _ := writer.CreateFormFile("item_image", filename)
		part.Write([]byte("fake image bytes"))
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func (suite *IssueHandlerTestSuite) TestReport_Success() {
	student := suite.createStudent("2026HOSTEL1011", "101")
	worker := suite.createWorker("sparky", "Electrical")

	body, contentType := reportForm(map[string]string{
		"title":       "Socket sparking",
		"category":    "Electrical",
		"priority":    "High",
		"description": "Sparks near the desk",
		"is_public":   "on",
	}, "")

	c, w := suite.createAuthContext(http.MethodPost, "/report", contentType, body, student)
	suite.handler.Report(c)

	suite.Require().Equal(http.StatusCreated, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Assigned", response["status"])
	assert.Equal(suite.T(), "101", response["room_number"])
	assert.Equal(suite.T(), true, response["is_public"])

	var reloaded models.User
	suite.Require().NoError(suite.db.First(&reloaded, worker.ID).Error)
	assert.Equal(suite.T(), 1, reloaded.TaskCount)
}

func (suite *IssueHandlerTestSuite) TestReport_DuplicateConflict() {
	student := suite.createStudent("2026HOSTEL1011", "101")

	body, contentType := reportForm(map[string]string{
		"title":    "Leaking tap",
		"category": "Plumbing",
	}, "")
	c, w := suite.createAuthContext(http.MethodPost, "/report", contentType, body, student)
	suite.handler.Report(c)
	suite.Require().Equal(http.StatusCreated, w.Code)

	body, contentType = reportForm(map[string]string{
		"title":    "Tap still leaking",
		"category": "Plumbing",
	}, "")
	c, w = suite.createAuthContext(http.MethodPost, "/report", contentType, body, student)
	suite.handler.Report(c)

	suite.Require().Equal(http.StatusConflict, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Plumbing")
	assert.Contains(suite.T(), w.Body.String(), "101")

	var count int64
	suite.db.Model(&models.Issue{}).Count(&count)
	assert.EqualValues(suite.T(), 1, count)
}

func (suite *IssueHandlerTestSuite) TestReport_MissingTitle() {
	student := suite.createStudent("2026HOSTEL1011", "101")

	body, contentType := reportForm(map[string]string{
		"category": "Plumbing",
	}, "")
	c, w := suite.createAuthContext(http.MethodPost, "/report", contentType, body, student)
	suite.handler.Report(c)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
}

func (suite *IssueHandlerTestSuite) TestReport_StoresUploadedImage() {
	student := suite.createStudent("2026HOSTEL1011", "101")

	body, contentType := reportForm(map[string]string{
		"title":    "Broken chair",
		"category": "Carpentry",
	}, "../sneaky photo.png")
	c, w := suite.createAuthContext(http.MethodPost, "/report", contentType, body, student)
	suite.handler.Report(c)

	suite.Require().Equal(http.StatusCreated, w.Code)

	var issue models.Issue
	suite.Require().NoError(suite.db.First(&issue).Error)
	suite.Require().NotEmpty(issue.ImagePath)
	assert.NotContains(suite.T(), issue.ImagePath, "/")
	assert.True(suite.T(), strings.HasSuffix(issue.ImagePath, "sneaky_photo.png"))

	_, err := os.Stat(filepath.Join(suite.uploadDir, issue.ImagePath))
	assert.NoError(suite.T(), err)
}

func (suite *IssueHandlerTestSuite) TestUpdateStatus_ForbiddenForOtherWorker() {
	student := suite.createStudent("2026HOSTEL1011", "101")
	suite.createWorker("assigned", "Electrical")
	other := suite.createWorker("other", "Electrical")

	body, contentType := reportForm(map[string]string{
		"title":    "Fan not working",
		"category": "Electrical",
	}, "")
	c, w := suite.createAuthContext(http.MethodPost, "/report", contentType, body, student)
	suite.handler.Report(c)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var issue models.Issue
	suite.Require().NoError(suite.db.First(&issue).Error)

	form := url.Values{"new_status": {"Resolved"}}
	c, w = suite.createAuthContext(http.MethodPost, "/update_status/"+strconv.FormatUint(issue.ID, 10),
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()), other)
	c.Params = gin.Params{{Key: "issue_id", Value: strconv.FormatUint(issue.ID, 10)}}
	suite.handler.UpdateStatus(c)

	suite.Require().Equal(http.StatusForbidden, w.Code)
}

func (suite *IssueHandlerTestSuite) TestSolveIssue_NotFound() {
	student := suite.createStudent("2026HOSTEL1011", "101")

	c, w := suite.createAuthContext(http.MethodPost, "/solve_issue/9999", "", nil, student)
	c.Params = gin.Params{{Key: "issue_id", Value: "9999"}}
	suite.handler.SolveIssue(c)

	suite.Require().Equal(http.StatusNotFound, w.Code)
}

func (suite *IssueHandlerTestSuite) TestSolveIssue_Success() {
	student := suite.createStudent("2026HOSTEL1011", "101")
	worker := suite.createWorker("sparky", "Electrical")

	body, contentType := reportForm(map[string]string{
		"title":    "Fan not working",
		"category": "Electrical",
	}, "")
	c, w := suite.createAuthContext(http.MethodPost, "/report", contentType, body, student)
	suite.handler.Report(c)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var issue models.Issue
	suite.Require().NoError(suite.db.First(&issue).Error)

	c, w = suite.createAuthContext(http.MethodPost, "/solve_issue/"+strconv.FormatUint(issue.ID, 10), "", nil, student)
	c.Params = gin.Params{{Key: "issue_id", Value: strconv.FormatUint(issue.ID, 10)}}
	suite.handler.SolveIssue(c)

	suite.Require().Equal(http.StatusOK, w.Code)

	var reloaded models.User
	suite.Require().NoError(suite.db.First(&reloaded, worker.ID).Error)
	assert.Equal(suite.T(), 0, reloaded.TaskCount)
}

func TestIssueHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(IssueHandlerTestSuite))
}
