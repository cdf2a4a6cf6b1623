package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/hackoverflow/hostel-management-api/internal/constants"
	"github.com/hackoverflow/hostel-management-api/internal/models"
	"github.com/hackoverflow/hostel-management-api/internal/repository"
	"github.com/hackoverflow/hostel-management-api/internal/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db      *gorm.DB
	handler *AuthHandler
	router  *gin.Engine
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	handler := NewAuthHandler(authService)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/login", handler.Login)
	r.GET("/logout", handler.Logout)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:      db,
		handler: handler,
		router:  r,
	}
}

func (env authTestEnv) createUser(t *testing.T, username, password string, role models.Role) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func postLogin(t *testing.T, r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	env := setupAuthTestEnv(t)
	env.createUser(t, "2026HOSTEL1011", "1011", models.RoleStudent)

	w := postLogin(t, env.router, url.Values{
		"username": {"2026HOSTEL1011"},
		"password": {"1011"},
		"role":     {"Student"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "/student_dashboard")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
}

func TestAuthHandler_LoginWrongRoleRejected(t *testing.T) {
	env := setupAuthTestEnv(t)
	env.createUser(t, "2026HOSTEL1011", "1011", models.RoleStudent)

	// Right credentials, claimed as Management
	w := postLogin(t, env.router, url.Values{
		"username": {"2026HOSTEL1011"},
		"password": {"1011"},
		"role":     {"Management"},
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_LoginWrongPasswordGenericError(t *testing.T) {
	env := setupAuthTestEnv(t)
	env.createUser(t, "2026HOSTEL1011", "1011", models.RoleStudent)

	w := postLogin(t, env.router, url.Values{
		"username": {"2026HOSTEL1011"},
		"password": {"wrong"},
		"role":     {"Student"},
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	// Same message regardless of which field was wrong
	require.Contains(t, w.Body.String(), "invalid login credentials")
	require.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postLogin(t, env.router, url.Values{
		"username": {"someone"},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	env := setupAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Logged out successfully")
}
