package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hackoverflow/hostel-management-api/internal/constants"
	"github.com/hackoverflow/hostel-management-api/internal/models"
	"github.com/hackoverflow/hostel-management-api/internal/repository"
	"github.com/hackoverflow/hostel-management-api/internal/services"
	"github.com/hackoverflow/hostel-management-api/internal/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupLostFoundTestEnv(t *testing.T) (*gorm.DB, *LostFoundHandler) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.LostFound{}))

	uploads, err := storage.NewUploads(t.TempDir())
	require.NoError(t, err)

	handler := NewLostFoundHandler(
		services.NewLostFoundService(repository.NewLostFoundRepository(db)),
		uploads,
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, handler
}

func TestLostFoundHandler_PostAndListNewestFirst(t *testing.T) {
	db, handler := setupLostFoundTestEnv(t)

	user := &models.User{Username: "poster", PasswordHash: "x", Role: models.RoleStudent, RoomNumber: "101"}
	require.NoError(t, db.Create(user).Error)

	for _, name := range []string{"Blue bottle", "Black umbrella"} {
		body, contentType := reportForm(map[string]string{
			"item_name": name,
			"location":  "Mess hall",
			"status":    "Found",
		}, "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/lost-found", body)
		req.Header.Set("Content-Type", contentType)
		c, _ := gin.CreateTestContext(w)
		c.Request = req
		c.Set(constants.ContextKeyUserID, user.ID)

		handler.Post(c)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/lost-found", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, user.ID)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Items []struct {
			ItemName string `json:"item_name"`
			Status   string `json:"status"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Items, 2)
	require.Equal(t, "Black umbrella", response.Items[0].ItemName)
	require.Equal(t, "Blue bottle", response.Items[1].ItemName)
	require.Equal(t, "Found", response.Items[0].Status)
}

func TestLostFoundHandler_PostMissingItemName(t *testing.T) {
	db, handler := setupLostFoundTestEnv(t)

	user := &models.User{Username: "poster", PasswordHash: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(user).Error)

	body, contentType := reportForm(map[string]string{
		"location": "Mess hall",
	}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/lost-found", body)
	req.Header.Set("Content-Type", contentType)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, user.ID)

	handler.Post(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
