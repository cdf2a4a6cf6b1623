package database

import (
	"testing"

	"github.com/hackoverflow/hostel-management-api/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func TestSeed_IsIdempotent(t *testing.T) {
	seedBcryptCost = bcrypt.MinCost
	db := setupSeedTestDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var students int64
	require.NoError(t, db.Model(&models.User{}).
		Where("role = ?", models.RoleStudent).
		Count(&students).Error)
	require.EqualValues(t, 135, students)

	var admins int64
	require.NoError(t, db.Model(&models.User{}).
		Where("role = ?", models.RoleManagement).
		Count(&admins).Error)
	require.EqualValues(t, 1, admins)

	var total int64
	require.NoError(t, db.Model(&models.User{}).Count(&total).Error)
	require.EqualValues(t, 136, total)
}

func TestSeed_DerivedCredentials(t *testing.T) {
	seedBcryptCost = bcrypt.MinCost
	db := setupSeedTestDB(t)

	require.NoError(t, Seed(db))

	// First occupant of the first room on the first floor
	var user models.User
	require.NoError(t, db.Where("username = ?", "2026HOSTEL1011").First(&user).Error)
	require.Equal(t, models.RoleStudent, user.Role)
	require.Equal(t, "101", user.RoomNumber)

	// Password is the last four characters of the username
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("1011")))

	// Last occupant of the last room on the top floor exists too
	var lastUser models.User
	require.NoError(t, db.Where("username = ?", "2026HOSTEL3153").First(&lastUser).Error)
	require.Equal(t, "315", lastUser.RoomNumber)

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	require.Equal(t, models.RoleManagement, admin.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("123")))
}
