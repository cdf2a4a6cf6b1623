package database

import (
	"errors"
	"fmt"

	"github.com/hackoverflow/hostel-management-api/internal/constants"
	"github.com/hackoverflow/hostel-management-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedBcryptCost is lowered in tests; hashing 135 accounts at the
// default cost is too slow for a test run.
var seedBcryptCost = bcrypt.DefaultCost

// Seed populates the default hostel accounts: three occupants for
// every room on every floor, plus a single management account.
// Creation is keyed on username, so running it again is a no-op.
func Seed(db *gorm.DB) error {
	for floor := 1; floor <= constants.SeedFloors; floor++ {
		for room := 1; room <= constants.SeedRoomsPerFloor; room++ {
			roomID := fmt.Sprintf("%d%02d", floor, room)
			for member := 1; member <= constants.SeedMembersPerRoom; member++ {
				username := fmt.Sprintf("%s%s%d", constants.SeedUsernamePrefix, roomID, member)
				password := username[len(username)-4:]

				if err := createIfAbsent(db, &models.User{
					Username:   username,
					Role:       models.RoleStudent,
					RoomNumber: roomID,
				}, password); err != nil {
					return err
				}
			}
		}
	}

	return createIfAbsent(db, &models.User{
		Username: constants.SeedAdminUsername,
		Role:     models.RoleManagement,
	}, constants.SeedAdminPassword)
}

func createIfAbsent(db *gorm.DB, user *models.User, password string) error {
	var existing models.User
	err := db.Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check seed user %s: %w", user.Username, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), seedBcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create seed user %s: %w", user.Username, err)
	}
	return nil
}
