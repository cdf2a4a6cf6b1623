package repository

import (
	"github.com/hackoverflow/hostel-management-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsernameAndRole finds a user matching both username and role
func (r *GormUserRepository) FindByUsernameAndRole(username string, role models.Role) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ? AND role = ?", username, role).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByRole lists all users with the given role
func (r *GormUserRepository) ListByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("role = ?", role).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListByRoom lists all users sharing a room number
func (r *GormUserRepository) ListByRoom(roomNumber string) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("room_number = ?", roomNumber).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindAvailableWorker returns the least-loaded worker with the given
// specialty whose task count is below maxTasks. Ties are broken by the
// lowest ID so repeated picks are stable.
func (r *GormUserRepository) FindAvailableWorker(specialty string, maxTasks int) (*models.User, error) {
	var worker models.User
	err := r.db.
		Where("role = ? AND specialty = ? AND task_count < ?", models.RoleWorker, specialty, maxTasks).
		Order("task_count ASC, id ASC").
		First(&worker).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}
