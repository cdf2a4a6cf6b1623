package repository

import (
	"github.com/hackoverflow/hostel-management-api/internal/database"
	"github.com/hackoverflow/hostel-management-api/internal/models"
	"github.com/hackoverflow/hostel-management-api/internal/utils"
	"gorm.io/gorm"
)

// GormLostFoundRepository is a GORM implementation of LostFoundRepository
type GormLostFoundRepository struct {
	db *gorm.DB
}

// NewLostFoundRepository creates a new LostFoundRepository
func NewLostFoundRepository(db *gorm.DB) LostFoundRepository {
	return &GormLostFoundRepository{db: db}
}

// Create creates a new lost-and-found item
func (r *GormLostFoundRepository) Create(item *models.LostFound) error {
	return r.db.Create(item).Error
}

// List lists items newest first with pagination
func (r *GormLostFoundRepository) List(params utils.PaginationParams) ([]models.LostFound, int64, error) {
	var items []models.LostFound

	query := r.db.Model(&models.LostFound{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("User").
		Order("id DESC").
		Scopes(database.Paginate(params)).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
