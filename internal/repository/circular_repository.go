package repository

import (
	"github.com/hackoverflow/hostel-management-api/internal/models"
	"gorm.io/gorm"
)

// GormCircularRepository is a GORM implementation of CircularRepository
type GormCircularRepository struct {
	db *gorm.DB
}

// NewCircularRepository creates a new CircularRepository
func NewCircularRepository(db *gorm.DB) CircularRepository {
	return &GormCircularRepository{db: db}
}

// Create appends a new circular
func (r *GormCircularRepository) Create(circular *models.Circular) error {
	return r.db.Create(circular).Error
}

// ListNewestFirst lists all circulars, newest first
func (r *GormCircularRepository) ListNewestFirst() ([]models.Circular, error) {
	var circulars []models.Circular
	if err := r.db.Order("id DESC").Find(&circulars).Error; err != nil {
		return nil, err
	}
	return circulars, nil
}
