package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/hackoverflow/hostel-management-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCreateIssue is returned when creating an issue fails inside the assignment transaction.
	ErrCreateIssue = errors.New("issue repository: create issue failed")
	// ErrUpdateWorkload is returned when updating a worker's task count fails inside a transaction.
	ErrUpdateWorkload = errors.New("issue repository: update worker task count failed")
)

// GormIssueRepository is a GORM implementation of IssueRepository
type GormIssueRepository struct {
	db *gorm.DB
}

// NewIssueRepository creates a new IssueRepository
func NewIssueRepository(db *gorm.DB) IssueRepository {
	return &GormIssueRepository{db: db}
}

// Create creates a new issue
func (r *GormIssueRepository) Create(issue *models.Issue) error {
	return r.db.Create(issue).Error
}

// CreateWithAssignment creates an issue already bound to a worker and
// increments that worker's task count atomically. Either both rows are
// written or neither is.
func (r *GormIssueRepository) CreateWithAssignment(issue *models.Issue, workerID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(issue).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateIssue, err)
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", workerID).
			UpdateColumn("task_count", gorm.Expr("task_count + ?", 1)).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrUpdateWorkload, err)
		}

		return nil
	})
}

// FindByID finds an issue by ID with optional preloading
func (r *GormIssueRepository) FindByID(id uint64, preload ...string) (*models.Issue, error) {
	var issue models.Issue
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&issue, id).Error; err != nil {
		return nil, err
	}

	return &issue, nil
}

// FindActiveByRoomCategory finds an issue for the given room and category
// that has not reached the Solved state
func (r *GormIssueRepository) FindActiveByRoomCategory(roomNumber, category string) (*models.Issue, error) {
	var issue models.Issue
	err := r.db.
		Where("room_number = ? AND category = ? AND status <> ?", roomNumber, category, models.IssueStatusSolved).
		First(&issue).Error
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// List retrieves issues with filtering and optional pagination
func (r *GormIssueRepository) List(filter IssueFilter) ([]models.Issue, int64, error) {
	var issues []models.Issue

	query := r.db.Model(&models.Issue{})

	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}
	if filter.WorkerID != nil {
		query = query.Where("worker_id = ?", *filter.WorkerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Public != nil {
		query = query.Where("is_public = ?", *filter.Public)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("id DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		listQuery = listQuery.Offset(offset).Limit(filter.PageSize)
	}

	if err := listQuery.Preload("Student").Preload("Worker").Find(&issues).Error; err != nil {
		return nil, 0, err
	}

	return issues, total, nil
}

// UpdateStatus persists a status change. When decrementWorkerID is
// non-nil the worker's task count is decremented in the same
// transaction, floored at zero.
func (r *GormIssueRepository) UpdateStatus(issue *models.Issue, decrementWorkerID *uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(issue).Error; err != nil {
			return err
		}

		if decrementWorkerID != nil {
			if err := tx.Model(&models.User{}).
				Where("id = ? AND task_count > 0", *decrementWorkerID).
				UpdateColumn("task_count", gorm.Expr("task_count - ?", 1)).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrUpdateWorkload, err)
			}
		}

		return nil
	})
}

// CountByStatus counts issues with the given status
func (r *GormIssueRepository) CountByStatus(status models.IssueStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Issue{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// ListOverdue lists assigned issues whose assignment timestamp is at or
// before the deadline
func (r *GormIssueRepository) ListOverdue(deadline time.Time) ([]models.Issue, error) {
	var issues []models.Issue
	err := r.db.
		Where("status = ? AND assigned_at <= ?", models.IssueStatusAssigned, deadline).
		Preload("Worker").
		Order("assigned_at ASC").
		Find(&issues).Error
	if err != nil {
		return nil, err
	}
	return issues, nil
}
