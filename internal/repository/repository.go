package repository

import (
	"time"

	"github.com/hackoverflow/hostel-management-api/internal/models"
	"github.com/hackoverflow/hostel-management-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByUsernameAndRole finds a user matching both username and role
	FindByUsernameAndRole(username string, role models.Role) (*models.User, error)

	// ListByRole lists all users with the given role
	ListByRole(role models.Role) ([]models.User, error)

	// ListByRoom lists all users sharing a room number
	ListByRoom(roomNumber string) ([]models.User, error)

	// FindAvailableWorker returns the least-loaded worker with the given
	// specialty whose task count is below maxTasks, ties broken by ID
	FindAvailableWorker(specialty string, maxTasks int) (*models.User, error)
}

// IssueFilter holds filtering options for listing issues
type IssueFilter struct {
	StudentID *uint64
	WorkerID  *uint64
	Status    *models.IssueStatus
	Public    *bool
	Page      int
	PageSize  int
}

// IssueRepository defines the interface for issue data access
type IssueRepository interface {
	// Create creates a new issue
	Create(issue *models.Issue) error

	// CreateWithAssignment creates an issue already bound to a worker and
	// increments that worker's task count within a single transaction
	CreateWithAssignment(issue *models.Issue, workerID uint64) error

	// FindByID finds an issue by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Issue, error)

	// FindActiveByRoomCategory finds an unsolved issue for a room and category
	FindActiveByRoomCategory(roomNumber, category string) (*models.Issue, error)

	// List retrieves issues with filtering and optional pagination
	List(filter IssueFilter) ([]models.Issue, int64, error)

	// UpdateStatus persists a status change and, when decrementWorkerID is
	// non-nil, decrements that worker's task count (floored at zero) in the
	// same transaction
	UpdateStatus(issue *models.Issue, decrementWorkerID *uint64) error

	// CountByStatus counts issues with the given status
	CountByStatus(status models.IssueStatus) (int64, error)

	// ListOverdue lists assigned issues whose assignment is older than deadline
	ListOverdue(deadline time.Time) ([]models.Issue, error)
}

// CircularRepository defines the interface for circular data access
type CircularRepository interface {
	// Create appends a new circular
	Create(circular *models.Circular) error

	// ListNewestFirst lists all circulars, newest first
	ListNewestFirst() ([]models.Circular, error)
}

// LostFoundRepository defines the interface for lost-and-found data access
type LostFoundRepository interface {
	// Create creates a new lost-and-found item
	Create(item *models.LostFound) error

	// List lists items newest first with pagination
	List(params utils.PaginationParams) ([]models.LostFound, int64, error)
}
