package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/hackoverflow/hostel-management-api/internal/constants"
	"github.com/hackoverflow/hostel-management-api/internal/models"
	"github.com/hackoverflow/hostel-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrIssueNotFound    = errors.New("issue not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrCategoryRequired = errors.New("category is required")
	ErrStatusRequired   = errors.New("new status is required")
	ErrNotIssueWorker   = errors.New("only the assigned worker or management can update this issue")
)

// DuplicateActiveIssueError rejects a report when the same category is
// already being processed for the same room.
type DuplicateActiveIssueError struct {
	Category   string
	RoomNumber string
}

func (e *DuplicateActiveIssueError) Error() string {
	return fmt.Sprintf("an active %s issue for room %s is already being processed", e.Category, e.RoomNumber)
}

// IssueService handles issue lifecycle business logic.
type IssueService struct {
	issueRepo repository.IssueRepository
	userRepo  repository.UserRepository
}

// NewIssueService creates a new IssueService
func NewIssueService(issueRepo repository.IssueRepository, userRepo repository.UserRepository) *IssueService {
	return &IssueService{
		issueRepo: issueRepo,
		userRepo:  userRepo,
	}
}

// ReportIssueInput represents input for reporting an issue
type ReportIssueInput struct {
	StudentID   uint64
	Title       string
	Category    string
	Priority    string
	Description string
	ImagePath   string
	IsPublic    bool
}

// ReportIssue creates an issue for the reporting student. Reports are
// suppressed while an unsolved issue of the same category exists for
// the student's room. A qualified worker under the workload cap is
// assigned immediately when one exists; otherwise the issue stays in
// the Reported state until a worker frees up.
func (s *IssueService) ReportIssue(input ReportIssueInput) (*models.Issue, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Category == "" {
		return nil, ErrCategoryRequired
	}

	student, err := s.userRepo.FindByID(input.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}

	if _, err := s.issueRepo.FindActiveByRoomCategory(student.RoomNumber, input.Category); err == nil {
		return nil, &DuplicateActiveIssueError{Category: input.Category, RoomNumber: student.RoomNumber}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check for duplicate issue: %w", err)
	}

	issue := &models.Issue{
		Title:       input.Title,
		Category:    input.Category,
		RoomNumber:  student.RoomNumber,
		Priority:    input.Priority,
		Description: input.Description,
		ImagePath:   input.ImagePath,
		IsPublic:    input.IsPublic,
		Status:      models.IssueStatusReported,
		StudentID:   student.ID,
	}

	worker, err := s.userRepo.FindAvailableWorker(input.Category, constants.MaxWorkerTaskCount)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to find available worker: %w", err)
		}
		// No eligible worker; the issue stays Reported and unassigned.
		if err := s.issueRepo.Create(issue); err != nil {
			return nil, fmt.Errorf("failed to create issue: %w", err)
		}
		return issue, nil
	}

	now := time.Now()
	issue.WorkerID = &worker.ID
	issue.Status = models.IssueStatusAssigned
	issue.AssignedAt = &now

	if err := s.issueRepo.CreateWithAssignment(issue, worker.ID); err != nil {
		return nil, fmt.Errorf("failed to create assigned issue: %w", err)
	}

	return issue, nil
}

// UpdateStatusInput represents input for the worker-facing status update
type UpdateStatusInput struct {
	IssueID   uint64
	ActorID   uint64
	ActorRole models.Role
	NewStatus string
}

// UpdateStatus sets an issue's status to the caller-supplied value. The
// value is stored as given; only the assigned worker or management may
// perform the update. Moving into Resolved frees one slot of the
// assigned worker's capacity.
func (s *IssueService) UpdateStatus(input UpdateStatusInput) (*models.Issue, error) {
	if input.NewStatus == "" {
		return nil, ErrStatusRequired
	}

	issue, err := s.issueRepo.FindByID(input.IssueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	if input.ActorRole != models.RoleManagement {
		if issue.WorkerID == nil || *issue.WorkerID != input.ActorID {
			return nil, ErrNotIssueWorker
		}
	}

	newStatus := models.IssueStatus(input.NewStatus)

	var decrementWorkerID *uint64
	if newStatus == models.IssueStatusResolved && issue.Status != models.IssueStatusResolved && issue.WorkerID != nil {
		decrementWorkerID = issue.WorkerID
	}

	issue.Status = newStatus
	if err := s.issueRepo.UpdateStatus(issue, decrementWorkerID); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	return issue, nil
}

// SolveIssue moves an issue to the terminal Solved state. Any
// authenticated caller may do this; solving an already-solved issue
// leaves the worker's task count untouched.
func (s *IssueService) SolveIssue(issueID uint64) (*models.Issue, error) {
	issue, err := s.issueRepo.FindByID(issueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	var decrementWorkerID *uint64
	if issue.WorkerID != nil && issue.Status != models.IssueStatusSolved {
		decrementWorkerID = issue.WorkerID
	}

	issue.Status = models.IssueStatusSolved
	if err := s.issueRepo.UpdateStatus(issue, decrementWorkerID); err != nil {
		return nil, fmt.Errorf("failed to solve issue: %w", err)
	}

	return issue, nil
}
