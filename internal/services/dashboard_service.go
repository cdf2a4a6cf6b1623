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

// DashboardService builds the per-role read-only views. Nothing in
// this service mutates the store.
type DashboardService struct {
	issueRepo    repository.IssueRepository
	userRepo     repository.UserRepository
	circularRepo repository.CircularRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(issueRepo repository.IssueRepository, userRepo repository.UserRepository, circularRepo repository.CircularRepository) *DashboardService {
	return &DashboardService{
		issueRepo:    issueRepo,
		userRepo:     userRepo,
		circularRepo: circularRepo,
	}
}

// StudentDashboard aggregates everything a student's landing view needs
type StudentDashboard struct {
	MyIssues     []models.Issue
	PublicIssues []models.Issue
	Roommates    []models.User
	Circulars    []models.Circular
}

// WorkerDashboard holds a worker's assigned issues and derived workload
type WorkerDashboard struct {
	Worker   *models.User
	Tasks    []models.Issue
	Workload int
}

// AdminDashboard holds the management overview
type AdminDashboard struct {
	Workers       []models.User
	Issues        []models.Issue
	IssuesTotal   int64
	PendingCount  int64
	ResolvedCount int64
	Overdue       []models.Issue
}

// ForStudent builds the student dashboard: own issues, the hostel-wide
// public feed, roommates and circulars.
func (s *DashboardService) ForStudent(studentID uint64) (*StudentDashboard, error) {
	student, err := s.userRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}

	myIssues, _, err := s.issueRepo.List(repository.IssueFilter{StudentID: &studentID})
	if err != nil {
		return nil, fmt.Errorf("failed to list own issues: %w", err)
	}

	public := true
	publicIssues, _, err := s.issueRepo.List(repository.IssueFilter{Public: &public})
	if err != nil {
		return nil, fmt.Errorf("failed to list public issues: %w", err)
	}

	roommates, err := s.userRepo.ListByRoom(student.RoomNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list roommates: %w", err)
	}

	circulars, err := s.circularRepo.ListNewestFirst()
	if err != nil {
		return nil, fmt.Errorf("failed to list circulars: %w", err)
	}

	return &StudentDashboard{
		MyIssues:     myIssues,
		PublicIssues: publicIssues,
		Roommates:    roommates,
		Circulars:    circulars,
	}, nil
}

// ForWorker builds the worker dashboard. Workload counts assigned
// issues not yet in the Solved state.
func (s *DashboardService) ForWorker(workerID uint64) (*WorkerDashboard, error) {
	worker, err := s.userRepo.FindByID(workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find worker: %w", err)
	}

	tasks, _, err := s.issueRepo.List(repository.IssueFilter{WorkerID: &workerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned issues: %w", err)
	}

	workload := 0
	for _, t := range tasks {
		if t.Status != models.IssueStatusSolved {
			workload++
		}
	}

	return &WorkerDashboard{
		Worker:   worker,
		Tasks:    tasks,
		Workload: workload,
	}, nil
}

// ForAdmin builds the management overview. ResolvedCount counts issues
// in the terminal Solved state.
func (s *DashboardService) ForAdmin(page, pageSize int) (*AdminDashboard, error) {
	workers, err := s.userRepo.ListByRole(models.RoleWorker)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	issues, total, err := s.issueRepo.List(repository.IssueFilter{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	pending, err := s.issueRepo.CountByStatus(models.IssueStatusReported)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending issues: %w", err)
	}

	resolved, err := s.issueRepo.CountByStatus(models.IssueStatusSolved)
	if err != nil {
		return nil, fmt.Errorf("failed to count resolved issues: %w", err)
	}

	deadline := time.Now().Add(-constants.OverdueAfter)
	overdue, err := s.issueRepo.ListOverdue(deadline)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue issues: %w", err)
	}

	return &AdminDashboard{
		Workers:       workers,
		Issues:        issues,
		IssuesTotal:   total,
		PendingCount:  pending,
		ResolvedCount: resolved,
		Overdue:       overdue,
	}, nil
}
