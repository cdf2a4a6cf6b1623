package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hackoverflow/hostel-management-api/internal/constants"
	"github.com/hackoverflow/hostel-management-api/internal/models"
	"github.com/hackoverflow/hostel-management-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrWorkerNameRequired = errors.New("worker name is required")
	ErrSpecialtyRequired  = errors.New("specialty is required")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrCircularIncomplete = errors.New("title and content are required")
)

// StaffService handles management-side mutations: hiring workers and
// publishing circulars.
type StaffService struct {
	userRepo     repository.UserRepository
	circularRepo repository.CircularRepository
}

// NewStaffService creates a new StaffService
func NewStaffService(userRepo repository.UserRepository, circularRepo repository.CircularRepository) *StaffService {
	return &StaffService{
		userRepo:     userRepo,
		circularRepo: circularRepo,
	}
}

// AddWorkerInput represents the details of a new worker account
type AddWorkerInput struct {
	Username  string
	Password  string
	Specialty string
}

// AddWorker creates a worker account with an empty workload.
func (s *StaffService) AddWorker(input AddWorkerInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrWorkerNameRequired
	}
	if strings.TrimSpace(input.Specialty) == "" {
		return nil, ErrSpecialtyRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	worker := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleWorker,
		Specialty:    strings.TrimSpace(input.Specialty),
	}

	if err := s.userRepo.Create(worker); err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	return worker, nil
}

// PostCircular appends a new circular to the announcement feed.
func (s *StaffService) PostCircular(title, content string) (*models.Circular, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrCircularIncomplete
	}

	circular := &models.Circular{
		Title:   title,
		Content: content,
	}

	if err := s.circularRepo.Create(circular); err != nil {
		return nil, fmt.Errorf("failed to create circular: %w", err)
	}

	return circular, nil
}
