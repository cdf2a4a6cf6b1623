package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hackoverflow/hostel-management-api/internal/models"
	"github.com/hackoverflow/hostel-management-api/internal/repository"
	"github.com/hackoverflow/hostel-management-api/internal/utils"
)

var ErrItemNameRequired = errors.New("item name is required")

// LostFoundService handles the lost-and-found board.
type LostFoundService struct {
	lostFoundRepo repository.LostFoundRepository
}

// NewLostFoundService creates a new LostFoundService
func NewLostFoundService(lostFoundRepo repository.LostFoundRepository) *LostFoundService {
	return &LostFoundService{
		lostFoundRepo: lostFoundRepo,
	}
}

// PostItemInput represents a new lost-and-found posting
type PostItemInput struct {
	UserID      uint64
	ItemName    string
	Description string
	Location    string
	Status      string
	ImagePath   string
}

// PostItem creates a board entry. Status is free text; empty defaults
// to Lost.
func (s *LostFoundService) PostItem(input PostItemInput) (*models.LostFound, error) {
	if strings.TrimSpace(input.ItemName) == "" {
		return nil, ErrItemNameRequired
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = "Lost"
	}

	item := &models.LostFound{
		ItemName:    input.ItemName,
		Description: input.Description,
		Location:    input.Location,
		Status:      status,
		ImagePath:   input.ImagePath,
		UserID:      input.UserID,
	}

	if err := s.lostFoundRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// ListItems lists board entries newest first.
func (s *LostFoundService) ListItems(params utils.PaginationParams) ([]models.LostFound, int64, error) {
	items, total, err := s.lostFoundRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list items: %w", err)
	}
	return items, total, nil
}
