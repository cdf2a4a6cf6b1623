package dto

import (
	"time"

	"github.com/hackoverflow/hostel-management-api/internal/models"
)

// LostFoundDTO represents a lost-and-found item in API responses
type LostFoundDTO struct {
	ID          uint64    `json:"id"`
	ItemName    string    `json:"item_name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	ImagePath   string    `json:"image_path,omitempty"`
	UserID      uint64    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	User        *UserDTO  `json:"user,omitempty"`
}

// ToLostFoundDTO converts a LostFound model to LostFoundDTO
func ToLostFoundDTO(item models.LostFound) LostFoundDTO {
	dto := LostFoundDTO{
		ID:          item.ID,
		ItemName:    item.ItemName,
		Description: item.Description,
		Location:    item.Location,
		Status:      item.Status,
		ImagePath:   item.ImagePath,
		UserID:      item.UserID,
		CreatedAt:   item.CreatedAt,
	}

	if item.User.ID != 0 {
		user := ToUserDTO(item.User)
		dto.User = &user
	}

	return dto
}

// ToLostFoundDTOs converts a slice of LostFound models
func ToLostFoundDTOs(items []models.LostFound) []LostFoundDTO {
	dtos := make([]LostFoundDTO, len(items))
	for i, item := range items {
		dtos[i] = ToLostFoundDTO(item)
	}
	return dtos
}
