package dto

import "github.com/hackoverflow/hostel-management-api/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID         uint64      `json:"id"`
	Username   string      `json:"username"`
	Role       models.Role `json:"role"`
	RoomNumber string      `json:"room_number,omitempty"`
	Specialty  string      `json:"specialty,omitempty"`
	TaskCount  int         `json:"task_count"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		Username:   user.Username,
		Role:       user.Role,
		RoomNumber: user.RoomNumber,
		Specialty:  user.Specialty,
		TaskCount:  user.TaskCount,
	}
}

// ToUserDTOs converts a slice of User models
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = ToUserDTO(u)
	}
	return dtos
}
