package dto

import (
	"time"

	"github.com/hackoverflow/hostel-management-api/internal/models"
)

// IssueDTO represents an issue in API responses
type IssueDTO struct {
	ID          uint64             `json:"id"`
	Title       string             `json:"title"`
	Category    string             `json:"category"`
	RoomNumber  string             `json:"room_number"`
	Priority    string             `json:"priority"`
	Description string             `json:"description"`
	ImagePath   string             `json:"image_path,omitempty"`
	IsPublic    bool               `json:"is_public"`
	Status      models.IssueStatus `json:"status"`
	StudentID   uint64             `json:"student_id"`
	WorkerID    *uint64            `json:"worker_id,omitempty"`
	AssignedAt  *time.Time         `json:"assigned_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	Student     *UserDTO           `json:"student,omitempty"`
	Worker      *UserDTO           `json:"worker,omitempty"`
}

// ToIssueDTO converts an Issue model to IssueDTO
func ToIssueDTO(issue models.Issue) IssueDTO {
	dto := IssueDTO{
		ID:          issue.ID,
		Title:       issue.Title,
		Category:    issue.Category,
		RoomNumber:  issue.RoomNumber,
		Priority:    issue.Priority,
		Description: issue.Description,
		ImagePath:   issue.ImagePath,
		IsPublic:    issue.IsPublic,
		Status:      issue.Status,
		StudentID:   issue.StudentID,
		WorkerID:    issue.WorkerID,
		AssignedAt:  issue.AssignedAt,
		CreatedAt:   issue.CreatedAt,
	}

	// Include student if preloaded
	if issue.Student.ID != 0 {
		student := ToUserDTO(issue.Student)
		dto.Student = &student
	}

	// Include worker if preloaded
	if issue.Worker != nil && issue.Worker.ID != 0 {
		worker := ToUserDTO(*issue.Worker)
		dto.Worker = &worker
	}

	return dto
}

// ToIssueDTOs converts a slice of Issue models
func ToIssueDTOs(issues []models.Issue) []IssueDTO {
	dtos := make([]IssueDTO, len(issues))
	for i, issue := range issues {
		dtos[i] = ToIssueDTO(issue)
	}
	return dtos
}
