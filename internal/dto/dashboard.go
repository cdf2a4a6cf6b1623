package dto

import (
	"time"

	"github.com/hackoverflow/hostel-management-api/internal/models"
	"github.com/hackoverflow/hostel-management-api/internal/services"
)

// CircularDTO represents a circular in API responses
type CircularDTO struct {
	ID         uint64    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"date_posted"`
}

// ToCircularDTO converts a Circular model to CircularDTO
func ToCircularDTO(circular models.Circular) CircularDTO {
	return CircularDTO{
		ID:         circular.ID,
		Title:      circular.Title,
		Content:    circular.Content,
		DatePosted: circular.DatePosted,
	}
}

// ToCircularDTOs converts a slice of Circular models
func ToCircularDTOs(circulars []models.Circular) []CircularDTO {
	dtos := make([]CircularDTO, len(circulars))
	for i, c := range circulars {
		dtos[i] = ToCircularDTO(c)
	}
	return dtos
}

// StudentDashboardResponse is the student landing view
type StudentDashboardResponse struct {
	MyIssues     []IssueDTO    `json:"my_issues"`
	PublicIssues []IssueDTO    `json:"public_issues"`
	Roommates    []UserDTO     `json:"roommates"`
	Circulars    []CircularDTO `json:"circulars"`
}

// WorkerDashboardResponse is the worker task view
type WorkerDashboardResponse struct {
	Worker   UserDTO    `json:"worker"`
	Tasks    []IssueDTO `json:"tasks"`
	Workload int        `json:"workload"`
}

// AdminDashboardResponse is the management overview
type AdminDashboardResponse struct {
	Workers       []UserDTO  `json:"workers"`
	Issues        []IssueDTO `json:"issues"`
	IssuesTotal   int64      `json:"issues_total"`
	PendingCount  int64      `json:"pending_count"`
	ResolvedCount int64      `json:"resolved_count"`
	Overdue       []IssueDTO `json:"overdue"`
}

// ToStudentDashboardResponse converts the service aggregate
func ToStudentDashboardResponse(d *services.StudentDashboard) StudentDashboardResponse {
	return StudentDashboardResponse{
		MyIssues:     ToIssueDTOs(d.MyIssues),
		PublicIssues: ToIssueDTOs(d.PublicIssues),
		Roommates:    ToUserDTOs(d.Roommates),
		Circulars:    ToCircularDTOs(d.Circulars),
	}
}

// ToWorkerDashboardResponse converts the service aggregate
func ToWorkerDashboardResponse(d *services.WorkerDashboard) WorkerDashboardResponse {
	return WorkerDashboardResponse{
		Worker:   ToUserDTO(*d.Worker),
		Tasks:    ToIssueDTOs(d.Tasks),
		Workload: d.Workload,
	}
}

// ToAdminDashboardResponse converts the service aggregate
func ToAdminDashboardResponse(d *services.AdminDashboard) AdminDashboardResponse {
	return AdminDashboardResponse{
		Workers:       ToUserDTOs(d.Workers),
		Issues:        ToIssueDTOs(d.Issues),
		IssuesTotal:   d.IssuesTotal,
		PendingCount:  d.PendingCount,
		ResolvedCount: d.ResolvedCount,
		Overdue:       ToIssueDTOs(d.Overdue),
	}
}
