package models

import "time"

type IssueStatus string

const (
	IssueStatusReported IssueStatus = "Reported"
	IssueStatusAssigned IssueStatus = "Assigned"
	IssueStatusResolved IssueStatus = "Resolved"
	IssueStatusSolved   IssueStatus = "Solved"
)

type Issue struct {
	ID          uint64      `gorm:"primarykey" json:"id"`
	Title       string      `gorm:"type:varchar(100);not null" json:"title"`
	Category    string      `gorm:"type:varchar(50);not null;index" json:"category"`
	RoomNumber  string      `gorm:"type:varchar(10);index" json:"room_number"`
	Priority    string      `gorm:"type:varchar(20)" json:"priority"`
	Description string      `gorm:"type:text" json:"description"`
	ImagePath   string      `gorm:"type:varchar(200)" json:"image_path,omitempty"`
	IsPublic    bool        `gorm:"not null;default:false" json:"is_public"`
	Status      IssueStatus `gorm:"type:varchar(20);not null;default:'Reported';index" json:"status"`
	StudentID   uint64      `gorm:"not null;index" json:"student_id"`
	WorkerID    *uint64     `gorm:"index" json:"worker_id"`
	AssignedAt  *time.Time  `json:"assigned_at"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Relations
	Student User  `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Worker  *User `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
}
