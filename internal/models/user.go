package models

import "time"

type Role string

const (
	RoleStudent    Role = "Student"
	RoleWorker     Role = "Worker"
	RoleManagement Role = "Management"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	RoomNumber   string    `gorm:"type:varchar(10);index" json:"room_number,omitempty"`
	Specialty    string    `gorm:"type:varchar(50);index" json:"specialty,omitempty"`
	TaskCount    int       `gorm:"not null;default:0" json:"task_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	ReportedIssues []Issue     `gorm:"foreignKey:StudentID" json:"-"`
	AssignedIssues []Issue     `gorm:"foreignKey:WorkerID" json:"-"`
	LostFoundPosts []LostFound `gorm:"foreignKey:UserID" json:"-"`
}
