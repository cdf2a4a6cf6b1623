package models

import "time"

// Circular is an announcement posted by management. Rows are
// append-only and never updated.
type Circular struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Title      string    `gorm:"type:varchar(100);not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	DatePosted time.Time `gorm:"autoCreateTime" json:"date_posted"`
}
