package models

import "time"

// LostFound is a lost-and-found board entry. Status is free text
// ("Lost", "Found"); there is no state machine on it.
type LostFound struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	ItemName    string    `gorm:"type:varchar(100);not null" json:"item_name"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"type:varchar(100)" json:"location"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Lost'" json:"status"`
	ImagePath   string    `gorm:"type:varchar(200)" json:"image_path,omitempty"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
