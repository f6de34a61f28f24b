package models

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Role      string    `json:"role" gorm:"size:50"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Status    string    `json:"status" gorm:"size:1"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
