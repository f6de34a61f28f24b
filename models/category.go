package models

import "time"

type Category struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	SectionID uint      `json:"section_id" gorm:"not null"`
	Section   Section   `json:"section" gorm:"foreignKey:SectionID"`
	Articles  []Article `json:"articles,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
