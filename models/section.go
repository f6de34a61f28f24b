package models

import "time"

type Section struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	Name       string     `json:"name" gorm:"size:100;not null"`
	Categories []Category `json:"categories,omitempty" gorm:"foreignKey:SectionID"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
