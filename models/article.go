package models

import "time"

type Article struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description" gorm:"size:500;not null"`
	Content     string `json:"content" gorm:"type:text"`
	// Remote image reference. Folder and filename are stored next to the
	// public URL so blob cleanup never has to re-derive them from the URL.
	ImageURL    string          `json:"image_url"`
	ImageFolder string          `json:"image_folder"`
	ImageName   string          `json:"image_name"`
	Status      string          `json:"status" gorm:"size:1;not null"`
	PublishedAt time.Time       `json:"published_at"`
	CategoryID  uint            `json:"category_id" gorm:"not null"`
	Category    Category        `json:"category" gorm:"foreignKey:CategoryID"`
	Authors     []ArticleAuthor `json:"authors,omitempty" gorm:"foreignKey:ArticleID"`
	Tags        []ArticleTag    `json:"tags,omitempty" gorm:"foreignKey:ArticleID"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
