package models

import "time"

// ArticleAuthor links an article to one of its authors.
type ArticleAuthor struct {
	ArticleID uint      `json:"article_id" gorm:"primaryKey;autoIncrement:false"`
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
}
