package models

import "time"

// ArticleTag links an article to a tag. Neither side cascades: link rows
// must be removed before deleting the article or the tag.
type ArticleTag struct {
	ArticleID uint      `json:"article_id" gorm:"primaryKey;autoIncrement:false"`
	TagID     uint      `json:"tag_id" gorm:"primaryKey;autoIncrement:false"`
	Tag       *Tag      `json:"tag,omitempty" gorm:"foreignKey:TagID"`
	CreatedAt time.Time `json:"created_at"`
}
