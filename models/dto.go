package models

import "time"

// ArticleDTO is the denormalized article view returned by the API: the
// category relation is flattened to its name.
type ArticleDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
	Status      string    `json:"status"`
}

type UserDTO struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// ArticleForm is the multipart payload for article create and update. The
// image file itself travels as a separate form file.
type ArticleForm struct {
	ID          uint   `form:"id"`
	Name        string `form:"name" binding:"required,max=100"`
	Description string `form:"description" binding:"required,max=500"`
	Content     string `form:"content"`
	Status      string `form:"status" binding:"required,len=1"`
	CategoryID  uint   `form:"category_id" binding:"required"`
}

// UserPatchForm carries a partial user update; empty fields leave the
// stored value untouched.
type UserPatchForm struct {
	Name   string `form:"name"`
	Status string `form:"status"`
	Role   string `form:"role"`
	Email  string `form:"email"`
}

type CategoryRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	SectionID uint   `json:"section_id" validate:"required"`
}

type SectionRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type TagRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Status string `json:"status" validate:"required,len=1"`
}
