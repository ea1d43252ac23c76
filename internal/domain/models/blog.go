package models

import (
	"time"

	"github.com/google/uuid"
)

type BlogPost struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Title      string    `db:"title" json:"title" validate:"required"`
	Slug       string    `db:"slug" json:"slug" validate:"required"`
	Excerpt    string    `db:"excerpt" json:"excerpt" validate:"required"`
	Content    string    `db:"content" json:"content" validate:"required"`
	CoverImage string    `db:"cover_image" json:"coverImage" validate:"required"`
	Category   string    `db:"category" json:"category" validate:"required"`
	Tags       []string  `db:"tags" json:"tags"`
	Featured   bool      `db:"featured" json:"featured"`
	Published  bool      `db:"published" json:"published"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// BlogPostFilter narrows a blog post listing. Nil fields are not applied.
type BlogPostFilter struct {
	Category  string
	Tag       string
	Published *bool
	Featured  *bool
	Limit     uint64
}
