package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryItem is a single image shown on the public gallery page.
type GalleryItem struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title" validate:"required"`
	ImageURL  string    `db:"image_url" json:"imageUrl" validate:"required"`
	Caption   string    `db:"caption" json:"caption"`
	Category  string    `db:"category" json:"category"`
	Featured  bool      `db:"featured" json:"featured"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type GalleryFilter struct {
	Category string
	Featured *bool
	Limit    uint64
}
