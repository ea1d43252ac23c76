package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Title        string    `db:"title" json:"title" validate:"required"`
	Slug         string    `db:"slug" json:"slug" validate:"required"`
	Description  string    `db:"description" json:"description" validate:"required"`
	Content      string    `db:"content" json:"content"`
	Technologies []string  `db:"technologies" json:"technologies"`
	Image        string    `db:"image" json:"image" validate:"required"`
	DemoURL      *string   `db:"demo_url" json:"demoUrl,omitempty" validate:"omitempty,url"`
	GithubURL    *string   `db:"github_url" json:"githubUrl,omitempty" validate:"omitempty,url"`
	Featured     bool      `db:"featured" json:"featured"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

type ProjectFilter struct {
	Featured *bool
	Limit    uint64
}
