package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a message left through the public contact form.
type Contact struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name" validate:"required"`
	Email     string    `db:"email" json:"email" validate:"required,email"`
	Subject   string    `db:"subject" json:"subject" validate:"required"`
	Message   string    `db:"message" json:"message" validate:"required"`
	Read      bool      `db:"read" json:"read"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type ContactFilter struct {
	Read  *bool
	Limit uint64
}
