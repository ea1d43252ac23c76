package repository

import (
	"context"
	"time"

	"portfolio/internal/domain/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	UserExists(ctx context.Context, username, email string) (bool, error)
	UserByIdentifier(ctx context.Context, identifier string) (models.User, error)
	GetUserById(ctx context.Context, userID uuid.UUID) (models.User, error)
	SetRole(ctx context.Context, userID uuid.UUID, role string) error
}

type BlogRepository interface {
	SaveBlogPost(ctx context.Context, post models.BlogPost) (uuid.UUID, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	GetBlogPosts(ctx context.Context, filter models.BlogPostFilter) ([]models.BlogPost, error)
	UpdateBlogPost(ctx context.Context, post models.BlogPost) error
	UpdateBlogPostFields(ctx context.Context, slug string, updates map[string]interface{}) error
	DeleteBlogPost(ctx context.Context, slug string) error
}

type ProjectRepository interface {
	SaveProject(ctx context.Context, project models.Project) (uuid.UUID, error)
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	GetProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) error
	DeleteProject(ctx context.Context, slug string) error
}

type GalleryRepository interface {
	CreateGalleryItem(ctx context.Context, item models.GalleryItem) (uuid.UUID, error)
	GetGalleryItemByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error)
	GetGalleryItems(ctx context.Context, filter models.GalleryFilter) ([]models.GalleryItem, error)
	UpdateGalleryItem(ctx context.Context, item models.GalleryItem) error
	DeleteGalleryItem(ctx context.Context, id uuid.UUID) error
}

type ContactRepository interface {
	SaveContact(ctx context.Context, contact models.Contact) (uuid.UUID, error)
	GetContactByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	GetContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	SetRead(ctx context.Context, id uuid.UUID, read bool) error
	DeleteContact(ctx context.Context, id uuid.UUID) error
}

// AttemptRepository counts failed sign-in attempts per key within a window.
type AttemptRepository interface {
	Attempts(ctx context.Context, key string) (int, error)
	RecordAttempt(ctx context.Context, key string, window time.Duration) (int, error)
	ResetAttempts(ctx context.Context, key string) error
}
