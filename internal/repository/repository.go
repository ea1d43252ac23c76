package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/storage"
	"portfolio/internal/storage/postgresql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db      *pgxpool.Pool
	User    UserRepository
	Blog    BlogRepository
	Project ProjectRepository
	Gallery GalleryRepository
	Contact ContactRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := postgresql.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return FromPool(db), nil
}

func FromPool(db *pgxpool.Pool) *Repository {
	return &Repository{
		db:      db,
		User:    NewUserRepository(db),
		Blog:    NewBlogRepository(db),
		Project: NewProjectRepository(db),
		Gallery: NewGalleryRepository(db),
		Contact: NewContactRepository(db),
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *Repository) Close() {
	r.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func statementBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// notFound converts pgx.ErrNoRows into storage.ErrNotFound.
func notFound(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// conflict converts a unique violation into storage.ErrAlreadyExists, keeping the column name.
func conflict(op string, err error) error {
	if field, ok := postgresql.UniqueViolation(err); ok {
		return &ConflictError{Field: field, Err: fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ConflictError wraps storage.ErrAlreadyExists with the offending column.
type ConflictError struct {
	Field string
	Err   error
}

func (e *ConflictError) Error() string {
	return e.Err.Error() + " (" + e.Field + ")"
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ConflictField reports the column behind a unique violation returned by a repository.
func ConflictField(err error) (string, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Field, true
	}
	return "", false
}
