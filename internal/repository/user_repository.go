package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/domain/models"
	"portfolio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type UserRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *UserRepo) SaveUser(ctx context.Context, user models.User) (uuid.UUID, error) {
	const op = "repository.user_repository.SaveUser"

	query, args, err := r.sb.Insert("users").
		Columns(
			"username",
			"email",
			"password",
			"role",
			"created_at",
		).
		Values(
			user.Username,
			user.Email,
			user.Password,
			user.Role,
			user.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, conflict(op, err)
	}

	return id, nil
}

// UserExists checks username and email in one query.
func (r *UserRepo) UserExists(ctx context.Context, username, email string) (bool, error) {
	const op = "repository.user_repository.UserExists"

	query, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS (").
		From("users").
		Where(sq.Or{sq.Eq{"username": username}, sq.Eq{"email": email}}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// UserByIdentifier looks a user up by username or email.
func (r *UserRepo) UserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	const op = "repository.user_repository.UserByIdentifier"

	return r.user(ctx, op, sq.Or{sq.Eq{"username": identifier}, sq.Eq{"email": identifier}})
}

func (r *UserRepo) GetUserById(ctx context.Context, userID uuid.UUID) (models.User, error) {
	const op = "repository.user_repository.GetUserById"

	return r.user(ctx, op, sq.Eq{"id": userID})
}

func (r *UserRepo) SetRole(ctx context.Context, userID uuid.UUID, role string) error {
	const op = "repository.user_repository.SetRole"

	query, args, err := r.sb.Update("users").
		Set("role", role).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	return nil
}

func (r *UserRepo) user(ctx context.Context, op string, where sq.Sqlizer) (models.User, error) {
	query, args, err := r.sb.Select("id", "username", "email", "password", "role", "created_at").
		From("users").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var user models.User
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
