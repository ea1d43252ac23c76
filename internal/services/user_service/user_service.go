package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
	"portfolio/internal/transport/http/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	log  *slog.Logger
	repo repository.UserRepository
}

func NewUserService(log *slog.Logger, repo repository.UserRepository) *UserService {
	return &UserService{log: log, repo: repo}
}

func (s *UserService) GetUserById(ctx context.Context, userID uuid.UUID) (models.User, error) {
	const op = "user_service.GetUserById"

	user, err := s.repo.GetUserById(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%s: %w: %w", op, ErrUserNotFound, err)
		}
		s.log.Error("failed to get user", slog.String("op", op), sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// CreateAdmin promotes the user matching the username (or, failing that, the
// email) to admin, or creates a new admin account. The password is only used
// when a user is created. created reports which of the two happened.
func (s *UserService) CreateAdmin(ctx context.Context, input dto.CreateAdminInput) (user models.User, created bool, err error) {
	const op = "user_service.CreateAdmin"

	log := s.log.With(
		slog.String("op", op),
		slog.String("username", input.Username),
	)

	for _, identifier := range []string{input.Username, input.Email} {
		existing, err := s.repo.UserByIdentifier(ctx, identifier)
		if errors.Is(err, storage.ErrUserNotFound) {
			continue
		}
		if err != nil {
			log.Error("failed to look up user", sl.Err(err))

			return models.User{}, false, fmt.Errorf("%s: %w", op, err)
		}

		if err := s.repo.SetRole(ctx, existing.ID, models.RoleAdmin); err != nil {
			log.Error("failed to promote user", sl.Err(err))

			return models.User{}, false, fmt.Errorf("%s: %w", op, err)
		}

		existing.Role = models.RoleAdmin
		log.Info("user promoted to admin", slog.String("user_id", existing.ID.String()))

		return existing, false, nil
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))

		return models.User{}, false, fmt.Errorf("%s: %w", op, err)
	}

	user = models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  passHash,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.SaveUser(ctx, user)
	if err != nil {
		log.Error("failed to save user", sl.Err(err))

		return models.User{}, false, fmt.Errorf("%s: %w", op, err)
	}

	user.ID = id
	log.Info("admin created", slog.String("user_id", id.String()))

	return user, true, nil
}
