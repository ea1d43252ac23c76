package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/metrics"
	"portfolio/internal/repository"
	"portfolio/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const DefaultRedirect = "/admin/dashboard"

type Auth struct {
	log         *slog.Logger
	usrSaver    UserSaver
	usrProvider UserProvider
	tokens      TokenIssuer
	attempts    repository.AttemptRepository
	limit       Limit
}

type UserSaver interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	UserExists(ctx context.Context, username, email string) (bool, error)
}

type UserProvider interface {
	UserByIdentifier(ctx context.Context, identifier string) (models.User, error)
}

type TokenIssuer interface {
	GenerateToken(user models.User) (string, error)
	ParseToken(token string) (*models.Session, error)
}

// Limit bounds failed sign-in attempts per client within Window.
type Limit struct {
	MaxAttempts int
	Window      time.Duration
}

func New(
	log *slog.Logger,
	userSaver UserSaver,
	userProvider UserProvider,
	tokens TokenIssuer,
	attempts repository.AttemptRepository,
	limit Limit,
) *Auth {
	return &Auth{
		log:         log,
		usrSaver:    userSaver,
		usrProvider: userProvider,
		tokens:      tokens,
		attempts:    attempts,
		limit:       limit,
	}
}

// SignIn checks the credentials of a username or email. clientKey identifies
// the caller for throttling, usually the remote IP. Passwords are never logged.
func (a *Auth) SignIn(ctx context.Context, identifier, password, clientKey string) (*models.SignInResult, error) {
	const op = "auth.SignIn"

	log := a.log.With(
		slog.String("op", op),
		slog.String("client", clientKey),
	)

	log.Info("attempting to sign in user")

	if a.blocked(ctx, log, clientKey) {
		log.Warn("sign-in throttled")
		metrics.SignInFailures.Inc()

		return nil, fmt.Errorf("%s: %w", op, models.ErrTooManyAttempts)
	}

	user, err := a.usrProvider.UserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Info("user not found")
			a.recordFailure(ctx, log, clientKey)

			return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
		}
		log.Error("failed to get user", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		log.Info("invalid credentials")
		a.recordFailure(ctx, log, clientKey)

		return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	token, err := a.tokens.GenerateToken(user)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	session, err := a.tokens.ParseToken(token)
	if err != nil {
		log.Error("issued token does not parse", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if a.attempts != nil {
		if err := a.attempts.ResetAttempts(ctx, clientKey); err != nil {
			log.Warn("failed to reset attempts", sl.Err(err))
		}
	}

	log.Info("user signed in", slog.String("user_id", user.ID.String()))

	return &models.SignInResult{
		Token:    token,
		Session:  *session,
		Redirect: DefaultRedirect,
	}, nil
}

// SignUp registers a user with role user. It never signs the user in.
func (a *Auth) SignUp(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	const op = "auth.SignUp"

	log := a.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	log.Info("register user")

	exists, err := a.usrSaver.UserExists(ctx, username, email)
	if err != nil {
		log.Error("failed to check user", sl.Err(err))

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		log.Warn("user already exist")

		return uuid.Nil, fmt.Errorf("%s: %w", op, models.ErrUserExists)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := a.usrSaver.SaveUser(ctx, models.User{
		Username:  username,
		Email:     email,
		Password:  passHash,
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			log.Warn("user already exist", sl.Err(err))

			return uuid.Nil, fmt.Errorf("%s: %w", op, models.ErrUserExists)
		}

		log.Error("failed to save user", sl.Err(err))

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.String("user_id", id.String()))

	return id, nil
}

// blocked fails open: a broken counter store must not lock everyone out.
func (a *Auth) blocked(ctx context.Context, log *slog.Logger, clientKey string) bool {
	if a.attempts == nil || a.limit.MaxAttempts <= 0 {
		return false
	}

	n, err := a.attempts.Attempts(ctx, clientKey)
	if err != nil {
		log.Warn("failed to read attempts", sl.Err(err))
		return false
	}

	return n >= a.limit.MaxAttempts
}

func (a *Auth) recordFailure(ctx context.Context, log *slog.Logger, clientKey string) {
	metrics.SignInFailures.Inc()

	if a.attempts == nil {
		return
	}

	if _, err := a.attempts.RecordAttempt(ctx, clientKey, a.limit.Window); err != nil {
		log.Warn("failed to record attempt", sl.Err(err))
	}
}
