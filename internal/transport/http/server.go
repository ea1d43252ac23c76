package http

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"portfolio/internal/admin"
	"portfolio/internal/authz"
	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/middleware"
	"portfolio/internal/storage"
	"portfolio/internal/transport/http/dto"
	"portfolio/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	_ "portfolio/docs"
)

type BlogService interface {
	ListPosts(ctx context.Context, filter models.BlogPostFilter, includeUnpublished bool) ([]models.BlogPost, error)
	GetPost(ctx context.Context, slug string, includeUnpublished bool) (*models.BlogPost, error)
	CreatePost(ctx context.Context, req dto.CreateBlogPostRequest) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, slug string, req dto.UpdateBlogPostRequest) (*models.BlogPost, error)
	SetPublished(ctx context.Context, slug string, published bool) (*models.BlogPost, error)
	DeletePost(ctx context.Context, slug string) error
}

type ProjectService interface {
	ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	GetProject(ctx context.Context, slug string) (*models.Project, error)
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, slug string, req dto.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, slug string) error
}

type GalleryService interface {
	ListGalleryItems(ctx context.Context, filter models.GalleryFilter) ([]models.GalleryItem, error)
	GetGalleryItem(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, req dto.CreateGalleryItemRequest) (*models.GalleryItem, error)
	UpdateGalleryItem(ctx context.Context, id uuid.UUID, req dto.UpdateGalleryItemRequest) (*models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id uuid.UUID) error
}

type ContactService interface {
	Submit(ctx context.Context, req dto.CreateContactRequest) (*models.Contact, error)
	ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	GetContact(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	MarkRead(ctx context.Context, id uuid.UUID, read bool) (*models.Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error
}

type MediaService interface {
	Upload(ctx context.Context, input dto.UploadInput) (*models.Upload, error)
}

type AuthService interface {
	SignIn(ctx context.Context, identifier, password, clientKey string) (*models.SignInResult, error)
	SignUp(ctx context.Context, username, email, password string) (uuid.UUID, error)
}

type UserService interface {
	GetUserById(ctx context.Context, userID uuid.UUID) (models.User, error)
}

type Dashboard interface {
	Overview(ctx context.Context, session models.Session) (*admin.Overview, error)
	Panel(ctx context.Context, panel admin.Panel, q string, page int) (*admin.PanelView, error)
}

// Services groups everything the routers call.
type Services struct {
	Blog      BlogService
	Projects  ProjectService
	Gallery   GalleryService
	Contact   ContactService
	Media     MediaService
	Auth      AuthService
	Users     UserService
	Dashboard Dashboard
}

type Routers struct {
	log            *slog.Logger
	BlogService    BlogService
	ProjectService ProjectService
	GalleryService GalleryService
	ContactService ContactService
	MediaService   MediaService
	AuthService    AuthService
	UserService    UserService
	Dashboard      Dashboard
	sessionTTL     time.Duration
	secureCookie   bool
}

func NewRouter(log *slog.Logger, svc Services, sessionTTL time.Duration, secureCookie bool) *Routers {
	return &Routers{
		log:            log,
		BlogService:    svc.Blog,
		ProjectService: svc.Projects,
		GalleryService: svc.Gallery,
		ContactService: svc.Contact,
		MediaService:   svc.Media,
		AuthService:    svc.Auth,
		UserService:    svc.Users,
		Dashboard:      svc.Dashboard,
		sessionTTL:     sessionTTL,
		secureCookie:   secureCookie,
	}
}

// resource carries the per-resource messages of the error envelope.
type resource struct {
	notFound     string
	deleted      string
	slugLocked   string
	duplicateMsg string
}

var (
	blogResource = resource{
		notFound:     "Blog post not found",
		deleted:      "Blog post deleted successfully",
		slugLocked:   response.MsgBlogSlugImmutable,
		duplicateMsg: response.MsgDuplicateBlogSlug,
	}
	projectResource = resource{
		notFound:   "Project not found",
		deleted:    "Project deleted successfully",
		slugLocked: response.MsgProjectSlugLocked,
	}
	galleryResource = resource{
		notFound: "Gallery item not found",
		deleted:  "Gallery item deleted successfully",
	}
	contactResource = resource{
		notFound: "Contact not found",
		deleted:  "Contact deleted successfully",
	}
	userResource = resource{
		notFound: "User not found",
	}
	noResource = resource{}
)

// fail maps err onto the JSON error envelope. Anything unexpected becomes a
// 500 and only the log sees the detail.
func (r *Routers) fail(c echo.Context, log *slog.Logger, res resource, err error) error {
	var ve *models.ValidationError

	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, response.Validation(response.MsgValidation, ve.Fields))
	case errors.Is(err, models.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrUserNotFound):
		msg := res.notFound
		if msg == "" {
			msg = "Not found"
		}
		return c.JSON(http.StatusNotFound, response.Error(msg))
	case errors.Is(err, models.ErrDuplicateSlug):
		msg := res.duplicateMsg
		if msg == "" {
			msg = response.MsgDuplicateBlogSlug
		}
		return c.JSON(http.StatusBadRequest, response.Error(msg))
	case errors.Is(err, models.ErrSlugImmutable):
		return c.JSON(http.StatusBadRequest, response.Error(res.slugLocked))
	case errors.Is(err, models.ErrNoFile):
		return c.JSON(http.StatusBadRequest, response.ErrNoFile)
	case errors.Is(err, models.ErrUserExists):
		return c.JSON(http.StatusBadRequest, response.ErrUserAlreadyExists)
	case errors.Is(err, models.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	case errors.Is(err, models.ErrTooManyAttempts):
		return c.JSON(http.StatusTooManyRequests, response.ErrTooManyAttempts)
	}

	log.Error("request failed", sl.Err(err))

	return c.JSON(http.StatusInternalServerError, response.ErrInternal)
}

// authorize runs the policy before any lookup so a refused caller learns
// nothing about the record.
func (r *Routers) authorize(c echo.Context, res authz.Resource, op authz.Operation) error {
	return authz.Decide(res, op, middleware.CurrentSession(c))
}

func parseID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// queryBool returns nil for absent or malformed values.
func queryBool(c echo.Context, name string) *bool {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// queryLimit returns 0, meaning no limit, for absent, malformed or non-positive values.
func queryLimit(c echo.Context) uint64 {
	n, err := strconv.ParseUint(c.QueryParam("limit"), 10, 64)
	if err != nil || n > math.MaxInt64 {
		return 0
	}
	return n
}

func isAdmin(c echo.Context) bool {
	return middleware.CurrentSession(c).IsAdmin()
}
