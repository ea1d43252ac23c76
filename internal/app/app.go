package app

import (
	"context"
	"fmt"
	"log/slog"

	"portfolio/internal/admin"
	httpapp "portfolio/internal/app/http"
	"portfolio/internal/config"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/lib/validator"
	"portfolio/internal/repository"
	"portfolio/internal/services/auth"
	blog "portfolio/internal/services/blog_service"
	contact "portfolio/internal/services/contact_service"
	gallery "portfolio/internal/services/gallery_service"
	media "portfolio/internal/services/media_service"
	project "portfolio/internal/services/project_service"
	token "portfolio/internal/services/token_service"
	user "portfolio/internal/services/user_service"
	filestorage "portfolio/internal/storage/filestorage"
	redisapp "portfolio/internal/storage/redis"
	httprouters "portfolio/internal/transport/http"
)

type App struct {
	HTTPServer  *httpapp.Server
	UserService *user.UserService

	log   *slog.Logger
	repo  *repository.Repository
	redis *redisapp.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	repo, err := repository.NewRepository(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a := &App{log: log, repo: repo}

	attempts := a.attemptStore(ctx, cfg)

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v := validator.New()
	tokens := token.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)

	blogService := blog.NewBlogService(log, repo.Blog, v)
	projectService := project.NewProjectService(log, repo.Project, v)
	galleryService := gallery.NewGalleryService(log, repo.Gallery, v)
	contactService := contact.NewContactService(log, repo.Contact, v)
	mediaService := media.NewMediaService(log, fileStorage)
	userService := user.NewUserService(log, repo.User)

	authService := auth.New(log, repo.User, repo.User, tokens, attempts, auth.Limit{
		MaxAttempts: cfg.SignInLimit.MaxAttempts,
		Window:      cfg.SignInLimit.Window,
	})

	dashboard := admin.NewDashboard(log, blogService, projectService, galleryService, contactService)

	routers := httprouters.NewRouter(log, httprouters.Services{
		Blog:      blogService,
		Projects:  projectService,
		Gallery:   galleryService,
		Contact:   contactService,
		Media:     mediaService,
		Auth:      authService,
		Users:     userService,
		Dashboard: dashboard,
	}, tokens.TTL(), cfg.SecureCookie)

	a.UserService = userService
	a.HTTPServer = httpapp.New(log, httpapp.Options{
		Host:           cfg.HTTP.Host,
		Port:           cfg.HTTP.Port,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		SessionSecret:  cfg.SessionSecret,
		StaticDir:      cfg.FileStorage.BaseDir,
		StaticURL:      cfg.FileStorage.BaseURL,
	}, tokens, routers)

	return a, nil
}

// NewCLI wires only what the create-admin command needs.
func NewCLI(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.NewCLI"

	repo, err := repository.NewRepository(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &App{
		log:         log,
		repo:        repo,
		UserService: user.NewUserService(log, repo.User),
	}, nil
}

// attemptStore picks Redis when configured and reachable at start, the
// in-process cache otherwise.
func (a *App) attemptStore(ctx context.Context, cfg *config.Config) repository.AttemptRepository {
	if cfg.Redis.Addr == "" {
		a.log.Info("sign-in throttle kept in process")
		return repository.NewCacheAttemptRepo(cfg.SignInLimit.Window)
	}

	client := redisapp.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := client.HealthCheck(ctx); err != nil {
		_ = client.Close()
		a.log.Warn("redis unreachable, sign-in throttle kept in process",
			slog.String("addr", cfg.Redis.Addr), sl.Err(err))
		return repository.NewCacheAttemptRepo(cfg.SignInLimit.Window)
	}

	a.redis = client
	a.log.Info("sign-in throttle kept in redis", slog.String("addr", cfg.Redis.Addr))

	return repository.NewRedisAttemptRepo(client)
}

func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("failed to close redis", sl.Err(err))
		}
	}
	if a.repo != nil {
		a.repo.Close()
	}
}
