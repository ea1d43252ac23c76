package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"portfolio/internal/lib/validator"
	mw "portfolio/internal/middleware"
	httprouters "portfolio/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validator
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Options struct {
	Host string
	Port string
	// TrustedProxies lists the CIDRs allowed to set X-Forwarded-For.
	TrustedProxies []string
	SessionSecret  string
	// StaticDir is served under StaticURL, usually the upload root.
	StaticDir string
	StaticURL string
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	host    string
	port    string
	opts    Options
}

func New(log *slog.Logger, opts Options, tokens mw.TokenParser, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = &CustomValidator{validator: validator.New()}
	e.IPExtractor = ipExtractor(log, opts.TrustedProxies)

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(opts.SessionSecret))))
	e.Use(mw.Session(log, tokens))
	e.Use(mw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogMethod:   true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		host:    opts.Host,
		port:    opts.Port,
		opts:    opts,
	}
}

// ipExtractor decides what c.RealIP() returns. Forwarding headers are only
// believed when they come from a configured proxy.
func ipExtractor(log *slog.Logger, proxies []string) echo.IPExtractor {
	if len(proxies) == 0 {
		return echo.ExtractIPDirect()
	}

	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range proxies {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			log.Warn("ignoring trusted proxy", slog.String("cidr", cidr), slog.String("error", err.Error()))
			continue
		}
		opts = append(opts, echo.TrustIPRange(ipNet))
	}

	return echo.ExtractIPFromXFFHeader(opts...)
}

// ServeHTTP lets tests drive the server without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"), slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(s.addr()); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) addr() string {
	return net.JoinHostPort(s.host, s.port)
}

func (s *Server) BuildRouters() {
	s.e.GET("/", s.routers.Home)
	s.e.GET("/blog/:slug", s.routers.BlogPostPage)

	if s.opts.StaticDir != "" {
		s.e.Static(s.opts.StaticURL, s.opts.StaticDir)
	}

	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	s.e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := s.e.Group("/api")
	{
		api.POST("/sign-up", s.routers.SignUp)
		api.POST("/upload", s.routers.Upload)
		api.GET("/users/:id", s.routers.GetUser)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/sign-in", s.routers.SignIn)
			authGroup.POST("/sign-out", s.routers.SignOut)
			authGroup.GET("/session", s.routers.CurrentSession)
		}

		blog := api.Group("/blog")
		{
			blog.GET("", s.routers.ListBlogPosts)
			blog.POST("", s.routers.CreateBlogPost)
			blog.GET("/:slug", s.routers.GetBlogPost)
			blog.PUT("/:slug", s.routers.UpdateBlogPost)
			blog.PATCH("/:slug", s.routers.PublishBlogPost)
			blog.DELETE("/:slug", s.routers.DeleteBlogPost)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", s.routers.ListProjects)
			projects.POST("", s.routers.CreateProject)
			projects.GET("/:slug", s.routers.GetProject)
			projects.PUT("/:slug", s.routers.UpdateProject)
			projects.DELETE("/:slug", s.routers.DeleteProject)
		}

		gallery := api.Group("/gallery")
		{
			gallery.GET("", s.routers.ListGalleryItems)
			gallery.POST("", s.routers.CreateGalleryItem)
			gallery.GET("/:id", s.routers.GetGalleryItem)
			gallery.PUT("/:id", s.routers.UpdateGalleryItem)
			gallery.DELETE("/:id", s.routers.DeleteGalleryItem)
		}

		contact := api.Group("/contact")
		{
			contact.GET("", s.routers.ListContacts)
			contact.POST("", s.routers.SubmitContact)
			contact.GET("/:id", s.routers.GetContact)
			contact.PATCH("/:id", s.routers.MarkContact)
			contact.DELETE("/:id", s.routers.DeleteContact)
		}
	}

	s.e.POST("/admin/logout", s.routers.AdminLogout)

	adminGroup := s.e.Group("/admin", mw.AdminPage)
	{
		adminGroup.GET("/dashboard", s.routers.AdminDashboard)
		adminGroup.GET("/panels/:panel", s.routers.AdminPanel)
	}
}
