package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	_ "nativeblog/docs"
	appmw "nativeblog/internal/middleware"
	httprouters "nativeblog/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Options struct {
	Host          string
	Port          string
	Timeout       time.Duration
	IdleTimeout   time.Duration
	JWTSecret     string
	SessionSecret string
	// UploadsDir is served under UploadsURL when set.
	UploadsDir string
	UploadsURL string
	RateRPS    float64
	RateBurst  int
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	opts    Options
}

func New(log *slog.Logger, opts Options, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = &CustomValidator{validator: validator.New()}

	e.Server.ReadTimeout = opts.Timeout
	e.Server.WriteTimeout = opts.Timeout
	e.Server.IdleTimeout = opts.IdleTimeout

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(opts.SessionSecret))))
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
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
		opts:    opts,
	}
}

// Echo exposes the configured instance, mainly for tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
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
	return net.JoinHostPort(s.opts.Host, s.opts.Port)
}

func (s *Server) BuildRouters() {
	r := s.routers

	s.e.GET("/health", r.Health)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.e.GET("/swagger/*", echoSwagger.WrapHandler)

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	if s.opts.UploadsDir != "" && s.opts.UploadsURL != "" {
		s.e.Static(s.opts.UploadsURL, s.opts.UploadsDir)
	}

	limited := appmw.RateLimit(s.opts.RateRPS, s.opts.RateBurst)
	userAuth := appmw.JWTAuth(s.opts.JWTSecret)
	adminOnly := appmw.AdminOnly(s.opts.JWTSecret)

	api := s.e.Group("/api")
	{
		api.GET("/get-posts", r.GetPosts)
		api.GET("/get-posts/:id", r.GetPost)
		api.GET("/popular-posts", r.PopularPosts)
		api.GET("/related-posts/:category/:currentPostId", r.RelatedPosts)
		api.GET("/search-posts", r.SearchPosts)
		api.PUT("/increment-views/:id", r.IncrementViews)
		api.GET("/categories", r.GetCategories)
		api.GET("/posts/:postId/comments", r.GetComments)

		api.POST("/refresh", r.Refresh)
		api.POST("/login", r.Login, limited)
		api.POST("/upload-avatar", r.UploadAvatar)
	}

	userGroup := api.Group("/user")
	{
		userGroup.POST("/signup", r.Signup, limited)
		userGroup.POST("/signin", r.Signin, limited)
		userGroup.POST("/update-password", r.UpdateUserPassword)
		userGroup.GET("/get-profile", r.GetUserProfile)
		userGroup.GET("/comments", r.UserComments)
		userGroup.GET("/liked-posts", r.LikedPosts)
		userGroup.POST("/update-profile", r.UpdateUserProfile, userAuth)
	}

	// Auth is attached per route: a group with middleware catches every
	// unmatched path under its prefix.
	api.POST("/posts/:postId/comments", r.AddComment, userAuth)
	api.PUT("/comments/:commentId", r.UpdateComment, userAuth)
	api.DELETE("/comments/:commentId", r.DeleteComment, userAuth)
	api.POST("/posts/:postId/like", r.LikePost, userAuth)
	api.GET("/posts/:postId/isLiked", r.IsLiked, userAuth)

	api.POST("/add-post", r.AddPost, adminOnly)
	api.PUT("/update-post", r.UpdatePost, adminOnly)
	api.DELETE("/delete-post", r.DeletePost, adminOnly)
	api.GET("/notifications", r.Notifications, adminOnly)
	api.POST("/mark-notification-read", r.MarkNotificationRead, adminOnly)
	api.POST("/mark-notification-read/:id", r.MarkNotificationRead, adminOnly)
	api.POST("/add-category", r.AddCategory, adminOnly)
	api.GET("/get-profile", r.GetAdminProfile, adminOnly)
	api.POST("/update-profile", r.UpdateAdminProfile, adminOnly)
	api.POST("/update-password", r.UpdateAdminPassword, adminOnly)

	moderation := api.Group("/admin")
	{
		moderation.GET("/comment-notifications", r.CommentNotifications, adminOnly)
		moderation.POST("/mark-comment-read/:commentId", r.MarkCommentRead, adminOnly)
		moderation.POST("/mark-all-comments-read", r.MarkAllCommentsRead, adminOnly)
		moderation.DELETE("/comments/:commentId", r.ModerateComment, adminOnly)
	}
}
