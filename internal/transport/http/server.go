package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/lib/logger/sl"
	"nativeblog/internal/lib/timeutil"
	"nativeblog/internal/storage"
	"nativeblog/internal/transport/http/dto"
	"nativeblog/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64, withHTML bool) (models.Post, error)
	PopularPosts(ctx context.Context) ([]models.PopularPost, error)
	RelatedPosts(ctx context.Context, category string, currentID int64) ([]models.Post, error)
	SearchPosts(ctx context.Context, term, category string) ([]models.Post, error)
	IncrementViews(ctx context.Context, id int64) (int, error)
	CreatePost(ctx context.Context, in dto.CreatePostInput) (models.Post, error)
	UpdatePost(ctx context.Context, id int64, in dto.UpdatePostInput) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
	Notifications(ctx context.Context) ([]models.Post, error)
	MarkNotificationRead(ctx context.Context, id int64) error
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	AddCategory(ctx context.Context, name string) (models.Category, error)
}

type CommentService interface {
	PostComments(ctx context.Context, postID int64) ([]models.CommentView, error)
	AddComment(ctx context.Context, userID, postID int64, text string) (models.CommentView, error)
	UpdateComment(ctx context.Context, userID, commentID int64, text string) (models.CommentView, error)
	DeleteComment(ctx context.Context, userID, commentID int64) error
	ModeratorDelete(ctx context.Context, commentID int64) error
	UserComments(ctx context.Context, userID int64) ([]models.UserComment, error)
	Notifications(ctx context.Context) ([]models.CommentNotification, error)
	MarkRead(ctx context.Context, commentID int64) error
	MarkAllRead(ctx context.Context) (int64, error)
}

type LikeService interface {
	LikePost(ctx context.Context, userID, postID int64) (int, error)
	IsLiked(ctx context.Context, userID, postID int64) (bool, error)
	LikedPosts(ctx context.Context, userID int64) ([]models.Post, error)
}

type UserService interface {
	Signup(ctx context.Context, input dto.SignupRequest) (dto.AuthResponse, error)
	Signin(ctx context.Context, identifier, password string) (dto.AuthResponse, error)
	UpdatePassword(ctx context.Context, id int64, current, next string) error
	Profile(ctx context.Context, id int64) (models.User, error)
	UpdateProfile(ctx context.Context, id int64, username string, profileImage *string) error
}

type AccountService interface {
	Login(ctx context.Context, username, password string) (models.Backuser, *models.TokenPair, error)
	Profile(ctx context.Context, id int64) (models.Backuser, error)
	UpdateProfile(ctx context.Context, b models.Backuser) error
	UpdatePassword(ctx context.Context, id int64, current, next string) error
}

type AuthService interface {
	RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

type UploadService interface {
	UploadImage(ctx context.Context, kind string, src io.Reader) (*models.Upload, error)
	Remove(ctx context.Context, path string)
}

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Routers struct {
	log             *slog.Logger
	PostService     PostService
	CategoryService CategoryService
	CommentService  CommentService
	LikeService     LikeService
	UserService     UserService
	AccountService  AccountService
	AuthService     AuthService
	UploadService   UploadService
	Checker         HealthChecker
}

type Services struct {
	Posts      PostService
	Categories CategoryService
	Comments   CommentService
	Likes      LikeService
	Users      UserService
	Accounts   AccountService
	Auth       AuthService
	Uploads    UploadService
	Health     HealthChecker
}

func NewRouter(log *slog.Logger, s Services) *Routers {
	return &Routers{
		log:             log,
		PostService:     s.Posts,
		CategoryService: s.Categories,
		CommentService:  s.Comments,
		LikeService:     s.Likes,
		UserService:     s.Users,
		AccountService:  s.Accounts,
		AuthService:     s.Auth,
		UploadService:   s.Uploads,
		Checker:         s.Health,
	}
}

var errInvalidID = errors.New("invalid id")

// serviceError maps storage and parsing sentinels to a status and the error
// body clients expect. Anything unknown is logged and reported as 500.
func serviceError(c echo.Context, log *slog.Logger, err error) error {
	switch {
	case errors.Is(err, storage.ErrPostNotFound):
		return c.JSON(http.StatusNotFound, response.ErrPostNotFound)
	case errors.Is(err, storage.ErrCommentNotFound):
		return c.JSON(http.StatusNotFound, response.ErrCommentNotFound)
	case errors.Is(err, storage.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, response.ErrUserNotFound)
	case errors.Is(err, storage.ErrCategoryExists):
		return c.JSON(http.StatusConflict, response.ErrCategoryExists)
	case errors.Is(err, storage.ErrAlreadyLiked):
		return c.JSON(http.StatusBadRequest, response.ErrAlreadyLiked)
	case errors.Is(err, storage.ErrFileTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
	case errors.Is(err, storage.ErrInvalidFileType):
		return c.JSON(http.StatusUnsupportedMediaType, response.ErrUnsupportedFile)
	case errors.Is(err, timeutil.ErrInvalidTime):
		return c.JSON(http.StatusBadRequest, response.ErrInvalidTime)
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		return c.JSON(http.StatusBadRequest, response.ErrPasswordTooLong)
	}

	var uploadErr *models.UploadValidationError
	if errors.As(err, &uploadErr) {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("Invalid upload", uploadErr.Error()))
	}

	log.Error("request failed", sl.Err(err))

	return c.JSON(http.StatusInternalServerError, response.ErrInternal)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}

	return id, nil
}

func numberID(n json.Number) (int64, error) {
	return parseID(n.String())
}
