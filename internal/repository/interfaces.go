package repository

import (
	"context"
	"time"

	"nativeblog/internal/domain/models"
)

type PostRepository interface {
	SavePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPostByID(ctx context.Context, id int64) (models.Post, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	PopularPosts(ctx context.Context, limit uint64) ([]models.Post, error)
	IncrementViews(ctx context.Context, id int64) (int, error)
	UpdatePost(ctx context.Context, upd models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
	Notifications(ctx context.Context, now time.Time, limit uint64) ([]models.Post, error)
	MarkRead(ctx context.Context, id int64) (bool, error)
}

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	SaveCategory(ctx context.Context, name string) (models.Category, error)
}

type CommentRepository interface {
	CommentsByPost(ctx context.Context, postID int64) ([]models.CommentView, error)
	SaveComment(ctx context.Context, comment models.Comment) (models.CommentView, error)
	GetComment(ctx context.Context, id int64) (models.Comment, error)
	UpdateComment(ctx context.Context, id int64, text string) (models.CommentView, error)
	DeleteComment(ctx context.Context, id int64) error
	CommentsByUser(ctx context.Context, userID int64) ([]models.UserComment, error)
	UnreadComments(ctx context.Context, limit uint64) ([]models.CommentNotification, error)
	MarkCommentRead(ctx context.Context, id int64) (bool, error)
	MarkAllCommentsRead(ctx context.Context) (int64, error)
}

type LikeRepository interface {
	LikePost(ctx context.Context, userID, postID int64) (int, error)
	IsLiked(ctx context.Context, userID, postID int64) (bool, error)
	LikedPosts(ctx context.Context, userID int64) ([]models.Post, error)
}

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (int64, error)
	UserExists(ctx context.Context, username, email string) (bool, error)
	UserByIdentifier(ctx context.Context, identifier string) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	UpdatePassword(ctx context.Context, id int64, hash []byte) error
	UpdateProfile(ctx context.Context, id int64, username string, profileImage *string) error
}

type BackuserRepository interface {
	BackuserByUsername(ctx context.Context, username string) (models.Backuser, error)
	BackuserByID(ctx context.Context, id int64) (models.Backuser, error)
	SaveBackuser(ctx context.Context, b models.Backuser) (int64, error)
	CountBackusers(ctx context.Context) (int64, error)
	UpdateBackuserProfile(ctx context.Context, b models.Backuser) error
	UpdateBackuserPassword(ctx context.Context, id int64, hash []byte) error
}

type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, subject, token string, exp time.Duration) error
	GetRefreshToken(ctx context.Context, subject, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, subject, token string) error
	DeleteAllUserTokens(ctx context.Context, subject string) error
}
