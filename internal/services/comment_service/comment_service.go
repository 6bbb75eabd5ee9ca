package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/lib/logger/sl"
	"nativeblog/internal/lib/sanitize"
	"nativeblog/internal/lib/timeutil"
	"nativeblog/internal/metrics"
	"nativeblog/internal/repository"
)

const unreadLimit = 20

var (
	ErrTextRequired = errors.New("comment text is required")
	ErrForbidden    = errors.New("comment belongs to another user")
)

type CommentService struct {
	log   *slog.Logger
	repo  repository.CommentRepository
	clock *timeutil.Clock
}

func NewCommentService(log *slog.Logger, repo repository.CommentRepository, clock *timeutil.Clock) *CommentService {
	return &CommentService{
		log:   log,
		repo:  repo,
		clock: clock,
	}
}

func (s *CommentService) PostComments(ctx context.Context, postID int64) ([]models.CommentView, error) {
	const op = "comment_service.PostComments"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("post_id", postID),
	)

	comments, err := s.repo.CommentsByPost(ctx, postID)
	if err != nil {
		log.Error("failed to list comments", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range comments {
		comments[i].CreatedAt = s.clock.In(comments[i].CreatedAt)
	}

	return comments, nil
}

func (s *CommentService) AddComment(ctx context.Context, userID, postID int64, text string) (models.CommentView, error) {
	const op = "comment_service.AddComment"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("user_id", userID),
		slog.Int64("post_id", postID),
	)

	text = sanitize.Comment(text)
	if text == "" {
		return models.CommentView{}, fmt.Errorf("%s: %w", op, ErrTextRequired)
	}

	view, err := s.repo.SaveComment(ctx, models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	})
	if err != nil {
		log.Warn("failed to add comment", sl.Err(err))
		return models.CommentView{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.CommentsTotal.WithLabelValues("create").Inc()
	log.Info("comment added", slog.Int64("comment_id", view.ID))

	view.CreatedAt = s.clock.In(view.CreatedAt)
	return view, nil
}

// UpdateComment rewrites the text of a comment owned by userID.
func (s *CommentService) UpdateComment(ctx context.Context, userID, commentID int64, text string) (models.CommentView, error) {
	const op = "comment_service.UpdateComment"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("user_id", userID),
		slog.Int64("comment_id", commentID),
	)

	text = sanitize.Comment(text)
	if text == "" {
		return models.CommentView{}, fmt.Errorf("%s: %w", op, ErrTextRequired)
	}

	if err := s.checkOwner(ctx, userID, commentID); err != nil {
		log.Warn("comment update refused", sl.Err(err))
		return models.CommentView{}, fmt.Errorf("%s: %w", op, err)
	}

	view, err := s.repo.UpdateComment(ctx, commentID, text)
	if err != nil {
		log.Error("failed to update comment", sl.Err(err))
		return models.CommentView{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.CommentsTotal.WithLabelValues("update").Inc()

	view.CreatedAt = s.clock.In(view.CreatedAt)
	return view, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID int64) error {
	const op = "comment_service.DeleteComment"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("user_id", userID),
		slog.Int64("comment_id", commentID),
	)

	if err := s.checkOwner(ctx, userID, commentID); err != nil {
		log.Warn("comment delete refused", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteComment(ctx, commentID); err != nil {
		log.Error("failed to delete comment", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	metrics.CommentsTotal.WithLabelValues("delete").Inc()
	log.Info("comment deleted")

	return nil
}

// ModeratorDelete removes any comment regardless of its author.
func (s *CommentService) ModeratorDelete(ctx context.Context, commentID int64) error {
	const op = "comment_service.ModeratorDelete"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("comment_id", commentID),
	)

	if err := s.repo.DeleteComment(ctx, commentID); err != nil {
		log.Warn("failed to delete comment", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	metrics.CommentsTotal.WithLabelValues("moderate").Inc()
	log.Info("comment removed by moderator")

	return nil
}

func (s *CommentService) UserComments(ctx context.Context, userID int64) ([]models.UserComment, error) {
	const op = "comment_service.UserComments"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("user_id", userID),
	)

	comments, err := s.repo.CommentsByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list user comments", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range comments {
		comments[i].CreatedAt = s.clock.In(comments[i].CreatedAt)
	}

	return comments, nil
}

func (s *CommentService) Notifications(ctx context.Context) ([]models.CommentNotification, error) {
	const op = "comment_service.Notifications"
	log := s.log.With(slog.String("op", op))

	comments, err := s.repo.UnreadComments(ctx, unreadLimit)
	if err != nil {
		log.Error("failed to list unread comments", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range comments {
		comments[i].CreatedAt = s.clock.In(comments[i].CreatedAt)
	}

	return comments, nil
}

// MarkRead is idempotent; marking an already read comment is not an error.
func (s *CommentService) MarkRead(ctx context.Context, commentID int64) error {
	const op = "comment_service.MarkRead"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("comment_id", commentID),
	)

	changed, err := s.repo.MarkCommentRead(ctx, commentID)
	if err != nil {
		log.Error("failed to mark comment read", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("comment marked read", slog.Bool("changed", changed))

	return nil
}

func (s *CommentService) MarkAllRead(ctx context.Context) (int64, error) {
	const op = "comment_service.MarkAllRead"
	log := s.log.With(slog.String("op", op))

	n, err := s.repo.MarkAllCommentsRead(ctx)
	if err != nil {
		log.Error("failed to mark comments read", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("comments marked read", slog.Int64("count", n))

	return n, nil
}

func (s *CommentService) checkOwner(ctx context.Context, userID, commentID int64) error {
	comment, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != userID {
		return ErrForbidden
	}

	return nil
}
