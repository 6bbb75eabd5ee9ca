package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/lib/logger/sl"
	"nativeblog/internal/lib/timeutil"
	"nativeblog/internal/metrics"
	"nativeblog/internal/repository"
	"nativeblog/internal/storage"
)

type LikeService struct {
	log   *slog.Logger
	repo  repository.LikeRepository
	clock *timeutil.Clock
}

func NewLikeService(log *slog.Logger, repo repository.LikeRepository, clock *timeutil.Clock) *LikeService {
	return &LikeService{
		log:   log,
		repo:  repo,
		clock: clock,
	}
}

// LikePost records a like and returns the post's new like count.
func (s *LikeService) LikePost(ctx context.Context, userID, postID int64) (int, error) {
	const op = "like_service.LikePost"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("user_id", userID),
		slog.Int64("post_id", postID),
	)

	likes, err := s.repo.LikePost(ctx, userID, postID)
	switch {
	case errors.Is(err, storage.ErrAlreadyLiked):
		metrics.LikesTotal.WithLabelValues("duplicate").Inc()
		log.Info("post already liked")
		return 0, fmt.Errorf("%s: %w", op, err)
	case err != nil:
		metrics.LikesTotal.WithLabelValues("error").Inc()
		log.Warn("failed to like post", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	metrics.LikesTotal.WithLabelValues("ok").Inc()
	log.Info("post liked", slog.Int("likes", likes))

	return likes, nil
}

func (s *LikeService) IsLiked(ctx context.Context, userID, postID int64) (bool, error) {
	const op = "like_service.IsLiked"

	liked, err := s.repo.IsLiked(ctx, userID, postID)
	if err != nil {
		s.log.Error("failed to check like", slog.String("op", op), sl.Err(err))
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return liked, nil
}

func (s *LikeService) LikedPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	const op = "like_service.LikedPosts"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("user_id", userID),
	)

	posts, err := s.repo.LikedPosts(ctx, userID)
	if err != nil {
		log.Error("failed to list liked posts", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range posts {
		posts[i].STime = s.clock.In(posts[i].STime)
		posts[i].UpDate = s.clock.InPtr(posts[i].UpDate)
	}

	return posts, nil
}
