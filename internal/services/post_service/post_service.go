package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/lib/logger/sl"
	"nativeblog/internal/lib/sanitize"
	"nativeblog/internal/lib/timeutil"
	"nativeblog/internal/metrics"
	"nativeblog/internal/repository"
	"nativeblog/internal/transport/http/dto"

	"github.com/patrickmn/go-cache"
)

const (
	popularLimit       = 5
	relatedLimit       = 5
	notificationsLimit = 10

	popularCacheKey = "popular_posts"

	// category filter value meaning "no filter"
	allCategories = "All"
)

var (
	ErrTitleRequired = errors.New("post title is required")
	ErrImageRequired = errors.New("no file uploaded or image URL provided")
)

type PostService struct {
	log   *slog.Logger
	repo  repository.PostRepository
	clock *timeutil.Clock
	cache *cache.Cache
}

func NewPostService(log *slog.Logger, repo repository.PostRepository, clock *timeutil.Clock, cacheTTL time.Duration) *PostService {
	return &PostService{
		log:   log,
		repo:  repo,
		clock: clock,
		cache: cache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	const op = "post_service.ListPosts"
	log := s.log.With(slog.String("op", op))

	posts, err := s.repo.ListPosts(ctx, models.PostFilter{})
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.localizeAll(posts), nil
}

// GetPost returns a single post; withHTML adds the rendered markdown body.
func (s *PostService) GetPost(ctx context.Context, id int64, withHTML bool) (models.Post, error) {
	const op = "post_service.GetPost"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("post_id", id),
	)

	post, err := s.repo.GetPostByID(ctx, id)
	if err != nil {
		log.Warn("failed to get post", sl.Err(err))
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	if withHTML {
		post.BodyHTML = sanitize.Markdown(post.Body)
	}

	return s.localize(post), nil
}

func (s *PostService) PopularPosts(ctx context.Context) ([]models.PopularPost, error) {
	const op = "post_service.PopularPosts"
	log := s.log.With(slog.String("op", op))

	if cached, found := s.cache.Get(popularCacheKey); found {
		metrics.CacheLookupsTotal.WithLabelValues(popularCacheKey, "hit").Inc()
		return cached.([]models.PopularPost), nil
	}
	metrics.CacheLookupsTotal.WithLabelValues(popularCacheKey, "miss").Inc()

	posts, err := s.repo.PopularPosts(ctx, popularLimit)
	if err != nil {
		log.Error("failed to get popular posts", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	popular := make([]models.PopularPost, 0, len(posts))
	for _, p := range posts {
		popular = append(popular, models.PopularPost{
			ID:       p.ID,
			ImageURL: p.Image,
			Title:    p.Title,
			Excerpt:  p.Body,
			Time:     s.clock.In(p.STime),
			Visits:   p.Views,
		})
	}

	s.cache.SetDefault(popularCacheKey, popular)

	return popular, nil
}

func (s *PostService) RelatedPosts(ctx context.Context, category string, currentID int64) ([]models.Post, error) {
	const op = "post_service.RelatedPosts"
	log := s.log.With(
		slog.String("op", op),
		slog.String("category", category),
	)

	posts, err := s.repo.ListPosts(ctx, models.PostFilter{
		Category:  category,
		ExcludeID: currentID,
		Limit:     relatedLimit,
	})
	if err != nil {
		log.Error("failed to get related posts", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.localizeAll(posts), nil
}

// SearchPosts matches titles case-insensitively. An empty or "All" filter
// searches every category.
func (s *PostService) SearchPosts(ctx context.Context, term, category string) ([]models.Post, error) {
	const op = "post_service.SearchPosts"
	log := s.log.With(
		slog.String("op", op),
		slog.String("term", term),
		slog.String("filter", category),
	)

	filter := models.PostFilter{Search: strings.TrimSpace(term)}
	if category != "" && category != allCategories {
		filter.Category = category
	}

	posts, err := s.repo.ListPosts(ctx, filter)
	if err != nil {
		log.Error("failed to search posts", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.localizeAll(posts), nil
}

func (s *PostService) IncrementViews(ctx context.Context, id int64) (int, error) {
	const op = "post_service.IncrementViews"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("post_id", id),
	)

	views, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		log.Warn("failed to increment views", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	metrics.PostViewsTotal.Inc()
	s.cache.Delete(popularCacheKey)

	return views, nil
}

func (s *PostService) CreatePost(ctx context.Context, in dto.CreatePostInput) (models.Post, error) {
	const op = "post_service.CreatePost"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", in.Title),
	)

	log.Info("creating post")

	if strings.TrimSpace(in.Title) == "" {
		return models.Post{}, fmt.Errorf("%s: %w", op, ErrTitleRequired)
	}
	if strings.TrimSpace(in.Image) == "" {
		return models.Post{}, fmt.Errorf("%s: %w", op, ErrImageRequired)
	}

	stime, err := s.clock.ParseOrNow(in.STime)
	if err != nil {
		log.Warn("invalid stime", slog.String("stime", in.STime))
		return models.Post{}, fmt.Errorf("%s: stime: %w", op, err)
	}

	upDate, err := s.clock.Parse(in.UpDate)
	if err != nil {
		log.Warn("invalid up_date", slog.String("up_date", in.UpDate))
		return models.Post{}, fmt.Errorf("%s: up_date: %w", op, err)
	}

	post, err := s.repo.SavePost(ctx, models.Post{
		Image:    strings.TrimSpace(in.Image),
		Title:    strings.TrimSpace(in.Title),
		Author:   in.Author,
		ImgAlt:   in.ImgAlt,
		ImgTitle: in.ImgTitle,
		Body:     in.Body,
		Category: in.Category,
		UpDate:   upDate,
		STime:    stime,
	})
	if err != nil {
		log.Error("failed to save post", sl.Err(err))
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(popularCacheKey)
	log.Info("post created", slog.Int64("post_id", post.ID))

	return s.localize(post), nil
}

// UpdatePost applies the provided fields. A missing up_date is stamped with
// the current time. The body is markdown source and is stored as given.
func (s *PostService) UpdatePost(ctx context.Context, id int64, in dto.UpdatePostInput) (models.Post, error) {
	const op = "post_service.UpdatePost"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("post_id", id),
	)

	log.Info("updating post")

	upd := models.PostUpdate{
		ID:       id,
		Image:    in.Image,
		Title:    in.Title,
		Author:   in.Author,
		ImgAlt:   in.ImgAlt,
		ImgTitle: in.ImgTitle,
		Body:     in.Body,
		Category: in.Category,
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return models.Post{}, fmt.Errorf("%s: %w", op, ErrTitleRequired)
	}

	if in.STime != nil {
		stime, err := s.clock.Parse(*in.STime)
		if err != nil {
			log.Warn("invalid stime", slog.String("stime", *in.STime))
			return models.Post{}, fmt.Errorf("%s: stime: %w", op, err)
		}
		upd.STime = stime
	}

	var raw string
	if in.UpDate != nil {
		raw = *in.UpDate
	}
	upDate, err := s.clock.ParseOrNow(raw)
	if err != nil {
		log.Warn("invalid up_date", slog.String("up_date", raw))
		return models.Post{}, fmt.Errorf("%s: up_date: %w", op, err)
	}
	upd.UpDate = &upDate

	post, err := s.repo.UpdatePost(ctx, upd)
	if err != nil {
		log.Warn("failed to update post", sl.Err(err))
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(popularCacheKey)
	log.Info("post updated")

	return s.localize(post), nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	const op = "post_service.DeletePost"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("post_id", id),
	)

	if err := s.repo.DeletePost(ctx, id); err != nil {
		log.Warn("failed to delete post", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(popularCacheKey)
	log.Info("post deleted")

	return nil
}

// Notifications lists the latest published posts for the admin inbox.
func (s *PostService) Notifications(ctx context.Context) ([]models.Post, error) {
	const op = "post_service.Notifications"
	log := s.log.With(slog.String("op", op))

	posts, err := s.repo.Notifications(ctx, s.clock.Now(), notificationsLimit)
	if err != nil {
		log.Error("failed to get notifications", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.localizeAll(posts), nil
}

// MarkNotificationRead succeeds whether or not the flag was already set.
func (s *PostService) MarkNotificationRead(ctx context.Context, id int64) error {
	const op = "post_service.MarkNotificationRead"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("post_id", id),
	)

	changed, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		log.Error("failed to mark notification read", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("notification marked read", slog.Bool("changed", changed))

	return nil
}

func (s *PostService) localize(p models.Post) models.Post {
	p.STime = s.clock.In(p.STime)
	p.UpDate = s.clock.InPtr(p.UpDate)
	return p
}

func (s *PostService) localizeAll(posts []models.Post) []models.Post {
	for i := range posts {
		posts[i] = s.localize(posts[i])
	}
	return posts
}
