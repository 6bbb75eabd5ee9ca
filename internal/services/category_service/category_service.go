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
	"nativeblog/internal/metrics"
	"nativeblog/internal/repository"

	"github.com/patrickmn/go-cache"
)

const categoriesCacheKey = "categories"

var ErrNameRequired = errors.New("category name is required")

type CategoryService struct {
	log   *slog.Logger
	repo  repository.CategoryRepository
	cache *cache.Cache
}

func NewCategoryService(log *slog.Logger, repo repository.CategoryRepository, cacheTTL time.Duration) *CategoryService {
	return &CategoryService{
		log:   log,
		repo:  repo,
		cache: cache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "category_service.ListCategories"
	log := s.log.With(slog.String("op", op))

	if cached, found := s.cache.Get(categoriesCacheKey); found {
		metrics.CacheLookupsTotal.WithLabelValues(categoriesCacheKey, "hit").Inc()
		return cached.([]models.Category), nil
	}
	metrics.CacheLookupsTotal.WithLabelValues(categoriesCacheKey, "miss").Inc()

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		log.Error("failed to list categories", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.SetDefault(categoriesCacheKey, categories)

	return categories, nil
}

func (s *CategoryService) AddCategory(ctx context.Context, name string) (models.Category, error) {
	const op = "category_service.AddCategory"

	name = strings.TrimSpace(name)
	log := s.log.With(
		slog.String("op", op),
		slog.String("name", name),
	)

	if name == "" {
		return models.Category{}, fmt.Errorf("%s: %w", op, ErrNameRequired)
	}

	category, err := s.repo.SaveCategory(ctx, name)
	if err != nil {
		log.Warn("failed to add category", sl.Err(err))
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Delete(categoriesCacheKey)
	log.Info("category added", slog.Int64("category_id", category.ID))

	return category, nil
}
