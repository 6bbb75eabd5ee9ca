package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/lib/logger/handlers/slogdiscard"
	"nativeblog/internal/lib/timeutil"
	"nativeblog/internal/metrics"
	"nativeblog/internal/storage"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) LikePost(ctx context.Context, userID, postID int64) (int, error) {
	args := m.Called(ctx, userID, postID)
	return args.Int(0), args.Error(1)
}

func (m *MockLikeRepository) IsLiked(ctx context.Context, userID, postID int64) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) LikedPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Post), args.Error(1)
}

func newService(repo *MockLikeRepository) *LikeService {
	return NewLikeService(slogdiscard.NewDiscardLogger(), repo, timeutil.New("Asia/Kolkata"))
}

func TestLikeService_LikePost(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLikeRepository)
	repo.On("LikePost", ctx, int64(1), int64(2)).Return(5, nil).Once()
	repo.On("LikePost", ctx, int64(1), int64(2)).Return(0, storage.ErrAlreadyLiked).Once()
	repo.On("LikePost", ctx, int64(1), int64(3)).Return(0, storage.ErrPostNotFound).Once()

	svc := newService(repo)
	dupBefore := testutil.ToFloat64(metrics.LikesTotal.WithLabelValues("duplicate"))

	likes, err := svc.LikePost(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, likes)

	_, err = svc.LikePost(ctx, 1, 2)
	assert.ErrorIs(t, err, storage.ErrAlreadyLiked)
	assert.Equal(t, dupBefore+1, testutil.ToFloat64(metrics.LikesTotal.WithLabelValues("duplicate")))

	_, err = svc.LikePost(ctx, 1, 3)
	assert.ErrorIs(t, err, storage.ErrPostNotFound)
}

func TestLikeService_IsLiked(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLikeRepository)
	repo.On("IsLiked", ctx, int64(1), int64(2)).Return(true, nil)
	repo.On("IsLiked", ctx, int64(1), int64(3)).Return(false, errors.New("conn reset"))

	svc := newService(repo)

	liked, err := svc.IsLiked(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, liked)

	_, err = svc.IsLiked(ctx, 1, 3)
	assert.Error(t, err)
}

func TestLikeService_LikedPostsLocalized(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLikeRepository)
	repo.On("LikedPosts", ctx, int64(1)).
		Return([]models.Post{{ID: 2, STime: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}}, nil)

	posts, err := newService(repo).LikedPosts(ctx, 1)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 17, posts[0].STime.Hour())
	assert.Equal(t, 30, posts[0].STime.Minute())
}
