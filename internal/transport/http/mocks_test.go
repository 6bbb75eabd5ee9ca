package http_test

import (
	"context"
	"io"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/transport/http/dto"

	"github.com/stretchr/testify/mock"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, id int64, withHTML bool) (models.Post, error) {
	args := m.Called(ctx, id, withHTML)
	return args.Get(0).(models.Post), args.Error(1)
}

func (m *MockPostService) PopularPosts(ctx context.Context) ([]models.PopularPost, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.PopularPost), args.Error(1)
}

func (m *MockPostService) RelatedPosts(ctx context.Context, category string, currentID int64) ([]models.Post, error) {
	args := m.Called(ctx, category, currentID)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) SearchPosts(ctx context.Context, term, category string) ([]models.Post, error) {
	args := m.Called(ctx, term, category)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) IncrementViews(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, in dto.CreatePostInput) (models.Post, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, id int64, in dto.UpdatePostInput) (models.Post, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPostService) Notifications(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) MarkNotificationRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryService) AddCategory(ctx context.Context, name string) (models.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.Category), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) PostComments(ctx context.Context, postID int64) ([]models.CommentView, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]models.CommentView), args.Error(1)
}

func (m *MockCommentService) AddComment(ctx context.Context, userID, postID int64, text string) (models.CommentView, error) {
	args := m.Called(ctx, userID, postID, text)
	return args.Get(0).(models.CommentView), args.Error(1)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, userID, commentID int64, text string) (models.CommentView, error) {
	args := m.Called(ctx, userID, commentID, text)
	return args.Get(0).(models.CommentView), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, userID, commentID int64) error {
	return m.Called(ctx, userID, commentID).Error(0)
}

func (m *MockCommentService) ModeratorDelete(ctx context.Context, commentID int64) error {
	return m.Called(ctx, commentID).Error(0)
}

func (m *MockCommentService) UserComments(ctx context.Context, userID int64) ([]models.UserComment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.UserComment), args.Error(1)
}

func (m *MockCommentService) Notifications(ctx context.Context) ([]models.CommentNotification, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CommentNotification), args.Error(1)
}

func (m *MockCommentService) MarkRead(ctx context.Context, commentID int64) error {
	return m.Called(ctx, commentID).Error(0)
}

func (m *MockCommentService) MarkAllRead(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) LikePost(ctx context.Context, userID, postID int64) (int, error) {
	args := m.Called(ctx, userID, postID)
	return args.Int(0), args.Error(1)
}

func (m *MockLikeService) IsLiked(ctx context.Context, userID, postID int64) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeService) LikedPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Post), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Signup(ctx context.Context, input dto.SignupRequest) (dto.AuthResponse, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(dto.AuthResponse), args.Error(1)
}

func (m *MockUserService) Signin(ctx context.Context, identifier, password string) (dto.AuthResponse, error) {
	args := m.Called(ctx, identifier, password)
	return args.Get(0).(dto.AuthResponse), args.Error(1)
}

func (m *MockUserService) UpdatePassword(ctx context.Context, id int64, current, next string) error {
	return m.Called(ctx, id, current, next).Error(0)
}

func (m *MockUserService) Profile(ctx context.Context, id int64) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, id int64, username string, profileImage *string) error {
	return m.Called(ctx, id, username, profileImage).Error(0)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Login(ctx context.Context, username, password string) (models.Backuser, *models.TokenPair, error) {
	args := m.Called(ctx, username, password)
	pair, _ := args.Get(1).(*models.TokenPair)
	return args.Get(0).(models.Backuser), pair, args.Error(2)
}

func (m *MockAccountService) Profile(ctx context.Context, id int64) (models.Backuser, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Backuser), args.Error(1)
}

func (m *MockAccountService) UpdateProfile(ctx context.Context, b models.Backuser) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockAccountService) UpdatePassword(ctx context.Context, id int64, current, next string) error {
	return m.Called(ctx, id, current, next).Error(0)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	pair, _ := args.Get(0).(*models.TokenPair)
	return pair, args.Error(1)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadImage(ctx context.Context, kind string, src io.Reader) (*models.Upload, error) {
	args := m.Called(ctx, kind, src)
	upload, _ := args.Get(0).(*models.Upload)
	return upload, args.Error(1)
}

func (m *MockUploadService) Remove(ctx context.Context, path string) {
	m.Called(ctx, path)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
