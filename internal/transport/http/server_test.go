package http_test

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpapp "nativeblog/internal/app/http"
	"nativeblog/internal/domain/models"
	"nativeblog/internal/lib/jwt"
	"nativeblog/internal/lib/logger/handlers/slogdiscard"
	categorysvc "nativeblog/internal/services/category_service"
	commentsvc "nativeblog/internal/services/comment_service"
	usersvc "nativeblog/internal/services/user_service"
	"nativeblog/internal/storage"
	transport "nativeblog/internal/transport/http"
	"nativeblog/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "handlers-secret"

type env struct {
	e          *echo.Echo
	posts      *MockPostService
	categories *MockCategoryService
	comments   *MockCommentService
	likes      *MockLikeService
	users      *MockUserService
	accounts   *MockAccountService
	auth       *MockAuthService
	uploads    *MockUploadService
	health     *MockHealthChecker
}

// newEnv serves the production route table over mocked services.
func newEnv() *env {
	en := &env{
		posts:      new(MockPostService),
		categories: new(MockCategoryService),
		comments:   new(MockCommentService),
		likes:      new(MockLikeService),
		users:      new(MockUserService),
		accounts:   new(MockAccountService),
		auth:       new(MockAuthService),
		uploads:    new(MockUploadService),
		health:     new(MockHealthChecker),
	}

	log := slogdiscard.NewDiscardLogger()
	r := transport.NewRouter(log, transport.Services{
		Posts:      en.posts,
		Categories: en.categories,
		Comments:   en.comments,
		Likes:      en.likes,
		Users:      en.users,
		Accounts:   en.accounts,
		Auth:       en.auth,
		Uploads:    en.uploads,
		Health:     en.health,
	})

	srv := httpapp.New(log, httpapp.Options{
		JWTSecret:     testSecret,
		SessionSecret: "session-secret",
		RateRPS:       1000,
		RateBurst:     1000,
	}, r)
	srv.BuildRouters()

	en.e = srv.Echo()

	return en
}

func bearer(t *testing.T, p models.Principal) string {
	t.Helper()

	tok, err := jwt.NewToken(p, jwt.KindAccess, testSecret, time.Hour)
	require.NoError(t, err)

	return "Bearer " + tok
}

var (
	reader = models.Principal{ID: 7, Username: "reader", Role: models.RoleUser}
	admin  = models.Principal{ID: 1, Username: "admin", Role: models.RoleAdmin}
)

func (en *env) do(method, path, contentType, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}

	rec := httptest.NewRecorder()
	en.e.ServeHTTP(rec, req)

	return rec
}

func (en *env) doJSON(method, path, body, auth string) *httptest.ResponseRecorder {
	return en.do(method, path, echo.MIMEApplicationJSON, body, auth)
}

func multipartBody(t *testing.T, fields map[string]string, fileField string, file []byte) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, "image.png")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf.String(), w.FormDataContentType()
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		en := newEnv()
		en.health.On("HealthCheck", mock.Anything).Return(nil)

		rec := en.do(http.MethodGet, "/health", "", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		en := newEnv()
		en.health.On("HealthCheck", mock.Anything).Return(errors.New("connection refused"))

		rec := en.do(http.MethodGet, "/health", "", "", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestGetPost(t *testing.T) {
	t.Run("found with html", func(t *testing.T) {
		en := newEnv()
		en.posts.On("GetPost", mock.Anything, int64(3), true).
			Return(models.Post{ID: 3, Title: "Hello", BodyHTML: "<p>hi</p>"}, nil)

		rec := en.do(http.MethodGet, "/api/get-posts/3?format=html", "", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"pname":"Hello"`)
		en.posts.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		en := newEnv()
		en.posts.On("GetPost", mock.Anything, int64(9), false).
			Return(models.Post{}, storage.ErrPostNotFound)

		rec := en.do(http.MethodGet, "/api/get-posts/9", "", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Post not found")
	})

	t.Run("non numeric id", func(t *testing.T) {
		en := newEnv()

		rec := en.do(http.MethodGet, "/api/get-posts/abc", "", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		en.posts.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unexpected failure", func(t *testing.T) {
		en := newEnv()
		en.posts.On("GetPost", mock.Anything, int64(2), false).
			Return(models.Post{}, errors.New("db down"))

		rec := en.do(http.MethodGet, "/api/get-posts/2", "", "", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestSearchPosts(t *testing.T) {
	en := newEnv()
	en.posts.On("SearchPosts", mock.Anything, "go", "Tech").
		Return([]models.Post{{ID: 1, Title: "Go tips", Body: "body"}}, nil)

	rec := en.do(http.MethodGet, "/api/search-posts?pname=go&filter=Tech", "", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Go tips"`)
}

func TestIncrementViews(t *testing.T) {
	en := newEnv()
	en.posts.On("IncrementViews", mock.Anything, int64(4)).Return(12, nil)

	rec := en.do(http.MethodPut, "/api/increment-views/4", "", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Post views incremented successfully","newViewsCount":12}`, rec.Body.String())
}

func TestAddPost(t *testing.T) {
	t.Run("requires admin", func(t *testing.T) {
		en := newEnv()

		rec := en.doJSON(http.MethodPost, "/api/add-post", `{"pname":"x","image":"/a.png"}`, bearer(t, reader))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no image", func(t *testing.T) {
		en := newEnv()

		rec := en.doJSON(http.MethodPost, "/api/add-post", `{"pname":"Hello"}`, bearer(t, admin))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No file uploaded or image URL provided")
		en.posts.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
	})

	t.Run("image url", func(t *testing.T) {
		en := newEnv()
		en.posts.On("CreatePost", mock.Anything, mock.MatchedBy(func(in dto.CreatePostInput) bool {
			return in.Title == "Hello" && in.Image == "https://cdn.example.com/a.png"
		})).Return(models.Post{ID: 5, Title: "Hello"}, nil)

		rec := en.doJSON(http.MethodPost, "/api/add-post",
			`{"pname":"Hello","image":"https://cdn.example.com/a.png"}`, bearer(t, admin))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Post file uploaded and data saved successfully")
		en.uploads.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("uploaded file", func(t *testing.T) {
		en := newEnv()
		en.uploads.On("UploadImage", mock.Anything, "post", mock.Anything).
			Return(&models.Upload{Path: "/nativeuploads/abc.png"}, nil)
		en.posts.On("CreatePost", mock.Anything, mock.MatchedBy(func(in dto.CreatePostInput) bool {
			return in.Image == "/nativeuploads/abc.png" && in.Category == "Tech"
		})).Return(models.Post{ID: 6}, nil)

		body, ct := multipartBody(t, map[string]string{"pname": "Hello", "cname": "Tech"}, "file", []byte("png"))
		rec := en.do(http.MethodPost, "/api/add-post", ct, body, bearer(t, admin))

		assert.Equal(t, http.StatusCreated, rec.Code)
		en.uploads.AssertExpectations(t)
		en.posts.AssertExpectations(t)
	})

	t.Run("upload removed when save fails", func(t *testing.T) {
		en := newEnv()
		en.uploads.On("UploadImage", mock.Anything, "post", mock.Anything).
			Return(&models.Upload{Path: "/nativeuploads/abc.png"}, nil)
		en.uploads.On("Remove", mock.Anything, "/nativeuploads/abc.png").Return()
		en.posts.On("CreatePost", mock.Anything, mock.Anything).Return(models.Post{}, errors.New("db down"))

		body, ct := multipartBody(t, map[string]string{"pname": "Hello"}, "file", []byte("png"))
		rec := en.do(http.MethodPost, "/api/add-post", ct, body, bearer(t, admin))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		en.uploads.AssertCalled(t, "Remove", mock.Anything, "/nativeuploads/abc.png")
	})

	t.Run("file too large", func(t *testing.T) {
		en := newEnv()
		en.uploads.On("UploadImage", mock.Anything, "post", mock.Anything).
			Return(nil, storage.ErrFileTooLarge)

		body, ct := multipartBody(t, map[string]string{"pname": "Hello"}, "file", []byte("png"))
		rec := en.do(http.MethodPost, "/api/add-post", ct, body, bearer(t, admin))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestUpdatePost(t *testing.T) {
	t.Run("json partial update", func(t *testing.T) {
		en := newEnv()
		en.posts.On("UpdatePost", mock.Anything, int64(2), mock.MatchedBy(func(in dto.UpdatePostInput) bool {
			return in.Title != nil && *in.Title == "New" && in.Body == nil
		})).Return(models.Post{ID: 2, Title: "New"}, nil)

		rec := en.doJSON(http.MethodPut, "/api/update-post", `{"id":"2","pname":"New"}`, bearer(t, admin))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Post updated successfully")
	})

	t.Run("multipart with file", func(t *testing.T) {
		en := newEnv()
		en.uploads.On("UploadImage", mock.Anything, "post", mock.Anything).
			Return(&models.Upload{Path: "/nativeuploads/new.png"}, nil)
		en.posts.On("UpdatePost", mock.Anything, int64(3), mock.MatchedBy(func(in dto.UpdatePostInput) bool {
			return in.Image != nil && *in.Image == "/nativeuploads/new.png" &&
				in.Category != nil && *in.Category == "Go" &&
				in.Title == nil
		})).Return(models.Post{ID: 3}, nil)

		body, ct := multipartBody(t, map[string]string{"id": "3", "cname": "Go"}, "file", []byte("png"))
		rec := en.do(http.MethodPut, "/api/update-post", ct, body, bearer(t, admin))

		assert.Equal(t, http.StatusOK, rec.Code)
		en.posts.AssertExpectations(t)
	})

	t.Run("missing id", func(t *testing.T) {
		en := newEnv()

		rec := en.doJSON(http.MethodPut, "/api/update-post", `{"pname":"New"}`, bearer(t, admin))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Post ID is required")
	})

	t.Run("unknown post", func(t *testing.T) {
		en := newEnv()
		en.posts.On("UpdatePost", mock.Anything, int64(99), mock.Anything).
			Return(models.Post{}, storage.ErrPostNotFound)

		rec := en.doJSON(http.MethodPut, "/api/update-post", `{"id":99}`, bearer(t, admin))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeletePost(t *testing.T) {
	en := newEnv()
	en.posts.On("DeletePost", mock.Anything, int64(1)).Return(nil)
	en.posts.On("DeletePost", mock.Anything, int64(2)).Return(storage.ErrPostNotFound)

	rec := en.doJSON(http.MethodDelete, "/api/delete-post", `{"id":1}`, bearer(t, admin))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post deleted successfully")

	rec = en.doJSON(http.MethodDelete, "/api/delete-post", `{"id":2}`, bearer(t, admin))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = en.doJSON(http.MethodDelete, "/api/delete-post", `{}`, bearer(t, admin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkNotificationRead(t *testing.T) {
	en := newEnv()
	en.posts.On("MarkNotificationRead", mock.Anything, int64(4)).Return(nil)

	rec := en.doJSON(http.MethodPost, "/api/mark-notification-read/4", "", bearer(t, admin))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = en.doJSON(http.MethodPost, "/api/mark-notification-read", `{"id":4}`, bearer(t, admin))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = en.doJSON(http.MethodPost, "/api/mark-notification-read", `{}`, bearer(t, admin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing notification ID")

	en.posts.AssertNumberOfCalls(t, "MarkNotificationRead", 2)
}

func TestAddCategory(t *testing.T) {
	en := newEnv()
	en.categories.On("AddCategory", mock.Anything, "Go").Return(models.Category{ID: 1, Name: "Go"}, nil)
	en.categories.On("AddCategory", mock.Anything, "Dup").Return(models.Category{}, storage.ErrCategoryExists)
	en.categories.On("AddCategory", mock.Anything, "").Return(models.Category{}, categorysvc.ErrNameRequired)

	rec := en.doJSON(http.MethodPost, "/api/add-category", `{"name":"Go"}`, bearer(t, admin))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = en.doJSON(http.MethodPost, "/api/add-category", `{"name":"Dup"}`, bearer(t, admin))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = en.doJSON(http.MethodPost, "/api/add-category", `{"name":""}`, bearer(t, admin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Category name is required")
}

func TestComments(t *testing.T) {
	t.Run("anonymous cannot comment", func(t *testing.T) {
		en := newEnv()

		rec := en.doJSON(http.MethodPost, "/api/posts/1/comments", `{"comment_text":"hi"}`, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		en.comments.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("add", func(t *testing.T) {
		en := newEnv()
		en.comments.On("AddComment", mock.Anything, reader.ID, int64(1), "hi").
			Return(models.CommentView{ID: 10, Text: "hi", Username: "reader"}, nil)

		rec := en.doJSON(http.MethodPost, "/api/posts/1/comments", `{"comment_text":"hi"}`, bearer(t, reader))

		assert.Equal(t, http.StatusCreated, rec.Code)
		en.comments.AssertExpectations(t)
	})

	t.Run("empty text", func(t *testing.T) {
		en := newEnv()
		en.comments.On("AddComment", mock.Anything, reader.ID, int64(1), " ").
			Return(models.CommentView{}, commentsvc.ErrTextRequired)

		rec := en.doJSON(http.MethodPost, "/api/posts/1/comments", `{"comment_text":" "}`, bearer(t, reader))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Comment text is required")
	})

	t.Run("edit someone else's", func(t *testing.T) {
		en := newEnv()
		en.comments.On("UpdateComment", mock.Anything, reader.ID, int64(3), "x").
			Return(models.CommentView{}, commentsvc.ErrForbidden)

		rec := en.doJSON(http.MethodPut, "/api/comments/3", `{"comment_text":"x"}`, bearer(t, reader))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unauthorized to edit this comment")
	})

	t.Run("delete own", func(t *testing.T) {
		en := newEnv()
		en.comments.On("DeleteComment", mock.Anything, reader.ID, int64(3)).Return(nil)

		rec := en.do(http.MethodDelete, "/api/comments/3", "", "", bearer(t, reader))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin token cannot act as reader", func(t *testing.T) {
		en := newEnv()

		rec := en.do(http.MethodDelete, "/api/comments/5", "", "", bearer(t, admin))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		en.comments.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delete missing", func(t *testing.T) {
		en := newEnv()
		en.comments.On("DeleteComment", mock.Anything, reader.ID, int64(4)).Return(storage.ErrCommentNotFound)

		rec := en.do(http.MethodDelete, "/api/comments/4", "", "", bearer(t, reader))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("moderator removes any", func(t *testing.T) {
		en := newEnv()
		en.comments.On("ModeratorDelete", mock.Anything, int64(3)).Return(nil)

		rec := en.do(http.MethodDelete, "/api/admin/comments/3", "", "", bearer(t, admin))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("mark all read", func(t *testing.T) {
		en := newEnv()
		en.comments.On("MarkAllRead", mock.Anything).Return(int64(4), nil)

		rec := en.do(http.MethodPost, "/api/admin/mark-all-comments-read", "", "", bearer(t, admin))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLikes(t *testing.T) {
	en := newEnv()
	en.likes.On("LikePost", mock.Anything, reader.ID, int64(2)).Return(5, nil).Once()
	en.likes.On("LikePost", mock.Anything, reader.ID, int64(2)).Return(0, storage.ErrAlreadyLiked).Once()
	en.likes.On("IsLiked", mock.Anything, reader.ID, int64(2)).Return(true, nil)

	rec := en.do(http.MethodPost, "/api/posts/2/like", "", "", bearer(t, reader))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"liked":true,"likes":5}`, rec.Body.String())

	rec = en.do(http.MethodPost, "/api/posts/2/like", "", "", bearer(t, reader))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already liked")

	rec = en.do(http.MethodGet, "/api/posts/2/isLiked", "", "", bearer(t, reader))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"liked":true}`, rec.Body.String())
}

func TestSignupSignin(t *testing.T) {
	t.Run("signup", func(t *testing.T) {
		en := newEnv()
		req := dto.SignupRequest{Username: "ann", Email: "ann@example.com", Password: "pw"}
		en.users.On("Signup", mock.Anything, req).
			Return(dto.AuthResponse{Token: "t", ID: 3, Username: "ann", Email: "ann@example.com"}, nil)

		rec := en.doJSON(http.MethodPost, "/api/user/signup",
			`{"username":"ann","email":"ann@example.com","password":"pw"}`, "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"t"`)
	})

	t.Run("signup missing fields", func(t *testing.T) {
		en := newEnv()

		rec := en.doJSON(http.MethodPost, "/api/user/signup", `{"username":"ann"}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		en.users.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
	})

	t.Run("signup taken", func(t *testing.T) {
		en := newEnv()
		en.users.On("Signup", mock.Anything, mock.Anything).Return(dto.AuthResponse{}, usersvc.ErrUserExist)

		rec := en.doJSON(http.MethodPost, "/api/user/signup",
			`{"username":"ann","email":"ann@example.com","password":"pw"}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("signup password too long", func(t *testing.T) {
		en := newEnv()
		en.users.On("Signup", mock.Anything, mock.Anything).
			Return(dto.AuthResponse{}, fmt.Errorf("user_service.Signup: %w", usersvc.ErrPasswordTooLong))

		rec := en.doJSON(http.MethodPost, "/api/user/signup",
			`{"username":"ann","email":"ann@example.com","password":"`+strings.Repeat("p", 73)+`"}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Password must be at most 72 bytes")
	})

	t.Run("signin bad password", func(t *testing.T) {
		en := newEnv()
		en.users.On("Signin", mock.Anything, "ann", "bad").Return(dto.AuthResponse{}, usersvc.ErrInvalidCredentials)

		rec := en.doJSON(http.MethodPost, "/api/user/signin", `{"username":"ann","password":"bad"}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	})
}

func TestUserProfile(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		en := newEnv()
		en.users.On("Profile", mock.Anything, int64(7)).
			Return(models.User{ID: 7, Username: "reader", Email: "r@example.com"}, nil)

		rec := en.do(http.MethodGet, "/api/user/get-profile?id=7", "", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"r@example.com"`)
	})

	t.Run("update another user", func(t *testing.T) {
		en := newEnv()

		rec := en.doJSON(http.MethodPost, "/api/user/update-profile", `{"id":8,"username":"x"}`, bearer(t, reader))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		en.users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("admin token cannot update a reader profile", func(t *testing.T) {
		en := newEnv()

		rec := en.doJSON(http.MethodPost, "/api/user/update-profile", `{"username":"x"}`, bearer(t, admin))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		en.users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("update own", func(t *testing.T) {
		en := newEnv()
		en.users.On("UpdateProfile", mock.Anything, reader.ID, "renamed", (*string)(nil)).Return(nil)

		rec := en.doJSON(http.MethodPost, "/api/user/update-profile", `{"username":"renamed"}`, bearer(t, reader))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("password wrong", func(t *testing.T) {
		en := newEnv()
		en.users.On("UpdatePassword", mock.Anything, int64(7), "old", "new").Return(usersvc.ErrWrongPassword)

		rec := en.doJSON(http.MethodPost, "/api/user/update-password",
			`{"id":"7","currentPassword":"old","newPassword":"new"}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Current password is incorrect")
	})
}

func TestUploadAvatar(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		en := newEnv()

		body, ct := multipartBody(t, map[string]string{"x": "y"}, "", nil)
		rec := en.do(http.MethodPost, "/api/upload-avatar", ct, body, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No file uploaded")
	})

	t.Run("stored", func(t *testing.T) {
		en := newEnv()
		en.uploads.On("UploadImage", mock.Anything, "avatar", mock.Anything).
			Return(&models.Upload{Path: "/nativeuploads/me.png"}, nil)

		body, ct := multipartBody(t, nil, "avatar", []byte("png"))
		rec := en.do(http.MethodPost, "/api/upload-avatar", ct, body, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"path":"/nativeuploads/me.png"}`, rec.Body.String())
	})

	t.Run("unsupported type", func(t *testing.T) {
		en := newEnv()
		en.uploads.On("UploadImage", mock.Anything, "avatar", mock.Anything).
			Return(nil, storage.ErrInvalidFileType)

		body, ct := multipartBody(t, nil, "avatar", []byte("text"))
		rec := en.do(http.MethodPost, "/api/upload-avatar", ct, body, "")

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("sets session and token", func(t *testing.T) {
		en := newEnv()
		en.accounts.On("Login", mock.Anything, "admin", "pw").
			Return(models.Backuser{ID: 1, Username: "admin"}, &models.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

		rec := en.doJSON(http.MethodPost, "/api/login", `{"username":"admin","password":"pw"}`, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"a","refresh_token":"r"}`, rec.Body.String())
		assert.NotEmpty(t, rec.Result().Cookies())
	})

	t.Run("session opens admin routes", func(t *testing.T) {
		en := newEnv()
		en.accounts.On("Login", mock.Anything, "admin", "pw").
			Return(models.Backuser{ID: 1, Username: "admin"}, &models.TokenPair{AccessToken: "a"}, nil)
		en.accounts.On("Profile", mock.Anything, int64(1)).
			Return(models.Backuser{ID: 1, Username: "admin", DarkMode: true}, nil)

		login := en.doJSON(http.MethodPost, "/api/login", `{"username":"admin","password":"pw"}`, "")
		require.Equal(t, http.StatusOK, login.Code)

		req := httptest.NewRequest(http.MethodGet, "/api/get-profile", nil)
		for _, c := range login.Result().Cookies() {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		en.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"darkmode":true`)
	})

	t.Run("unknown user", func(t *testing.T) {
		en := newEnv()
		en.accounts.On("Login", mock.Anything, "ghost", "pw").
			Return(models.Backuser{}, nil, storage.ErrUserNotFound)

		rec := en.doJSON(http.MethodPost, "/api/login", `{"username":"ghost","password":"pw"}`, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing credentials", func(t *testing.T) {
		en := newEnv()

		rec := en.doJSON(http.MethodPost, "/api/login", `{"username":"admin"}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRefresh(t *testing.T) {
	en := newEnv()
	en.auth.On("RefreshTokens", mock.Anything, "good").
		Return(&models.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)
	en.auth.On("RefreshTokens", mock.Anything, "stale").
		Return(nil, errors.New("token not found"))

	rec := en.doJSON(http.MethodPost, "/api/refresh", `{"refresh_token":"good"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"a2","refresh_token":"r2"}`, rec.Body.String())

	rec = en.doJSON(http.MethodPost, "/api/refresh", `{"refresh_token":"stale"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = en.doJSON(http.MethodPost, "/api/refresh", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPopularAndRelatedPosts(t *testing.T) {
	en := newEnv()
	en.posts.On("PopularPosts", mock.Anything).
		Return([]models.PopularPost{{ID: 1, Title: "Top", Visits: 40}}, nil)
	en.posts.On("RelatedPosts", mock.Anything, "Tech", int64(4)).
		Return([]models.Post{{ID: 5, Title: "Sibling", Category: "Tech"}}, nil)

	rec := en.do(http.MethodGet, "/api/popular-posts", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Top"`)

	rec = en.do(http.MethodGet, "/api/related-posts/Tech/4", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pname":"Sibling"`)

	rec = en.do(http.MethodGet, "/api/related-posts/Tech/abc", "", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	en.posts.AssertExpectations(t)
}

func TestUserActivity(t *testing.T) {
	en := newEnv()
	en.comments.On("UserComments", mock.Anything, int64(7)).
		Return([]models.UserComment{{PostTitle: "Hello"}}, nil)
	en.likes.On("LikedPosts", mock.Anything, int64(7)).
		Return([]models.Post{{ID: 2, Title: "Liked"}}, nil)

	rec := en.do(http.MethodGet, "/api/user/comments?user_id=7", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"post_title":"Hello"`)

	rec = en.do(http.MethodGet, "/api/user/comments", "", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User ID is required")

	rec = en.do(http.MethodGet, "/api/user/liked-posts?user_id=7", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pname":"Liked"`)

	rec = en.do(http.MethodGet, "/api/user/liked-posts?user_id=x", "", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	en.comments.AssertNumberOfCalls(t, "UserComments", 1)
	en.likes.AssertNumberOfCalls(t, "LikedPosts", 1)
}

func TestCommentModeration(t *testing.T) {
	t.Run("notifications need admin", func(t *testing.T) {
		en := newEnv()

		rec := en.do(http.MethodGet, "/api/admin/comment-notifications", "", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = en.do(http.MethodGet, "/api/admin/comment-notifications", "", "", bearer(t, reader))
		assert.Equal(t, http.StatusForbidden, rec.Code)

		en.comments.AssertNotCalled(t, "Notifications", mock.Anything)
	})

	t.Run("notifications", func(t *testing.T) {
		en := newEnv()
		en.comments.On("Notifications", mock.Anything).
			Return([]models.CommentNotification{{ID: 3, Text: "hi", PostName: "Hello"}}, nil)

		rec := en.do(http.MethodGet, "/api/admin/comment-notifications", "", "", bearer(t, admin))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"post_name":"Hello"`)
	})

	t.Run("mark read twice", func(t *testing.T) {
		en := newEnv()
		en.comments.On("MarkRead", mock.Anything, int64(3)).Return(nil)

		rec := en.do(http.MethodPost, "/api/admin/mark-comment-read/3", "", "", bearer(t, admin))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = en.do(http.MethodPost, "/api/admin/mark-comment-read/3", "", "", bearer(t, admin))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Comment marked as read")

		en.comments.AssertNumberOfCalls(t, "MarkRead", 2)
	})

	t.Run("mark read unknown comment", func(t *testing.T) {
		en := newEnv()
		en.comments.On("MarkRead", mock.Anything, int64(9)).Return(storage.ErrCommentNotFound)

		rec := en.do(http.MethodPost, "/api/admin/mark-comment-read/9", "", "", bearer(t, admin))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUnknownRoutes(t *testing.T) {
	en := newEnv()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nope"},
		{http.MethodPost, "/api/nope"},
		{http.MethodGet, "/api/admin/nope"},
		{http.MethodGet, "/api/user/nope"},
	} {
		rec := en.do(tc.method, tc.path, "", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}
}
