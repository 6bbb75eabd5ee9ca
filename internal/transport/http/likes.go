package http

import (
	"log/slog"
	"net/http"

	"nativeblog/internal/middleware"
	"nativeblog/internal/transport/http/dto"
	"nativeblog/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// LikePost godoc
// @Summary Like a post
// @Description A user may like a post once.
// @Tags likes
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} dto.LikeResponse
// @Failure 400 {object} response.ErrorResponse "You have already liked this post."
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/posts/{postId}/like [post]
func (r *Routers) LikePost(c echo.Context) error {
	const op = "http.routers.LikePost"
	log := r.log.With(slog.String("op", op))

	caller, ok := middleware.Principal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrNoTokenProvided)
	}

	postID, err := parseID(c.Param("postId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrPostNotFound)
	}

	likes, err := r.LikeService.LikePost(c.Request().Context(), caller.ID, postID)
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, dto.LikeResponse{Liked: true, Likes: &likes})
}

// IsLiked godoc
// @Summary Whether the caller liked a post
// @Tags likes
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} dto.LikeResponse
// @Security ApiKeyAuth
// @Router /api/posts/{postId}/isLiked [get]
func (r *Routers) IsLiked(c echo.Context) error {
	const op = "http.routers.IsLiked"
	log := r.log.With(slog.String("op", op))

	caller, ok := middleware.Principal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrNoTokenProvided)
	}

	postID, err := parseID(c.Param("postId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrPostNotFound)
	}

	liked, err := r.LikeService.IsLiked(c.Request().Context(), caller.ID, postID)
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, dto.LikeResponse{Liked: liked})
}

// LikedPosts godoc
// @Summary Posts liked by a user
// @Tags users
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} models.Post
// @Failure 400 {object} response.ErrorResponse
// @Router /api/user/liked-posts [get]
func (r *Routers) LikedPosts(c echo.Context) error {
	const op = "http.routers.LikedPosts"
	log := r.log.With(slog.String("op", op))

	userID, err := parseID(c.QueryParam("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("User ID is required"))
	}

	posts, err := r.LikeService.LikedPosts(c.Request().Context(), userID)
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, posts)
}
