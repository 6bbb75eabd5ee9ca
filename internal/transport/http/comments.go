package http

import (
	"errors"
	"log/slog"
	"net/http"

	"nativeblog/internal/middleware"
	commentsvc "nativeblog/internal/services/comment_service"
	"nativeblog/internal/transport/http/dto"
	"nativeblog/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// GetComments godoc
// @Summary Comments of a post
// @Tags comments
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {array} models.CommentView
// @Router /api/posts/{postId}/comments [get]
func (r *Routers) GetComments(c echo.Context) error {
	const op = "http.routers.GetComments"
	log := r.log.With(slog.String("op", op))

	postID, err := parseID(c.Param("postId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrPostNotFound)
	}

	comments, err := r.CommentService.PostComments(c.Request().Context(), postID)
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, comments)
}

// AddComment godoc
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Param postId path int true "Post ID"
// @Param request body dto.CommentRequest true "Comment"
// @Success 201 {object} models.CommentView
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/posts/{postId}/comments [post]
func (r *Routers) AddComment(c echo.Context) error {
	const op = "http.routers.AddComment"
	log := r.log.With(slog.String("op", op))

	caller, ok := middleware.Principal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrNoTokenProvided)
	}

	postID, err := parseID(c.Param("postId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrPostNotFound)
	}

	var req dto.CommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	view, err := r.CommentService.AddComment(c.Request().Context(), caller.ID, postID, req.Text)
	if err != nil {
		if errors.Is(err, commentsvc.ErrTextRequired) {
			return c.JSON(http.StatusBadRequest, response.Error("Comment text is required"))
		}
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusCreated, view)
}

// UpdateComment godoc
// @Summary Edit own comment
// @Tags comments
// @Accept json
// @Produce json
// @Param commentId path int true "Comment ID"
// @Param request body dto.CommentRequest true "New text"
// @Success 200 {object} models.CommentView
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/comments/{commentId} [put]
func (r *Routers) UpdateComment(c echo.Context) error {
	const op = "http.routers.UpdateComment"
	log := r.log.With(slog.String("op", op))

	caller, ok := middleware.Principal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrNoTokenProvided)
	}

	commentID, err := parseID(c.Param("commentId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrCommentNotFound)
	}

	var req dto.CommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	view, err := r.CommentService.UpdateComment(c.Request().Context(), caller.ID, commentID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, commentsvc.ErrTextRequired):
			return c.JSON(http.StatusBadRequest, response.Error("Comment text is required"))
		case errors.Is(err, commentsvc.ErrForbidden):
			return c.JSON(http.StatusForbidden, response.Error("Unauthorized to edit this comment"))
		}
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, view)
}

// DeleteComment godoc
// @Summary Delete own comment
// @Tags comments
// @Produce json
// @Param commentId path int true "Comment ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/comments/{commentId} [delete]
func (r *Routers) DeleteComment(c echo.Context) error {
	const op = "http.routers.DeleteComment"
	log := r.log.With(slog.String("op", op))

	caller, ok := middleware.Principal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrNoTokenProvided)
	}

	commentID, err := parseID(c.Param("commentId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrCommentNotFound)
	}

	if err := r.CommentService.DeleteComment(c.Request().Context(), caller.ID, commentID); err != nil {
		if errors.Is(err, commentsvc.ErrForbidden) {
			return c.JSON(http.StatusForbidden, response.Error("Unauthorized to delete this comment"))
		}
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Message("Comment deleted successfully"))
}

// UserComments godoc
// @Summary Comments written by a user
// @Tags users
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} models.UserComment
// @Failure 400 {object} response.ErrorResponse
// @Router /api/user/comments [get]
func (r *Routers) UserComments(c echo.Context) error {
	const op = "http.routers.UserComments"
	log := r.log.With(slog.String("op", op))

	userID, err := parseID(c.QueryParam("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("User ID is required"))
	}

	comments, err := r.CommentService.UserComments(c.Request().Context(), userID)
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, comments)
}

// CommentNotifications godoc
// @Summary Unread comments for moderation
// @Tags admin
// @Produce json
// @Success 200 {array} models.CommentNotification
// @Security ApiKeyAuth
// @Router /api/admin/comment-notifications [get]
func (r *Routers) CommentNotifications(c echo.Context) error {
	const op = "http.routers.CommentNotifications"
	log := r.log.With(slog.String("op", op))

	comments, err := r.CommentService.Notifications(c.Request().Context())
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, comments)
}

// MarkCommentRead godoc
// @Summary Mark a comment read
// @Tags admin
// @Produce json
// @Param commentId path int true "Comment ID"
// @Success 200 {object} response.MessageResponse
// @Security ApiKeyAuth
// @Router /api/admin/mark-comment-read/{commentId} [post]
func (r *Routers) MarkCommentRead(c echo.Context) error {
	const op = "http.routers.MarkCommentRead"
	log := r.log.With(slog.String("op", op))

	commentID, err := parseID(c.Param("commentId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Missing comment ID"))
	}

	if err := r.CommentService.MarkRead(c.Request().Context(), commentID); err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Message("Comment marked as read"))
}

// MarkAllCommentsRead godoc
// @Summary Mark every comment read
// @Tags admin
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Security ApiKeyAuth
// @Router /api/admin/mark-all-comments-read [post]
func (r *Routers) MarkAllCommentsRead(c echo.Context) error {
	const op = "http.routers.MarkAllCommentsRead"
	log := r.log.With(slog.String("op", op))

	if _, err := r.CommentService.MarkAllRead(c.Request().Context()); err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Message("All comments marked as read"))
}

// ModerateComment godoc
// @Summary Remove any comment
// @Tags admin
// @Produce json
// @Param commentId path int true "Comment ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/comments/{commentId} [delete]
func (r *Routers) ModerateComment(c echo.Context) error {
	const op = "http.routers.ModerateComment"
	log := r.log.With(slog.String("op", op))

	commentID, err := parseID(c.Param("commentId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrCommentNotFound)
	}

	if err := r.CommentService.ModeratorDelete(c.Request().Context(), commentID); err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Message("Comment deleted successfully"))
}
