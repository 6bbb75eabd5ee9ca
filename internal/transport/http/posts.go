package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"nativeblog/internal/lib/logger/sl"
	postsvc "nativeblog/internal/services/post_service"
	"nativeblog/internal/transport/http/dto"
	"nativeblog/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// GetPosts godoc
// @Summary List posts
// @Description All posts, newest scheduled time first.
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Failure 500 {object} response.ErrorResponse
// @Router /api/get-posts [get]
func (r *Routers) GetPosts(c echo.Context) error {
	const op = "http.routers.GetPosts"
	log := r.log.With(slog.String("op", op))

	posts, err := r.PostService.ListPosts(c.Request().Context())
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Param format query string false "html adds the rendered body"
// @Success 200 {object} models.Post
// @Failure 404 {object} response.ErrorResponse "Post not found"
// @Router /api/get-posts/{id} [get]
func (r *Routers) GetPost(c echo.Context) error {
	const op = "http.routers.GetPost"
	log := r.log.With(slog.String("op", op))

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrPostNotFound)
	}

	post, err := r.PostService.GetPost(c.Request().Context(), id, c.QueryParam("format") == "html")
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, post)
}

// PopularPosts godoc
// @Summary Most viewed posts
// @Tags posts
// @Produce json
// @Success 200 {array} models.PopularPost
// @Router /api/popular-posts [get]
func (r *Routers) PopularPosts(c echo.Context) error {
	const op = "http.routers.PopularPosts"
	log := r.log.With(slog.String("op", op))

	posts, err := r.PostService.PopularPosts(c.Request().Context())
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, posts)
}

// RelatedPosts godoc
// @Summary Posts of the same category
// @Tags posts
// @Produce json
// @Param category path string true "Category name"
// @Param currentPostId path int true "Post to exclude"
// @Success 200 {array} models.Post
// @Router /api/related-posts/{category}/{currentPostId} [get]
func (r *Routers) RelatedPosts(c echo.Context) error {
	const op = "http.routers.RelatedPosts"
	log := r.log.With(slog.String("op", op))

	currentID, err := parseID(c.Param("currentPostId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid post ID"))
	}

	posts, err := r.PostService.RelatedPosts(c.Request().Context(), c.Param("category"), currentID)
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, posts)
}

// SearchPosts godoc
// @Summary Search posts by title
// @Tags posts
// @Produce json
// @Param pname query string false "Title substring"
// @Param filter query string false "Category, empty or All for every category"
// @Success 200 {array} dto.SearchPostResponse
// @Router /api/search-posts [get]
func (r *Routers) SearchPosts(c echo.Context) error {
	const op = "http.routers.SearchPosts"
	log := r.log.With(slog.String("op", op))

	posts, err := r.PostService.SearchPosts(c.Request().Context(), c.QueryParam("pname"), c.QueryParam("filter"))
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, dto.ToSearchPostResponses(posts))
}

// IncrementViews godoc
// @Summary Count a view
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.ViewsResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/increment-views/{id} [put]
func (r *Routers) IncrementViews(c echo.Context) error {
	const op = "http.routers.IncrementViews"
	log := r.log.With(slog.String("op", op))

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrPostNotFound)
	}

	views, err := r.PostService.IncrementViews(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, dto.ViewsResponse{
		Message:       "Post views incremented successfully",
		NewViewsCount: views,
	})
}

// AddPost godoc
// @Summary Create a post
// @Description Multipart form. Either an uploaded file or an image URL is required.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "Post image"
// @Param image formData string false "Image URL"
// @Param pname formData string true "Title"
// @Param aname formData string false "Author"
// @Param pdesc formData string false "Body"
// @Param cname formData string false "Category"
// @Param stime formData string false "Scheduled time"
// @Success 201 {object} dto.PostMutationResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 413 {object} response.ErrorResponse
// @Failure 415 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/add-post [post]
func (r *Routers) AddPost(c echo.Context) error {
	const op = "http.routers.AddPost"
	log := r.log.With(slog.String("op", op))

	var input dto.CreatePostInput
	if err := c.Bind(&input); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	ctx := c.Request().Context()

	file, fileErr := c.FormFile("file")
	if fileErr != nil && strings.TrimSpace(input.Image) == "" {
		return c.JSON(http.StatusBadRequest, response.Error("No file uploaded or image URL provided"))
	}

	if err := c.Validate(input); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("Post title is required", err.Error()))
	}

	var uploaded string
	if fileErr == nil {
		src, err := file.Open()
		if err != nil {
			return serviceError(c, log, err)
		}
		defer src.Close()

		upload, err := r.UploadService.UploadImage(ctx, "post", src)
		if err != nil {
			return serviceError(c, log, err)
		}
		uploaded = upload.Path
		input.Image = upload.Path
	}

	post, err := r.PostService.CreatePost(ctx, input)
	if err != nil {
		if uploaded != "" {
			r.UploadService.Remove(ctx, uploaded)
		}
		if errors.Is(err, postsvc.ErrTitleRequired) {
			return c.JSON(http.StatusBadRequest, response.Error("Post title is required"))
		}
		return serviceError(c, log, err)
	}

	log.Info("post created", slog.Int64("post_id", post.ID))

	return c.JSON(http.StatusCreated, dto.PostMutationResponse{
		Message: "Post file uploaded and data saved successfully",
		Data:    post,
	})
}

// updatePostFields lists the form keys an update may carry.
var updatePostFields = []string{"image", "pname", "aname", "img_alt", "img_title", "pdesc", "cname", "up_date", "stime"}

// UpdatePost godoc
// @Summary Update a post
// @Description JSON or multipart. Only the supplied fields change; a new file replaces the image.
// @Tags admin
// @Accept json,mpfd
// @Produce json
// @Param request body dto.UpdatePostInput true "Fields to change"
// @Success 200 {object} dto.PostMutationResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/update-post [put]
func (r *Routers) UpdatePost(c echo.Context) error {
	const op = "http.routers.UpdatePost"
	log := r.log.With(slog.String("op", op))

	ctx := c.Request().Context()

	var input dto.UpdatePostInput
	var uploaded string

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
		}

		values := make(map[string]*string, len(updatePostFields))
		for _, key := range updatePostFields {
			if v, ok := form.Value[key]; ok && len(v) > 0 {
				val := v[0]
				values[key] = &val
			}
		}
		if v := form.Value["id"]; len(v) > 0 {
			input.ID = json.Number(strings.TrimSpace(v[0]))
		}
		input.Image = values["image"]
		input.Title = values["pname"]
		input.Author = values["aname"]
		input.ImgAlt = values["img_alt"]
		input.ImgTitle = values["img_title"]
		input.Body = values["pdesc"]
		input.Category = values["cname"]
		input.UpDate = values["up_date"]
		input.STime = values["stime"]

		if files := form.File["file"]; len(files) > 0 {
			src, err := files[0].Open()
			if err != nil {
				return serviceError(c, log, err)
			}
			defer src.Close()

			upload, err := r.UploadService.UploadImage(ctx, "post", src)
			if err != nil {
				return serviceError(c, log, err)
			}
			uploaded = upload.Path
			input.Image = &upload.Path
		}
	} else if err := c.Bind(&input); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	id, err := numberID(input.ID)
	if err != nil {
		if uploaded != "" {
			r.UploadService.Remove(ctx, uploaded)
		}
		return c.JSON(http.StatusBadRequest, response.Error("Post ID is required"))
	}

	post, err := r.PostService.UpdatePost(ctx, id, input)
	if err != nil {
		if uploaded != "" {
			r.UploadService.Remove(ctx, uploaded)
		}
		if errors.Is(err, postsvc.ErrTitleRequired) {
			return c.JSON(http.StatusBadRequest, response.Error("Post title is required"))
		}
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, dto.PostMutationResponse{
		Message: "Post updated successfully",
		Data:    post,
	})
}

// DeletePost godoc
// @Summary Delete a post
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.IDRequest true "Post ID"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/delete-post [delete]
func (r *Routers) DeletePost(c echo.Context) error {
	const op = "http.routers.DeletePost"
	log := r.log.With(slog.String("op", op))

	var req dto.IDRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	id, err := numberID(req.ID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Post ID is required"))
	}

	if err := r.PostService.DeletePost(c.Request().Context(), id); err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Message("Post deleted successfully"))
}

// Notifications godoc
// @Summary Latest published posts for the admin inbox
// @Tags admin
// @Produce json
// @Success 200 {array} models.Post
// @Security ApiKeyAuth
// @Router /api/notifications [get]
func (r *Routers) Notifications(c echo.Context) error {
	const op = "http.routers.Notifications"
	log := r.log.With(slog.String("op", op))

	posts, err := r.PostService.Notifications(c.Request().Context())
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, posts)
}

// MarkNotificationRead godoc
// @Summary Mark a post notification read
// @Description The id comes from the path or from a JSON body. Repeated calls succeed.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int false "Post ID"
// @Param request body dto.IDRequest false "Post ID"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/mark-notification-read/{id} [post]
func (r *Routers) MarkNotificationRead(c echo.Context) error {
	const op = "http.routers.MarkNotificationRead"
	log := r.log.With(slog.String("op", op))

	raw := c.Param("id")
	if raw == "" {
		var req dto.IDRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
		}
		raw = req.ID.String()
	}

	id, err := parseID(raw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Missing notification ID"))
	}

	if err := r.PostService.MarkNotificationRead(c.Request().Context(), id); err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Message("Notification marked as read"))
}
