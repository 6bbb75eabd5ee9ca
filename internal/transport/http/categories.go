package http

import (
	"errors"
	"log/slog"
	"net/http"

	categorysvc "nativeblog/internal/services/category_service"
	"nativeblog/internal/transport/http/dto"
	"nativeblog/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// GetCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /api/categories [get]
func (r *Routers) GetCategories(c echo.Context) error {
	const op = "http.routers.GetCategories"
	log := r.log.With(slog.String("op", op))

	categories, err := r.CategoryService.ListCategories(c.Request().Context())
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, categories)
}

// AddCategory godoc
// @Summary Add a category
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CategoryRequest true "Category"
// @Success 201 {object} dto.CategoryMutationResponse
// @Failure 400 {object} response.ErrorResponse "Category name is required"
// @Failure 409 {object} response.ErrorResponse "Category already exists"
// @Security ApiKeyAuth
// @Router /api/add-category [post]
func (r *Routers) AddCategory(c echo.Context) error {
	const op = "http.routers.AddCategory"
	log := r.log.With(slog.String("op", op))

	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	category, err := r.CategoryService.AddCategory(c.Request().Context(), req.Name)
	if err != nil {
		if errors.Is(err, categorysvc.ErrNameRequired) {
			return c.JSON(http.StatusBadRequest, response.Error("Category name is required"))
		}
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusCreated, dto.CategoryMutationResponse{
		Message: "Category added successfully",
		Data:    category,
	})
}
