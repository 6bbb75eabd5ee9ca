package http

import (
	"log/slog"
	"net/http"

	"nativeblog/internal/lib/logger/sl"
	"nativeblog/internal/transport/http/dto"
	"nativeblog/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// Refresh godoc
// @Summary Rotate a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/refresh [post]
func (r *Routers) Refresh(c echo.Context) error {
	const op = "http.routers.Refresh"
	log := r.log.With(slog.String("op", op))

	var req dto.RefreshRequest
	if err := c.Bind(&req); err != nil {
		log.Error("validation bind", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("Refresh token is required", err.Error()))
	}

	pair, err := r.AuthService.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		log.Info("error refresh tokens", sl.Err(err))
		return c.JSON(http.StatusUnauthorized, response.Error("Invalid refresh token"))
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
