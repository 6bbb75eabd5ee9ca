package http

import (
	"errors"
	"log/slog"
	"net/http"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/lib/logger/sl"
	"nativeblog/internal/middleware"
	accountsvc "nativeblog/internal/services/account_service"
	"nativeblog/internal/storage"
	"nativeblog/internal/transport/http/dto"
	"nativeblog/internal/transport/http/dto/response"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// Login godoc
// @Summary Admin login
// @Description Returns a bearer token with the admin role and opens a cookie session.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"
	log := r.log.With(slog.String("op", op))

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Missing credentials"))
	}

	admin, pair, err := r.AccountService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, response.ErrUserNotFound)
		case errors.Is(err, accountsvc.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, response.ErrInvalidCredentials)
		}
		return serviceError(c, log, err)
	}

	sess, err := session.Get(middleware.SessionName, c)
	if err == nil {
		sess.Values[middleware.SessionAdminID] = admin.ID
		sess.Values[middleware.SessionUsername] = admin.Username
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			log.Warn("failed to save session", sl.Err(err))
		}
	} else {
		log.Warn("session unavailable", sl.Err(err))
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// GetAdminProfile godoc
// @Summary Admin profile
// @Tags admin
// @Produce json
// @Param id query int false "Backuser ID, defaults to the caller"
// @Success 200 {object} dto.BackuserProfileResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/get-profile [get]
func (r *Routers) GetAdminProfile(c echo.Context) error {
	const op = "http.routers.GetAdminProfile"
	log := r.log.With(slog.String("op", op))

	id, err := r.adminTarget(c, c.QueryParam("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid User ID"))
	}

	admin, err := r.AccountService.Profile(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, dto.BackuserProfileResponse{
		Username:     admin.Username,
		ProfileImage: admin.ProfileImage,
		DarkMode:     admin.DarkMode,
	})
}

// UpdateAdminProfile godoc
// @Summary Change admin profile
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateBackuserProfileRequest true "Profile"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/update-profile [post]
func (r *Routers) UpdateAdminProfile(c echo.Context) error {
	const op = "http.routers.UpdateAdminProfile"
	log := r.log.With(slog.String("op", op))

	var req dto.UpdateBackuserProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	id, err := r.adminTarget(c, req.ID.String())
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid User ID"))
	}

	err = r.AccountService.UpdateProfile(c.Request().Context(), models.Backuser{
		ID:           id,
		Username:     req.Username,
		ProfileImage: req.ProfileImage,
		DarkMode:     req.DarkMode,
	})
	if err != nil {
		switch {
		case errors.Is(err, accountsvc.ErrUsernameRequired):
			return c.JSON(http.StatusBadRequest, response.Error("Username is required"))
		case errors.Is(err, storage.ErrUserExists):
			return c.JSON(http.StatusBadRequest, response.Error("Username already exists"))
		}
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Message("Profile updated successfully"))
}

// UpdateAdminPassword godoc
// @Summary Change admin password
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.UpdatePasswordRequest true "Passwords"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/update-password [post]
func (r *Routers) UpdateAdminPassword(c echo.Context) error {
	const op = "http.routers.UpdateAdminPassword"
	log := r.log.With(slog.String("op", op))

	var req dto.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	id, err := r.adminTarget(c, req.ID.String())
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid User ID"))
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, response.Error("Current and new password are required"))
	}

	if err := r.AccountService.UpdatePassword(c.Request().Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, accountsvc.ErrWrongPassword) {
			return c.JSON(http.StatusBadRequest, response.Error("Current password is incorrect"))
		}
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Message("Password updated successfully"))
}

// adminTarget resolves the backuser an admin request acts on: the given id,
// or the caller when none is sent.
func (r *Routers) adminTarget(c echo.Context, raw string) (int64, error) {
	if raw != "" {
		return parseID(raw)
	}

	caller, ok := middleware.Principal(c)
	if !ok {
		return 0, errInvalidID
	}

	return caller.ID, nil
}
