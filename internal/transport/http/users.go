package http

import (
	"errors"
	"log/slog"
	"net/http"

	"nativeblog/internal/lib/logger/sl"
	"nativeblog/internal/middleware"
	usersvc "nativeblog/internal/services/user_service"
	"nativeblog/internal/transport/http/dto"
	"nativeblog/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// Signup godoc
// @Summary Register a reader account
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Account"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /api/user/signup [post]
func (r *Routers) Signup(c echo.Context) error {
	const op = "http.routers.Signup"
	log := r.log.With(slog.String("op", op))

	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("Username, email, and password are required.", err.Error()))
	}

	resp, err := r.UserService.Signup(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, usersvc.ErrUserExist) {
			return c.JSON(http.StatusBadRequest, response.ErrUserAlreadyExists)
		}
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// Signin godoc
// @Summary Sign in with username or email
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.SigninRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} response.ErrorResponse "Invalid credentials."
// @Router /api/user/signin [post]
func (r *Routers) Signin(c echo.Context) error {
	const op = "http.routers.Signin"
	log := r.log.With(slog.String("op", op))

	var req dto.SigninRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("Username (or email) and password are required.", err.Error()))
	}

	resp, err := r.UserService.Signin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usersvc.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, response.ErrInvalidCredentials)
		}
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// UpdateUserPassword godoc
// @Summary Change a reader password
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpdatePasswordRequest true "Passwords"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/user/update-password [post]
func (r *Routers) UpdateUserPassword(c echo.Context) error {
	const op = "http.routers.UpdateUserPassword"
	log := r.log.With(slog.String("op", op))

	var req dto.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, response.Error("User ID is required"))
	}
	id, err := numberID(req.ID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid User ID"))
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, response.Error("Current and new password are required"))
	}

	if err := r.UserService.UpdatePassword(c.Request().Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, usersvc.ErrWrongPassword) {
			return c.JSON(http.StatusBadRequest, response.Error("Current password is incorrect"))
		}
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Message("Password updated successfully"))
}

// GetUserProfile godoc
// @Summary Reader profile
// @Tags users
// @Produce json
// @Param id query int true "User ID"
// @Success 200 {object} dto.UserProfileResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/user/get-profile [get]
func (r *Routers) GetUserProfile(c echo.Context) error {
	const op = "http.routers.GetUserProfile"
	log := r.log.With(slog.String("op", op))

	id, err := parseID(c.QueryParam("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("User id is required"))
	}

	user, err := r.UserService.Profile(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, dto.UserProfileResponse{
		Username:     user.Username,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
	})
}

// UpdateUserProfile godoc
// @Summary Change own username or avatar
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserProfileRequest true "Profile"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/user/update-profile [post]
func (r *Routers) UpdateUserProfile(c echo.Context) error {
	const op = "http.routers.UpdateUserProfile"
	log := r.log.With(slog.String("op", op))

	caller, ok := middleware.Principal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrNoTokenProvided)
	}

	var req dto.UpdateUserProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	id := caller.ID
	if req.ID != "" {
		parsed, err := numberID(req.ID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.Error("Invalid User ID"))
		}
		id = parsed
	}
	if id != caller.ID {
		return c.JSON(http.StatusForbidden, response.Error("Cannot update another user's profile"))
	}

	err := r.UserService.UpdateProfile(c.Request().Context(), id, req.Username, req.ProfileImage)
	if err != nil {
		switch {
		case errors.Is(err, usersvc.ErrUsernameRequired):
			return c.JSON(http.StatusBadRequest, response.Error("Username is required"))
		case errors.Is(err, usersvc.ErrUserExist):
			return c.JSON(http.StatusBadRequest, response.ErrUserAlreadyExists)
		}
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Message("Profile updated successfully"))
}

// UploadAvatar godoc
// @Summary Upload an avatar image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Image"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} response.ErrorResponse "No file uploaded"
// @Failure 413 {object} response.ErrorResponse
// @Failure 415 {object} response.ErrorResponse
// @Router /api/upload-avatar [post]
func (r *Routers) UploadAvatar(c echo.Context) error {
	const op = "http.routers.UploadAvatar"
	log := r.log.With(slog.String("op", op))

	file, err := c.FormFile("avatar")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("No file uploaded"))
	}

	log.Debug("got avatar", slog.String("filename", file.Filename), slog.Int64("size", file.Size))

	src, err := file.Open()
	if err != nil {
		return serviceError(c, log, err)
	}
	defer src.Close()

	upload, err := r.UploadService.UploadImage(c.Request().Context(), "avatar", src)
	if err != nil {
		return serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, dto.UploadResponse{Path: upload.Path})
}
