package dto

import "encoding/json"

// IDRequest reads an id sent either as a JSON number or a numeric string.
type IDRequest struct {
	ID json.Number `json:"id"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdatePasswordRequest struct {
	ID              json.Number `json:"id"`
	CurrentPassword string      `json:"currentPassword"`
	NewPassword     string      `json:"newPassword"`
}

type UpdateUserProfileRequest struct {
	ID           json.Number `json:"id"`
	Username     string      `json:"username"`
	ProfileImage *string     `json:"profileImage"`
}

type AuthResponse struct {
	Token        string  `json:"token"`
	RefreshToken string  `json:"refresh_token"`
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Avatar       *string `json:"avatar,omitempty"`
}

type UserProfileResponse struct {
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	ProfileImage *string `json:"profileImage"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type UploadResponse struct {
	Path string `json:"path"`
}
