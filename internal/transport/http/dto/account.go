package dto

import "encoding/json"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateBackuserProfileRequest struct {
	ID           json.Number `json:"id"`
	Username     string      `json:"username"`
	ProfileImage *string     `json:"profileImage"`
	DarkMode     bool        `json:"darkMode"`
}

type BackuserProfileResponse struct {
	Username     string  `json:"username"`
	ProfileImage *string `json:"profileimage"`
	DarkMode     bool    `json:"darkmode"`
}
