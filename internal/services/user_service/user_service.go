package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/lib/logger/sl"
	"nativeblog/internal/metrics"
	"nativeblog/internal/repository"
	"nativeblog/internal/storage"
	"nativeblog/internal/transport/http/dto"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExist          = errors.New("user already exist")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrUsernameRequired   = errors.New("username is required")

	// ErrPasswordTooLong wraps bcrypt's sentinel so both match errors.Is.
	ErrPasswordTooLong = fmt.Errorf("password is longer than %d bytes: %w", maxPasswordLen, bcrypt.ErrPasswordTooLong)
)

// bcrypt only reads the first 72 bytes.
const maxPasswordLen = 72

type TokenIssuer interface {
	GenerateTokens(ctx context.Context, p models.Principal) (*models.TokenPair, error)
	RevokeAll(ctx context.Context, p models.Principal) error
}

type UserService struct {
	log    *slog.Logger
	repo   repository.UserRepository
	tokens TokenIssuer
}

func NewUserService(log *slog.Logger, repo repository.UserRepository, tokens TokenIssuer) *UserService {
	return &UserService{
		log:    log,
		repo:   repo,
		tokens: tokens,
	}
}

func (s *UserService) Signup(ctx context.Context, input dto.SignupRequest) (dto.AuthResponse, error) {
	const op = "user_service.Signup"
	log := s.log.With(
		slog.String("op", op),
		slog.String("username", input.Username),
	)

	log.Info("register user")

	if len(input.Password) > maxPasswordLen {
		log.Warn("password too long")
		return dto.AuthResponse{}, fmt.Errorf("%s: %w", op, ErrPasswordTooLong)
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	exists, err := s.repo.UserExists(ctx, username, email)
	if err != nil {
		log.Error("failed to check user", sl.Err(err))
		return dto.AuthResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		log.Warn("user already exist")
		return dto.AuthResponse{}, fmt.Errorf("%s: %w", op, ErrUserExist)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))
		return dto.AuthResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: passHash,
	}

	id, err := s.repo.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("user already exist", sl.Err(err))
			return dto.AuthResponse{}, fmt.Errorf("%s: %w", op, ErrUserExist)
		}
		log.Error("failed to save user", sl.Err(err))
		return dto.AuthResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	user.ID = id

	log.Info("user registered", slog.Int64("user_id", id))

	return s.authResponse(ctx, user)
}

// Signin accepts either the username or the email as identifier.
func (s *UserService) Signin(ctx context.Context, identifier, password string) (dto.AuthResponse, error) {
	const op = "user_service.Signin"
	log := s.log.With(
		slog.String("op", op),
		slog.String("username", identifier),
	)

	log.Info("attempting to login user")

	user, err := s.repo.UserByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found", sl.Err(err))
			metrics.AuthAttemptsTotal.WithLabelValues("user", "fail").Inc()
			return dto.AuthResponse{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		log.Error("failed to get user", sl.Err(err))
		return dto.AuthResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))
		metrics.AuthAttemptsTotal.WithLabelValues("user", "fail").Inc()
		return dto.AuthResponse{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("user", "ok").Inc()
	log.Info("user logged in successfully")

	resp, err := s.authResponse(ctx, user)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	resp.Avatar = user.ProfileImage

	return resp, nil
}

// UpdatePassword checks the current password and revokes every refresh
// token issued before the change.
func (s *UserService) UpdatePassword(ctx context.Context, id int64, current, next string) error {
	const op = "user_service.UpdatePassword"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("user_id", id),
	)

	if len(next) > maxPasswordLen {
		log.Warn("new password too long")
		return fmt.Errorf("%s: %w", op, ErrPasswordTooLong)
	}

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		log.Warn("failed to get user", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(current)); err != nil {
		log.Info("current password mismatch")
		return fmt.Errorf("%s: %w", op, ErrWrongPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		log.Error("failed to update password", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.tokens.RevokeAll(ctx, principal(user)); err != nil {
		log.Warn("failed to revoke refresh tokens", sl.Err(err))
	}

	log.Info("password updated")

	return nil
}

func (s *UserService) Profile(ctx context.Context, id int64) (models.User, error) {
	const op = "user_service.Profile"

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		s.log.Warn("failed to get user", slog.String("op", op), slog.Int64("user_id", id), sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id int64, username string, profileImage *string) error {
	const op = "user_service.UpdateProfile"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("user_id", id),
	)

	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("%s: %w", op, ErrUsernameRequired)
	}

	if err := s.repo.UpdateProfile(ctx, id, username, profileImage); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("username taken", slog.String("username", username))
			return fmt.Errorf("%s: %w", op, ErrUserExist)
		}
		log.Warn("failed to update profile", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("profile updated")

	return nil
}

func (s *UserService) authResponse(ctx context.Context, user models.User) (dto.AuthResponse, error) {
	const op = "user_service.authResponse"

	pair, err := s.tokens.GenerateTokens(ctx, principal(user))
	if err != nil {
		s.log.Error("failed to generate token", slog.String("op", op), sl.Err(err))
		return dto.AuthResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	return dto.AuthResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
	}, nil
}

func principal(u models.User) models.Principal {
	return models.Principal{ID: u.ID, Username: u.Username, Role: models.RoleUser}
}
