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

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
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

// AccountService manages the admin (backuser) accounts of the mobile app.
type AccountService struct {
	log    *slog.Logger
	repo   repository.BackuserRepository
	tokens TokenIssuer
}

func NewAccountService(log *slog.Logger, repo repository.BackuserRepository, tokens TokenIssuer) *AccountService {
	return &AccountService{
		log:    log,
		repo:   repo,
		tokens: tokens,
	}
}

// Login returns storage.ErrUserNotFound for unknown names and
// ErrInvalidCredentials for a wrong password.
func (s *AccountService) Login(ctx context.Context, username, password string) (models.Backuser, *models.TokenPair, error) {
	const op = "account_service.Login"
	log := s.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	log.Info("attempting to login admin")

	admin, err := s.repo.BackuserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("admin not found")
			metrics.AuthAttemptsTotal.WithLabelValues("admin", "fail").Inc()
		} else {
			log.Error("failed to get admin", sl.Err(err))
		}
		return models.Backuser{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(admin.Password, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))
		metrics.AuthAttemptsTotal.WithLabelValues("admin", "fail").Inc()
		return models.Backuser{}, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.tokens.GenerateTokens(ctx, principal(admin))
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))
		return models.Backuser{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("admin", "ok").Inc()
	log.Info("admin logged in successfully")

	return admin, pair, nil
}

func (s *AccountService) Profile(ctx context.Context, id int64) (models.Backuser, error) {
	const op = "account_service.Profile"

	admin, err := s.repo.BackuserByID(ctx, id)
	if err != nil {
		s.log.Warn("failed to get admin", slog.String("op", op), slog.Int64("admin_id", id), sl.Err(err))
		return models.Backuser{}, fmt.Errorf("%s: %w", op, err)
	}

	return admin, nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, b models.Backuser) error {
	const op = "account_service.UpdateProfile"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("admin_id", b.ID),
	)

	b.Username = strings.TrimSpace(b.Username)
	if b.Username == "" {
		return fmt.Errorf("%s: %w", op, ErrUsernameRequired)
	}

	if err := s.repo.UpdateBackuserProfile(ctx, b); err != nil {
		log.Warn("failed to update profile", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("profile updated")

	return nil
}

func (s *AccountService) UpdatePassword(ctx context.Context, id int64, current, next string) error {
	const op = "account_service.UpdatePassword"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("admin_id", id),
	)

	if len(next) > maxPasswordLen {
		log.Warn("new password too long")
		return fmt.Errorf("%s: %w", op, ErrPasswordTooLong)
	}

	admin, err := s.repo.BackuserByID(ctx, id)
	if err != nil {
		log.Warn("failed to get admin", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(admin.Password, []byte(current)); err != nil {
		log.Info("current password mismatch")
		return fmt.Errorf("%s: %w", op, ErrWrongPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.UpdateBackuserPassword(ctx, id, hash); err != nil {
		log.Error("failed to update password", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.tokens.RevokeAll(ctx, principal(admin)); err != nil {
		log.Warn("failed to revoke refresh tokens", sl.Err(err))
	}

	log.Info("password updated")

	return nil
}

// EnsureAdmin creates the bootstrap admin when no backuser exists yet.
func (s *AccountService) EnsureAdmin(ctx context.Context, username, password string) error {
	const op = "account_service.EnsureAdmin"
	log := s.log.With(slog.String("op", op))

	if username == "" || password == "" {
		log.Debug("bootstrap admin not configured")
		return nil
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("%s: admin.password: %w", op, ErrPasswordTooLong)
	}

	count, err := s.repo.CountBackusers(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveBackuser(ctx, models.Backuser{Username: username, Password: hash})
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("bootstrap admin created", slog.Int64("admin_id", id), slog.String("username", username))

	return nil
}

func principal(b models.Backuser) models.Principal {
	return models.Principal{ID: b.ID, Username: b.Username, Role: models.RoleAdmin}
}
