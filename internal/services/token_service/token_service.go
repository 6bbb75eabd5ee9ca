package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/lib/jwt"
	"nativeblog/internal/lib/logger/sl"
	"nativeblog/internal/repository"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenNotInStorage = errors.New("token not found in storage")
)

type TokenService struct {
	log        *slog.Logger
	repo       repository.TokenRepository
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(log *slog.Logger, repo repository.TokenRepository, secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		log:        log,
		repo:       repo,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Subject keys refresh tokens per account; users and backusers share id space
// so the role is part of it.
func Subject(p models.Principal) string {
	return fmt.Sprintf("%s:%d", p.Role, p.ID)
}

func (s *TokenService) GenerateTokens(ctx context.Context, p models.Principal) (*models.TokenPair, error) {
	const op = "token_service.GenerateTokens"

	accessToken, err := jwt.NewToken(p, jwt.KindAccess, s.secret, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := jwt.NewToken(p, jwt.KindRefresh, s.secret, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.SaveRefreshToken(ctx, Subject(p), refreshToken, s.refreshTTL); err != nil {
		s.log.Error("failed to store refresh token", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshTokens rotates a pair: the presented refresh token is consumed.
func (s *TokenService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "token_service.RefreshTokens"
	log := s.log.With(slog.String("op", op))

	claims, err := jwt.Parse(refreshToken, jwt.KindRefresh, s.secret)
	if err != nil {
		log.Info("rejected refresh token", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	p := claims.Principal()
	subject := Subject(p)

	exists, err := s.repo.GetRefreshToken(ctx, subject, refreshToken)
	if err != nil {
		log.Error("failed to look up refresh token", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		log.Info("refresh token not in storage", slog.String("subject", subject))
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, ErrTokenNotInStorage)
	}

	if err := s.repo.DeleteRefreshToken(ctx, subject, refreshToken); err != nil {
		log.Error("failed to delete refresh token", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GenerateTokens(ctx, p)
}

// RevokeAll drops every refresh token of the account.
func (s *TokenService) RevokeAll(ctx context.Context, p models.Principal) error {
	const op = "token_service.RevokeAll"

	if err := s.repo.DeleteAllUserTokens(ctx, Subject(p)); err != nil {
		s.log.Error("failed to revoke tokens", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
