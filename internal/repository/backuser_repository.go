package repository

import (
	"context"
	"errors"
	"fmt"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type BackuserRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewBackuserRepository(db *pgxpool.Pool) *BackuserRepo {
	return &BackuserRepo{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *BackuserRepo) backuser(ctx context.Context, op string, where sq.Eq) (models.Backuser, error) {
	query, args, err := r.sb.Select("id", "username", "password", "profileimage", "darkmode").
		From("backusers").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Backuser{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var (
		b        models.Backuser
		password string
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(&b.ID, &b.Username, &password, &b.ProfileImage, &b.DarkMode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Backuser{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return models.Backuser{}, fmt.Errorf("%s: %w", op, err)
	}
	b.Password = []byte(password)

	return b, nil
}

func (r *BackuserRepo) BackuserByUsername(ctx context.Context, username string) (models.Backuser, error) {
	return r.backuser(ctx, "repository.backuser_repository.BackuserByUsername", sq.Eq{"username": username})
}

func (r *BackuserRepo) BackuserByID(ctx context.Context, id int64) (models.Backuser, error) {
	return r.backuser(ctx, "repository.backuser_repository.BackuserByID", sq.Eq{"id": id})
}

func (r *BackuserRepo) SaveBackuser(ctx context.Context, b models.Backuser) (int64, error) {
	const op = "repository.backuser_repository.SaveBackuser"

	query, args, err := r.sb.Insert("backusers").
		Columns("username", "password", "profileimage", "darkmode").
		Values(b.Username, string(b.Password), b.ProfileImage, b.DarkMode).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *BackuserRepo) CountBackusers(ctx context.Context) (int64, error) {
	const op = "repository.backuser_repository.CountBackusers"

	query, args, err := r.sb.Select("COUNT(*)").From("backusers").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

func (r *BackuserRepo) UpdateBackuserProfile(ctx context.Context, b models.Backuser) error {
	const op = "repository.backuser_repository.UpdateBackuserProfile"

	query, args, err := r.sb.Update("backusers").
		Set("username", b.Username).
		Set("profileimage", b.ProfileImage).
		Set("darkmode", b.DarkMode).
		Where(sq.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	return nil
}

func (r *BackuserRepo) UpdateBackuserPassword(ctx context.Context, id int64, hash []byte) error {
	const op = "repository.backuser_repository.UpdateBackuserPassword"

	query, args, err := r.sb.Update("backusers").
		Set("password", string(hash)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	return nil
}
