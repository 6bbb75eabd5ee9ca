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

type UserRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
		sb: statementBuilder(),
	}
}

func scanUser(row scanner) (models.User, error) {
	var (
		user     models.User
		password string
	)

	err := row.Scan(&user.ID, &user.Username, &user.Email, &password, &user.ProfileImage)
	user.Password = []byte(password)

	return user, err
}

func (r *UserRepo) SaveUser(ctx context.Context, user models.User) (int64, error) {
	const op = "repository.user_repository.SaveUser"

	query, args, err := r.sb.Insert("users").
		Columns("username", "email", "password").
		Values(user.Username, user.Email, string(user.Password)).
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

// UserByIdentifier matches either the username or the email.
func (r *UserRepo) UserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	const op = "repository.user_repository.UserByIdentifier"

	query, args, err := r.sb.Select("id", "username", "email", "password", "profile_image").
		From("users").
		Where(sq.Or{
			sq.Eq{"username": identifier},
			sq.Eq{"email": identifier},
		}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (r *UserRepo) UserExists(ctx context.Context, username, email string) (bool, error) {
	const op = "repository.user_repository.UserExists"

	query, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS (").
		From("users").
		Where(sq.Or{
			sq.Eq{"username": username},
			sq.Eq{"email": email},
		}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (r *UserRepo) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	const op = "repository.user_repository.GetUserByID"

	query, args, err := r.sb.Select("id", "username", "email", "password", "profile_image").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, hash []byte) error {
	const op = "repository.user_repository.UpdatePassword"

	query, args, err := r.sb.Update("users").
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

func (r *UserRepo) UpdateProfile(ctx context.Context, id int64, username string, profileImage *string) error {
	const op = "repository.user_repository.UpdateProfile"

	query, args, err := r.sb.Update("users").
		Set("username", username).
		Set("profile_image", profileImage).
		Where(sq.Eq{"id": id}).
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
