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

type LikeRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewLikeRepository(db *pgxpool.Pool) *LikeRepo {
	return &LikeRepo{
		db: db,
		sb: statementBuilder(),
	}
}

// LikePost records the like and bumps the post counter in one transaction.
// It returns the counter after the increment.
func (r *LikeRepo) LikePost(ctx context.Context, userID, postID int64) (int, error) {
	const op = "repository.like_repository.LikePost"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	liked, err := r.isLiked(ctx, tx, userID, postID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if liked {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrAlreadyLiked)
	}

	query, args, err := r.sb.Update("blog_posts").
		Set("likes", sq.Expr("likes + 1")).
		Where(sq.Eq{"id": postID}).
		Suffix("RETURNING pname, likes").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var (
		postName string
		likes    int
	)
	if err := tx.QueryRow(ctx, query, args...).Scan(&postName, &likes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrPostNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = r.sb.Insert("user_likes").
		Columns("user_id", "post_id", "post_name").
		Values(userID, postID, postName).
		Suffix("ON CONFLICT (user_id, post_id) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	result, err := tx.Exec(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	// a concurrent like won the race after our pre-check
	if result.RowsAffected() == 0 {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrAlreadyLiked)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return likes, nil
}

func (r *LikeRepo) IsLiked(ctx context.Context, userID, postID int64) (bool, error) {
	const op = "repository.like_repository.IsLiked"

	liked, err := r.isLiked(ctx, r.db, userID, postID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return liked, nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *LikeRepo) isLiked(ctx context.Context, q querier, userID, postID int64) (bool, error) {
	query, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS (").
		From("user_likes").
		Where(sq.Eq{"user_id": userID, "post_id": postID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *LikeRepo) LikedPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	const op = "repository.like_repository.LikedPosts"

	columns := make([]string, len(postColumns))
	for i, c := range postColumns {
		columns[i] = "p." + c
	}

	query, args, err := r.sb.Select(columns...).
		From("blog_posts p").
		Join("user_likes l ON p.id = l.post_id").
		Where(sq.Eq{"l.user_id": userID}).
		OrderBy("p.stime DESC", "p.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	posts, err := collectPosts(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}
