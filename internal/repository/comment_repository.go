package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type CommentRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *CommentRepo) viewQuery() sq.SelectBuilder {
	return r.sb.Select(
		"c.id", "c.comment_text", "c.created_at",
		"c.user_id", "u.username", "u.profile_image",
	).
		From("comments c").
		Join("users u ON c.user_id = u.id")
}

func scanCommentView(row scanner) (models.CommentView, error) {
	var v models.CommentView
	err := row.Scan(&v.ID, &v.Text, &v.CreatedAt, &v.UserID, &v.Username, &v.ProfileImage)
	return v, err
}

func (r *CommentRepo) CommentsByPost(ctx context.Context, postID int64) ([]models.CommentView, error) {
	const op = "repository.comment_repository.CommentsByPost"

	query, args, err := r.viewQuery().
		Where(sq.Eq{"c.post_id": postID}).
		OrderBy("c.created_at ASC", "c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	views := make([]models.CommentView, 0)
	for rows.Next() {
		v, err := scanCommentView(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return views, nil
}

func (r *CommentRepo) CommentView(ctx context.Context, id int64) (models.CommentView, error) {
	const op = "repository.comment_repository.CommentView"

	query, args, err := r.viewQuery().
		Where(sq.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return models.CommentView{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	v, err := scanCommentView(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.CommentView{}, fmt.Errorf("%s: %w", op, storage.ErrCommentNotFound)
		}
		return models.CommentView{}, fmt.Errorf("%s: %w", op, err)
	}

	return v, nil
}

// SaveComment inserts the comment and returns it joined with its author.
func (r *CommentRepo) SaveComment(ctx context.Context, comment models.Comment) (models.CommentView, error) {
	const op = "repository.comment_repository.SaveComment"

	query, args, err := r.sb.Insert("comments").
		Columns("post_id", "user_id", "comment_text").
		Values(comment.PostID, comment.UserID, comment.Text).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.CommentView{}, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			if _, constraint := pgErrorCode(err); strings.Contains(constraint, "user_id") {
				return models.CommentView{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
			}
			return models.CommentView{}, fmt.Errorf("%s: %w", op, storage.ErrPostNotFound)
		}
		return models.CommentView{}, fmt.Errorf("%s: %w", op, err)
	}

	return r.CommentView(ctx, id)
}

func (r *CommentRepo) GetComment(ctx context.Context, id int64) (models.Comment, error) {
	const op = "repository.comment_repository.GetComment"

	query, args, err := r.sb.Select("id", "post_id", "user_id", "comment_text", "created_at", "is_read").
		From("comments").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var c models.Comment
	err = r.db.QueryRow(ctx, query, args...).Scan(&c.ID, &c.PostID, &c.UserID, &c.Text, &c.CreatedAt, &c.IsRead)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Comment{}, fmt.Errorf("%s: %w", op, storage.ErrCommentNotFound)
		}
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (r *CommentRepo) UpdateComment(ctx context.Context, id int64, text string) (models.CommentView, error) {
	const op = "repository.comment_repository.UpdateComment"

	query, args, err := r.sb.Update("comments").
		Set("comment_text", text).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.CommentView{}, fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return models.CommentView{}, fmt.Errorf("%s: %w", op, err)
	}
	if result.RowsAffected() == 0 {
		return models.CommentView{}, fmt.Errorf("%s: %w", op, storage.ErrCommentNotFound)
	}

	return r.CommentView(ctx, id)
}

func (r *CommentRepo) DeleteComment(ctx context.Context, id int64) error {
	const op = "repository.comment_repository.DeleteComment"

	query, args, err := r.sb.Delete("comments").
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
		return fmt.Errorf("%s: %w", op, storage.ErrCommentNotFound)
	}

	return nil
}

func (r *CommentRepo) CommentsByUser(ctx context.Context, userID int64) ([]models.UserComment, error) {
	const op = "repository.comment_repository.CommentsByUser"

	query, args, err := r.sb.Select(
		"c.id", "c.post_id", "c.user_id", "c.comment_text", "c.created_at", "c.is_read", "p.pname",
	).
		From("comments c").
		Join("blog_posts p ON c.post_id = p.id").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("c.created_at DESC", "c.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	comments := make([]models.UserComment, 0)
	for rows.Next() {
		var uc models.UserComment
		err := rows.Scan(&uc.ID, &uc.PostID, &uc.UserID, &uc.Text, &uc.CreatedAt, &uc.IsRead, &uc.PostTitle)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		comments = append(comments, uc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comments, nil
}

// UnreadComments feeds the admin inbox, newest first.
func (r *CommentRepo) UnreadComments(ctx context.Context, limit uint64) ([]models.CommentNotification, error) {
	const op = "repository.comment_repository.UnreadComments"

	query, args, err := r.sb.Select(
		"c.id", "c.comment_text", "c.created_at", "c.post_id", "c.user_id",
		"u.username", "u.profile_image", "p.pname", "p.pimage", "c.is_read",
	).
		From("comments c").
		Join("users u ON c.user_id = u.id").
		Join("blog_posts p ON c.post_id = p.id").
		Where(sq.Eq{"c.is_read": false}).
		OrderBy("c.created_at DESC", "c.id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	notifications := make([]models.CommentNotification, 0)
	for rows.Next() {
		var n models.CommentNotification
		err := rows.Scan(
			&n.ID,
			&n.Text,
			&n.CreatedAt,
			&n.PostID,
			&n.UserID,
			&n.Username,
			&n.ProfileImage,
			&n.PostName,
			&n.PostImage,
			&n.IsRead,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return notifications, nil
}

func (r *CommentRepo) MarkCommentRead(ctx context.Context, id int64) (bool, error) {
	const op = "repository.comment_repository.MarkCommentRead"

	query, args, err := r.sb.Update("comments").
		Set("is_read", true).
		Where(sq.Eq{"id": id, "is_read": false}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *CommentRepo) MarkAllCommentsRead(ctx context.Context) (int64, error) {
	const op = "repository.comment_repository.MarkAllCommentsRead"

	query, args, err := r.sb.Update("comments").
		Set("is_read", true).
		Where(sq.Eq{"is_read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return result.RowsAffected(), nil
}
