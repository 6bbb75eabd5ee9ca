package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var postColumns = []string{
	"id", "pimage", "pname", "aname", "img_alt", "img_title",
	"pdesc", "cname", "up_date", "stime", "views", "likes", "is_read",
}

type PostRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPostRepository(db *pgxpool.Pool) *PostRepo {
	return &PostRepo{
		db: db,
		sb: statementBuilder(),
	}
}

func scanPost(row scanner) (models.Post, error) {
	var post models.Post

	err := row.Scan(
		&post.ID,
		&post.Image,
		&post.Title,
		&post.Author,
		&post.ImgAlt,
		&post.ImgTitle,
		&post.Body,
		&post.Category,
		&post.UpDate,
		&post.STime,
		&post.Views,
		&post.Likes,
		&post.Read,
	)

	return post, err
}

func collectPosts(rows pgx.Rows) ([]models.Post, error) {
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func (r *PostRepo) SavePost(ctx context.Context, post models.Post) (models.Post, error) {
	const op = "repository.post_repository.SavePost"

	query, args, err := r.sb.Insert("blog_posts").
		Columns(
			"pimage",
			"pname",
			"aname",
			"img_alt",
			"img_title",
			"pdesc",
			"cname",
			"up_date",
			"stime",
		).
		Values(
			post.Image,
			post.Title,
			post.Author,
			post.ImgAlt,
			post.ImgTitle,
			post.Body,
			post.Category,
			post.UpDate,
			post.STime,
		).
		Suffix("RETURNING " + strings.Join(postColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	saved, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func (r *PostRepo) GetPostByID(ctx context.Context, id int64) (models.Post, error) {
	const op = "repository.post_repository.GetPostByID"

	query, args, err := r.sb.Select(postColumns...).
		From("blog_posts").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	post, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Post{}, fmt.Errorf("%s: %w", op, storage.ErrPostNotFound)
		}
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

// ListPosts returns posts newest scheduled first, narrowed by the filter.
func (r *PostRepo) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	const op = "repository.post_repository.ListPosts"

	builder := r.sb.Select(postColumns...).
		From("blog_posts").
		OrderBy("stime DESC", "id DESC")

	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"pname": "%" + escapeLike(filter.Search) + "%"})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"cname": filter.Category})
	}
	if filter.ExcludeID != 0 {
		builder = builder.Where(sq.NotEq{"id": filter.ExcludeID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
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

func (r *PostRepo) PopularPosts(ctx context.Context, limit uint64) ([]models.Post, error) {
	const op = "repository.post_repository.PopularPosts"

	query, args, err := r.sb.Select(postColumns...).
		From("blog_posts").
		OrderBy("views DESC", "id DESC").
		Limit(limit).
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

// IncrementViews bumps the counter in a single statement and returns the new value.
func (r *PostRepo) IncrementViews(ctx context.Context, id int64) (int, error) {
	const op = "repository.post_repository.IncrementViews"

	query, args, err := r.sb.Update("blog_posts").
		Set("views", sq.Expr("views + 1")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING views").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var views int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&views); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrPostNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return views, nil
}

// UpdatePost writes the non-nil fields of upd.
func (r *PostRepo) UpdatePost(ctx context.Context, upd models.PostUpdate) (models.Post, error) {
	const op = "repository.post_repository.UpdatePost"

	fields := map[string]interface{}{}
	if upd.Image != nil {
		fields["pimage"] = *upd.Image
	}
	if upd.Title != nil {
		fields["pname"] = *upd.Title
	}
	if upd.Author != nil {
		fields["aname"] = *upd.Author
	}
	if upd.ImgAlt != nil {
		fields["img_alt"] = *upd.ImgAlt
	}
	if upd.ImgTitle != nil {
		fields["img_title"] = *upd.ImgTitle
	}
	if upd.Body != nil {
		fields["pdesc"] = *upd.Body
	}
	if upd.Category != nil {
		fields["cname"] = *upd.Category
	}
	if upd.UpDate != nil {
		fields["up_date"] = *upd.UpDate
	}
	if upd.STime != nil {
		fields["stime"] = *upd.STime
	}

	if len(fields) == 0 {
		return r.GetPostByID(ctx, upd.ID)
	}

	query, args, err := r.sb.Update("blog_posts").
		SetMap(fields).
		Where(sq.Eq{"id": upd.ID}).
		Suffix("RETURNING " + strings.Join(postColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	post, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Post{}, fmt.Errorf("%s: %w", op, storage.ErrPostNotFound)
		}
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

func (r *PostRepo) DeletePost(ctx context.Context, id int64) error {
	const op = "repository.post_repository.DeletePost"

	query, args, err := r.sb.Delete("blog_posts").
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
		return fmt.Errorf("%s: %w", op, storage.ErrPostNotFound)
	}

	return nil
}

// Notifications lists published posts, most recently updated first.
func (r *PostRepo) Notifications(ctx context.Context, now time.Time, limit uint64) ([]models.Post, error) {
	const op = "repository.post_repository.Notifications"

	query, args, err := r.sb.Select(postColumns...).
		From("blog_posts").
		Where(sq.LtOrEq{"stime": now}).
		OrderBy("up_date DESC NULLS LAST", "stime DESC").
		Limit(limit).
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

// MarkRead flips the read flag once; later calls change nothing.
func (r *PostRepo) MarkRead(ctx context.Context, id int64) (bool, error) {
	const op = "repository.post_repository.MarkRead"

	query, args, err := r.sb.Update("blog_posts").
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
