package repository

import (
	"context"
	"fmt"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

type CategoryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *CategoryRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "repository.category_repository.ListCategories"

	query, args, err := r.sb.Select("id", "name").
		From("categories").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

func (r *CategoryRepo) SaveCategory(ctx context.Context, name string) (models.Category, error) {
	const op = "repository.category_repository.SaveCategory"

	query, args, err := r.sb.Insert("categories").
		Columns("name").
		Values(name).
		Suffix("RETURNING id, name").
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	var c models.Category
	if err := r.db.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Name); err != nil {
		if isUniqueViolation(err) {
			return models.Category{}, fmt.Errorf("%s: %w", op, storage.ErrCategoryExists)
		}
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}
