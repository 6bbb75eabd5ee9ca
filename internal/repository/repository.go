package repository

import (
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type Repository struct {
	db       *pgxpool.Pool
	Post     *PostRepo
	Category *CategoryRepo
	Comment  *CommentRepo
	Like     *LikeRepo
	User     *UserRepo
	Backuser *BackuserRepo
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db:       db,
		Post:     NewPostRepository(db),
		Category: NewCategoryRepository(db),
		Comment:  NewCommentRepository(db),
		Like:     NewLikeRepository(db),
		User:     NewUserRepository(db),
		Backuser: NewBackuserRepository(db),
	}
}

func (r *Repository) Close() {
	r.db.Close()
}

func statementBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func pgErrorCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return "", ""
}

func isUniqueViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == codeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == codeForeignKeyViolation
}

// escapeLike quotes the ILIKE wildcards so a search term matches literally.
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}
