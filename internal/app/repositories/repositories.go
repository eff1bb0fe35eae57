package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/courseleads/internal/pkg/apperrors"
	"github.com/yigit/courseleads/internal/pkg/dberrors"
	"github.com/yigit/courseleads/internal/pkg/logger"
)

// DBTX is the subset of *pgxpool.Pool (and pgx.Tx) the repositories use
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql builds every statement with $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository  *CourseRepository
	LeadRepository    *LeadRepository
	CommentRepository *CommentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		CourseRepository:  NewCourseRepository(db),
		LeadRepository:    NewLeadRepository(db),
		CommentRepository: NewCommentRepository(db),
	}
}

// storageError logs err with the failing operation and wraps it for the caller
func storageError(ctx context.Context, op string, err error) error {
	event := logger.Ctx(ctx).Error().Err(err).Str("op", op)
	if code := dberrors.Code(err); code != "" {
		event = event.Str("sqlstate", code)
	}
	if dberrors.IsCheckViolation(err) {
		event = event.Bool("check_violation", true)
	}
	if dberrors.IsBadIdentifier(err) {
		event = event.Bool("bad_identifier", true)
	}
	if dberrors.IsCanceled(err) {
		event = event.Bool("canceled", true)
	}
	event.Msg("Database operation failed")
	return apperrors.NewStorageError(op, err)
}
