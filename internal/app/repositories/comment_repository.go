package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/courseleads/internal/app/models"
)

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db DBTX
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment and sets its generated ID
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	const op = "add comment"

	sql, args, err := psql.Insert("comments").
		Columns("lead_id", "instructor_id", "comment").
		Values(comment.LeadID, comment.InstructorID, comment.Comment).
		Suffix("RETURNING comment_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&comment.ID); err != nil {
		return storageError(ctx, op, err)
	}

	return nil
}
