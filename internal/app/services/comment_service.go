package services

import (
	"context"

	"github.com/yigit/courseleads/internal/app/models"
	"github.com/yigit/courseleads/internal/app/models/dto"
	"github.com/yigit/courseleads/internal/pkg/apperrors"
	"github.com/yigit/courseleads/internal/pkg/coerce"
)

// CommentService handles comments on leads
type CommentService struct {
	commentRepo CommentStore
}

// NewCommentService creates a new comment service instance
func NewCommentService(commentRepo CommentStore) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// ParseCreateComment coerces a comment request. Only the empty string is rejected as a comment;
// whitespace-only text and an absent comment ("undefined") are accepted.
func ParseCreateComment(req dto.CreateCommentRequest) (models.CreateComment, error) {
	leadID, ok := coerce.Int(req.LeadID)
	if !ok {
		return models.CreateComment{}, apperrors.NewValidationError(apperrors.MsgInvalidInput).WithField("lead_id")
	}
	instructorID, ok := coerce.Int(req.InstructorID)
	if !ok {
		return models.CreateComment{}, apperrors.NewValidationError(apperrors.MsgInvalidInput).WithField("instructor_id")
	}

	cmd := models.CreateComment{
		LeadID:       leadID,
		InstructorID: instructorID,
		Comment:      coerce.Text(req.Comment),
	}
	if err := validate(cmd, apperrors.MsgInvalidInput); err != nil {
		return models.CreateComment{}, err
	}
	return cmd, nil
}

// AddComment stores a comment. Neither the lead nor the instructor is checked for existence.
func (s *CommentService) AddComment(ctx context.Context, req dto.CreateCommentRequest) (*models.Comment, error) {
	cmd, err := ParseCreateComment(req)
	if err != nil {
		return nil, err
	}

	comment := cmd.Row()
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
