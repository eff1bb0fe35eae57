package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseleads/internal/app/models"
	"github.com/yigit/courseleads/internal/app/models/dto"
	"github.com/yigit/courseleads/internal/pkg/apperrors"
)

func TestParseCreateComment(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateCommentRequest
		want    models.CreateComment
		wantErr bool
	}{
		{
			name: "valid",
			req:  dto.CreateCommentRequest{LeadID: raw(`1`), InstructorID: raw(`"2"`), Comment: raw(`"Great fit"`)},
			want: models.CreateComment{LeadID: 1, InstructorID: 2, Comment: "Great fit"},
		},
		{
			name: "whitespace-only comment is accepted",
			req:  dto.CreateCommentRequest{LeadID: raw(`1`), InstructorID: raw(`2`), Comment: raw(`"   "`)},
			want: models.CreateComment{LeadID: 1, InstructorID: 2, Comment: "   "},
		},
		{
			name: "absent comment is stored as undefined",
			req:  dto.CreateCommentRequest{LeadID: raw(`1`), InstructorID: raw(`2`)},
			want: models.CreateComment{LeadID: 1, InstructorID: 2, Comment: "undefined"},
		},
		{
			name: "numeric comment is coerced",
			req:  dto.CreateCommentRequest{LeadID: raw(`1`), InstructorID: raw(`2`), Comment: raw(`0`)},
			want: models.CreateComment{LeadID: 1, InstructorID: 2, Comment: "0"},
		},
		{
			name:    "empty comment",
			req:     dto.CreateCommentRequest{LeadID: raw(`1`), InstructorID: raw(`2`), Comment: raw(`""`)},
			wantErr: true,
		},
		{
			name:    "lead zero",
			req:     dto.CreateCommentRequest{LeadID: raw(`0`), InstructorID: raw(`2`), Comment: raw(`"x"`)},
			wantErr: true,
		},
		{
			name:    "lead missing",
			req:     dto.CreateCommentRequest{InstructorID: raw(`2`), Comment: raw(`"x"`)},
			wantErr: true,
		},
		{
			name:    "instructor not numeric",
			req:     dto.CreateCommentRequest{LeadID: raw(`1`), InstructorID: raw(`"x1"`), Comment: raw(`"x"`)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCreateComment(tt.req)
			if tt.wantErr {
				msg, ok := apperrors.ValidationMessage(err)
				require.True(t, ok)
				assert.Equal(t, "Invalid input data", msg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommentService_AddComment(t *testing.T) {
	ctx := context.Background()

	repo := new(mockCommentStore)
	repo.On("Create", ctx, &models.Comment{LeadID: 1, InstructorID: 2, Comment: "ok"}).Return(nil).Once()

	_, err := NewCommentService(repo).AddComment(ctx, dto.CreateCommentRequest{LeadID: raw(`1`), InstructorID: raw(`2`), Comment: raw(`"ok"`)})
	require.NoError(t, err)
	repo.AssertExpectations(t)

	failing := new(mockCommentStore)
	failing.On("Create", ctx, mock.Anything).Return(apperrors.NewStorageError("add comment", errors.New("down")))

	_, err = NewCommentService(failing).AddComment(ctx, dto.CreateCommentRequest{LeadID: raw(`1`), InstructorID: raw(`2`), Comment: raw(`"ok"`)})
	assert.True(t, errors.Is(err, apperrors.ErrStorage))
}
