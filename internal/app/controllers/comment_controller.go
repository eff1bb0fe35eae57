package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseleads/internal/app/models"
	"github.com/yigit/courseleads/internal/app/models/dto"
	"github.com/yigit/courseleads/internal/middleware"
	"github.com/yigit/courseleads/internal/pkg/apperrors"
)

// CommentService is the comment behaviour the controller needs
type CommentService interface {
	AddComment(ctx context.Context, req dto.CreateCommentRequest) (*models.Comment, error)
}

// CommentController handles comments on leads
type CommentController struct {
	commentService CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

// AddComment handles comment creation
// @Summary Add a comment to a lead
// @Description Stores an instructor's note about a lead. Neither the lead nor the instructor is checked for existence.
// @Tags comments
// @Accept json
// @Produce json
// @Param request body dto.CreateCommentRequest true "Comment"
// @Success 201 {object} dto.MessageResponse "Comment added successfully"
// @Failure 400 {object} dto.MessageResponse "Invalid input data"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /comments [post]
func (c *CommentController) AddComment(ctx *gin.Context) {
	var req dto.CreateCommentRequest
	if !middleware.BindJSON(ctx, &req, apperrors.MsgInvalidInput) {
		return
	}

	if _, err := c.commentService.AddComment(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: dto.MsgCommentAdded})
}
