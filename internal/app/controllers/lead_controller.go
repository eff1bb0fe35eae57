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

// LeadService is the lead behaviour the controller needs
type LeadService interface {
	Register(ctx context.Context, courseID string, req dto.RegisterLeadRequest) (int64, error)
	UpdateStatus(ctx context.Context, leadID string, req dto.UpdateLeadStatusRequest) error
	Search(ctx context.Context, query dto.LeadSearchQuery) ([]*models.Lead, error)
}

// LeadController handles lead-related operations
type LeadController struct {
	leadService LeadService
}

// NewLeadController creates a new LeadController
func NewLeadController(leadService LeadService) *LeadController {
	return &LeadController{
		leadService: leadService,
	}
}

// Register handles course registration
// @Summary Register for a course
// @Description Creates a lead with status Pending. The course is not checked for existence.
// @Tags leads
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param request body dto.RegisterLeadRequest true "Registration details"
// @Success 201 {object} dto.MessageResponse "Registered for the course successfully"
// @Failure 400 {object} dto.MessageResponse "Name, email, phone, and linkedin_profile are required fields"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /courses/{courseId}/register [post]
func (c *LeadController) Register(ctx *gin.Context) {
	var req dto.RegisterLeadRequest
	if !middleware.BindJSON(ctx, &req, apperrors.MsgRegistrationFields) {
		return
	}

	if _, err := c.leadService.Register(ctx.Request.Context(), ctx.Param("courseId"), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: dto.MsgLeadRegistered})
}

// UpdateStatus handles lead status changes
// @Summary Update lead status
// @Description Sets the status of a lead. Succeeds even when no lead has the given ID.
// @Tags leads
// @Accept json
// @Produce json
// @Param leadId path string true "Lead ID"
// @Param request body dto.UpdateLeadStatusRequest true "New status"
// @Success 200 {object} dto.MessageResponse "Lead status updated successfully"
// @Failure 400 {object} dto.MessageResponse "Invalid status"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /leads/{leadId} [put]
func (c *LeadController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateLeadStatusRequest
	if !middleware.BindJSON(ctx, &req, apperrors.MsgInvalidLeadStatus) {
		return
	}

	if err := c.leadService.UpdateStatus(ctx.Request.Context(), ctx.Param("leadId"), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: dto.MsgLeadStatusUpdated})
}

// Search handles lead search
// @Summary Search leads
// @Description Lists leads whose name and email contain the given values, ignoring case. Without parameters every lead is returned.
// @Tags leads
// @Produce json
// @Param name query string false "Substring of the lead name"
// @Param email query string false "Substring of the lead email"
// @Success 200 {array} dto.LeadResponse "Matching leads"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /leads [get]
func (c *LeadController) Search(ctx *gin.Context) {
	query := dto.LeadSearchQuery{
		Name:  ctx.QueryArray("name"),
		Email: ctx.QueryArray("email"),
	}

	leads, err := c.leadService.Search(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewLeadResponses(leads))
}
