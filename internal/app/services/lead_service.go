package services

import (
	"context"
	"strings"

	"github.com/yigit/courseleads/internal/app/models"
	"github.com/yigit/courseleads/internal/app/models/dto"
	"github.com/yigit/courseleads/internal/pkg/apperrors"
	"github.com/yigit/courseleads/internal/pkg/coerce"
	"github.com/yigit/courseleads/internal/pkg/logger"
)

// LeadService handles lead registration, triage and search
type LeadService struct {
	leadRepo LeadStore
}

// NewLeadService creates a new lead service instance
func NewLeadService(leadRepo LeadStore) *LeadService {
	return &LeadService{leadRepo: leadRepo}
}

// ParseRegisterLead coerces every field to text and requires each to be non-blank
func ParseRegisterLead(courseID string, req dto.RegisterLeadRequest) (models.RegisterLead, error) {
	cmd := models.RegisterLead{
		CourseID:        courseID,
		Name:            coerce.Text(req.Name),
		Email:           coerce.Text(req.Email),
		Phone:           coerce.Text(req.Phone),
		LinkedInProfile: coerce.Text(req.LinkedInProfile),
	}
	if err := validate(cmd, apperrors.MsgRegistrationFields); err != nil {
		return models.RegisterLead{}, err
	}
	return cmd, nil
}

// ParseUpdateLeadStatus requires status to be a JSON string naming one of the lead statuses exactly
func ParseUpdateLeadStatus(leadID string, req dto.UpdateLeadStatusRequest) (models.UpdateLeadStatus, error) {
	status, ok := coerce.String(req.Status)
	if !ok {
		return models.UpdateLeadStatus{}, apperrors.NewValidationError(apperrors.MsgInvalidLeadStatus).WithField("status")
	}

	cmd := models.UpdateLeadStatus{LeadID: leadID, Status: models.LeadStatus(status)}
	if err := validate(cmd, apperrors.MsgInvalidLeadStatus); err != nil {
		return models.UpdateLeadStatus{}, err
	}
	return cmd, nil
}

// ParseLeadFilter joins repeated query parameters with "," and drops empty ones
func ParseLeadFilter(query dto.LeadSearchQuery) models.LeadFilter {
	return models.LeadFilter{
		Name:  strings.Join(query.Name, ","),
		Email: strings.Join(query.Email, ","),
	}
}

// Register records a new lead with status Pending. The course is not checked for existence.
func (s *LeadService) Register(ctx context.Context, courseID string, req dto.RegisterLeadRequest) (int64, error) {
	cmd, err := ParseRegisterLead(courseID, req)
	if err != nil {
		return 0, err
	}

	id, err := s.leadRepo.Create(ctx, cmd)
	if err != nil {
		return 0, err
	}

	logger.Ctx(ctx).Debug().Int64("lead_id", id).Str("course_id", courseID).Msg("Lead registered")
	return id, nil
}

// UpdateStatus changes the status of a lead. Updating a lead that does not exist is not an error.
func (s *LeadService) UpdateStatus(ctx context.Context, leadID string, req dto.UpdateLeadStatusRequest) error {
	cmd, err := ParseUpdateLeadStatus(leadID, req)
	if err != nil {
		return err
	}

	affected, err := s.leadRepo.UpdateStatus(ctx, cmd)
	if err != nil {
		return err
	}

	if affected == 0 {
		logger.Ctx(ctx).Debug().Str("lead_id", leadID).Msg("Lead status update matched no rows")
	}
	return nil
}

// Search returns the leads whose name and email contain the given values, ignoring case
func (s *LeadService) Search(ctx context.Context, query dto.LeadSearchQuery) ([]*models.Lead, error) {
	return s.leadRepo.Search(ctx, ParseLeadFilter(query))
}
