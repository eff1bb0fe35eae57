package dto

import (
	"encoding/json"

	"github.com/yigit/courseleads/internal/app/models"
)

// RegisterLeadRequest represents a course registration
type RegisterLeadRequest struct {
	Name            json.RawMessage `json:"name" swaggertype:"string" example:"Jane Doe"`
	Email           json.RawMessage `json:"email" swaggertype:"string" example:"jane@example.com"`
	Phone           json.RawMessage `json:"phone" swaggertype:"string" example:"+1 555 0100"`
	LinkedInProfile json.RawMessage `json:"linkedin_profile" swaggertype:"string" example:"https://linkedin.com/in/janedoe"`
}

// UpdateLeadStatusRequest represents a lead status change
type UpdateLeadStatusRequest struct {
	Status json.RawMessage `json:"status" swaggertype:"string" enums:"Accepted,Rejected,Pending,Waitlisted" example:"Accepted"`
}

// LeadSearchQuery holds the raw lead search parameters. A repeated parameter
// arrives as several values.
type LeadSearchQuery struct {
	Name  []string `form:"name"`
	Email []string `form:"email"`
}

// LeadResponse represents a lead row
type LeadResponse struct {
	LeadID          int64  `json:"lead_id" example:"1"`
	CourseID        int64  `json:"course_id" example:"1"`
	Name            string `json:"name" example:"Jane Doe"`
	Email           string `json:"email" example:"jane@example.com"`
	Phone           string `json:"phone" example:"+1 555 0100"`
	LinkedInProfile string `json:"linkedin_profile" example:"https://linkedin.com/in/janedoe"`
	Status          string `json:"status" example:"Pending" enums:"Pending,Accepted,Rejected,Waitlisted"`
}

// NewLeadResponses converts leads to their response form. The result is never nil.
func NewLeadResponses(leads []*models.Lead) []LeadResponse {
	responses := make([]LeadResponse, 0, len(leads))
	for _, lead := range leads {
		responses = append(responses, LeadResponse{
			LeadID:          lead.ID,
			CourseID:        lead.CourseID,
			Name:            lead.Name,
			Email:           lead.Email,
			Phone:           lead.Phone,
			LinkedInProfile: lead.LinkedInProfile,
			Status:          string(lead.Status),
		})
	}
	return responses
}
