package dto

import "encoding/json"

// CreateCommentRequest represents a comment on a lead
type CreateCommentRequest struct {
	LeadID       json.RawMessage `json:"lead_id" swaggertype:"integer" example:"1"`
	InstructorID json.RawMessage `json:"instructor_id" swaggertype:"integer" example:"1"`
	Comment      json.RawMessage `json:"comment" swaggertype:"string" example:"Strong background in Go"`
}
