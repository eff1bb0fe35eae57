package dto

import "encoding/json"

// CreateCourseRequest represents course creation data.
// Fields are kept raw because clients send numbers as strings and vice versa.
type CreateCourseRequest struct {
	InstructorID json.RawMessage `json:"instructor_id" swaggertype:"integer" example:"1"`
	Name         json.RawMessage `json:"name" swaggertype:"string" example:"Intro to Go"`
	MaxSeats     json.RawMessage `json:"max_seats" swaggertype:"integer" example:"10"`
	StartDate    json.RawMessage `json:"start_date" swaggertype:"string" example:"2025-01-01"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Name      json.RawMessage `json:"name" swaggertype:"string" example:"Intro to Go 2"`
	MaxSeats  json.RawMessage `json:"max_seats" swaggertype:"integer" example:"20"`
	StartDate json.RawMessage `json:"start_date" swaggertype:"string" example:"2025-02-01"`
}
