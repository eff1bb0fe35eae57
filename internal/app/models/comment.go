package models

// Comment is a free-text note an instructor attaches to a lead
type Comment struct {
	ID           int64  `json:"comment_id"`
	LeadID       int64  `json:"lead_id"`
	InstructorID int64  `json:"instructor_id"`
	Comment      string `json:"comment"`
}

// CreateComment holds a parsed comment request. Whitespace-only comments are accepted.
type CreateComment struct {
	LeadID       int64  `validate:"ne=0"`
	InstructorID int64  `validate:"ne=0"`
	Comment      string `validate:"nonempty"`
}

// Row builds the row to insert
func (c CreateComment) Row() *Comment {
	return &Comment{
		LeadID:       c.LeadID,
		InstructorID: c.InstructorID,
		Comment:      c.Comment,
	}
}
