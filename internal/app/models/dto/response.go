package dto

// MessageResponse is the body of every acknowledgement and error response
type MessageResponse struct {
	Message string    `json:"message" example:"Course created successfully"`
	Code    ErrorCode `json:"code,omitempty" example:"VAL_001"`
}

// HealthResponse is returned by the liveness and readiness probes
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Acknowledgement messages
const (
	MsgCourseCreated     = "Course created successfully"
	MsgCourseUpdated     = "Course details updated successfully"
	MsgLeadRegistered    = "Registered for the course successfully"
	MsgLeadStatusUpdated = "Lead status updated successfully"
	MsgCommentAdded      = "Comment added successfully"
)
