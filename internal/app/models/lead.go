package models

// LeadStatus is the triage state of a lead
type LeadStatus string

// Lead statuses
const (
	LeadStatusPending    LeadStatus = "Pending"
	LeadStatusAccepted   LeadStatus = "Accepted"
	LeadStatusRejected   LeadStatus = "Rejected"
	LeadStatusWaitlisted LeadStatus = "Waitlisted"
)

// LeadStatuses lists every valid status
var LeadStatuses = []LeadStatus{
	LeadStatusAccepted,
	LeadStatusRejected,
	LeadStatusPending,
	LeadStatusWaitlisted,
}

// Valid reports whether s is one of the known statuses. The match is case-sensitive.
func (s LeadStatus) Valid() bool {
	for _, status := range LeadStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Lead represents a prospect registered for a course
type Lead struct {
	ID              int64      `json:"lead_id"`
	CourseID        int64      `json:"course_id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	LinkedInProfile string     `json:"linkedin_profile"`
	Status          LeadStatus `json:"status"`
}

// RegisterLead holds a parsed course registration.
// CourseID is the raw path segment; leads may point at courses that do not exist.
type RegisterLead struct {
	CourseID        string
	Name            string `validate:"notblank"`
	Email           string `validate:"notblank"`
	Phone           string `validate:"notblank"`
	LinkedInProfile string `validate:"notblank"`
}

// UpdateLeadStatus changes the status of the lead identified by LeadID
type UpdateLeadStatus struct {
	LeadID string
	Status LeadStatus `validate:"valid"`
}

// LeadFilter narrows a lead search. Empty fields are ignored; set fields are combined with AND.
type LeadFilter struct {
	Name  string
	Email string
}
