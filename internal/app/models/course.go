package models

import "time"

// Course represents a course offered by an instructor
type Course struct {
	ID           int64     `json:"course_id"`
	InstructorID int64     `json:"instructor_id"`
	Name         string    `json:"name"`
	MaxSeats     int64     `json:"max_seats"`
	StartDate    time.Time `json:"start_date"`
}

// CreateCourse holds a parsed course creation request
type CreateCourse struct {
	InstructorID int64  `validate:"ne=0"`
	Name         string `validate:"notblank"`
	MaxSeats     int64  `validate:"gt=0"`
	StartDate    time.Time
}

// Row builds the row to insert
func (c CreateCourse) Row() *Course {
	return &Course{
		InstructorID: c.InstructorID,
		Name:         c.Name,
		MaxSeats:     c.MaxSeats,
		StartDate:    c.StartDate,
	}
}

// UpdateCourse replaces name, max_seats and start_date of the course identified by CourseID.
// CourseID is the raw path segment and is not checked for existence.
type UpdateCourse struct {
	CourseID  string
	Name      string `validate:"notblank"`
	MaxSeats  int64  `validate:"gt=0"`
	StartDate time.Time
}
