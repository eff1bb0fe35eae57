package services

import (
	"context"

	"github.com/yigit/courseleads/internal/app/models"
	"github.com/yigit/courseleads/internal/app/models/dto"
	"github.com/yigit/courseleads/internal/pkg/apperrors"
	"github.com/yigit/courseleads/internal/pkg/coerce"
	"github.com/yigit/courseleads/internal/pkg/helpers"
	"github.com/yigit/courseleads/internal/pkg/logger"
)

// CourseService handles course operations
type CourseService struct {
	courseRepo CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

func invalidCourse(field string) error {
	return apperrors.NewValidationError(apperrors.MsgInvalidInput).WithField(field)
}

// ParseCreateCourse coerces and validates a course creation request.
// The name must be sent as a JSON string; the numeric fields accept anything with a leading integer.
func ParseCreateCourse(req dto.CreateCourseRequest) (models.CreateCourse, error) {
	var cmd models.CreateCourse

	instructorID, ok := coerce.Int(req.InstructorID)
	if !ok {
		return cmd, invalidCourse("instructor_id")
	}
	name, ok := coerce.String(req.Name)
	if !ok {
		return cmd, invalidCourse("name")
	}
	maxSeats, ok := coerce.Int(req.MaxSeats)
	if !ok {
		return cmd, invalidCourse("max_seats")
	}
	startDate, ok := helpers.ParseDate(coerce.Text(req.StartDate))
	if !ok {
		return cmd, invalidCourse("start_date")
	}

	cmd = models.CreateCourse{
		InstructorID: instructorID,
		Name:         name,
		MaxSeats:     maxSeats,
		StartDate:    startDate,
	}
	if err := validate(cmd, apperrors.MsgInvalidInput); err != nil {
		return models.CreateCourse{}, err
	}
	return cmd, nil
}

// ParseUpdateCourse coerces and validates a course update. An absent name is stored as "undefined".
func ParseUpdateCourse(courseID string, req dto.UpdateCourseRequest) (models.UpdateCourse, error) {
	var cmd models.UpdateCourse

	maxSeats, ok := coerce.Int(req.MaxSeats)
	if !ok {
		return cmd, invalidCourse("max_seats")
	}
	startDate, ok := helpers.ParseDate(coerce.Text(req.StartDate))
	if !ok {
		return cmd, invalidCourse("start_date")
	}

	cmd = models.UpdateCourse{
		CourseID:  courseID,
		Name:      coerce.Text(req.Name),
		MaxSeats:  maxSeats,
		StartDate: startDate,
	}
	if err := validate(cmd, apperrors.MsgInvalidInput); err != nil {
		return models.UpdateCourse{}, err
	}
	return cmd, nil
}

// CreateCourse validates the request and inserts a new course
func (s *CourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	cmd, err := ParseCreateCourse(req)
	if err != nil {
		return nil, err
	}

	course := cmd.Row()
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Debug().Int64("course_id", course.ID).Msg("Course created")
	return course, nil
}

// UpdateCourse validates the request and replaces the course details.
// Updating a course that does not exist is not an error.
func (s *CourseService) UpdateCourse(ctx context.Context, courseID string, req dto.UpdateCourseRequest) error {
	cmd, err := ParseUpdateCourse(courseID, req)
	if err != nil {
		return err
	}

	affected, err := s.courseRepo.Update(ctx, cmd)
	if err != nil {
		return err
	}

	if affected == 0 {
		logger.Ctx(ctx).Debug().Str("course_id", courseID).Msg("Course update matched no rows")
	}
	return nil
}
