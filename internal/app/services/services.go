package services

import (
	"context"

	"github.com/yigit/courseleads/internal/app/models"
	"github.com/yigit/courseleads/internal/app/repositories"
	"github.com/yigit/courseleads/internal/pkg/apperrors"
	"github.com/yigit/courseleads/internal/pkg/validation"
)

// CourseStore persists courses
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, update models.UpdateCourse) (int64, error)
}

// LeadStore persists and searches leads
type LeadStore interface {
	Create(ctx context.Context, lead models.RegisterLead) (int64, error)
	UpdateStatus(ctx context.Context, update models.UpdateLeadStatus) (int64, error)
	Search(ctx context.Context, filter models.LeadFilter) ([]*models.Lead, error)
}

// CommentStore persists comments
type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
}

// Services holds all the service instances
type Services struct {
	CourseService  *CourseService
	LeadService    *LeadService
	CommentService *CommentService
}

// NewServices wires every service to its repository
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		CourseService:  NewCourseService(repos.CourseRepository),
		LeadService:    NewLeadService(repos.LeadRepository),
		CommentService: NewCommentService(repos.CommentRepository),
	}
}

// validate checks cmd against its tags and turns a failure into a validation error carrying message
func validate(cmd interface{}, message string) error {
	if err := validation.Struct(cmd); err != nil {
		return apperrors.NewValidationError(message).WithField(validation.FirstInvalidField(err))
	}
	return nil
}
