package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseleads/internal/app/models"
	"github.com/yigit/courseleads/internal/app/models/dto"
	"github.com/yigit/courseleads/internal/middleware"
	"github.com/yigit/courseleads/internal/pkg/apperrors"
)

// CourseService is the course behaviour the controller needs
type CourseService interface {
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, courseID string, req dto.UpdateCourseRequest) error
}

// CourseController handles course-related operations
type CourseController struct {
	courseService CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a course. instructor_id and max_seats accept numbers or numeric strings.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.MessageResponse "Course created successfully"
// @Failure 400 {object} dto.MessageResponse "Invalid input data"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req, apperrors.MsgInvalidInput) {
		return
	}

	if _, err := c.courseService.CreateCourse(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: dto.MsgCourseCreated})
}

// UpdateCourse handles course updates
// @Summary Update course details
// @Description Replaces name, max_seats and start_date. Succeeds even when no course has the given ID.
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course details"
// @Success 200 {object} dto.MessageResponse "Course details updated successfully"
// @Failure 400 {object} dto.MessageResponse "Invalid input data"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /courses/{courseId} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if !middleware.BindJSON(ctx, &req, apperrors.MsgInvalidInput) {
		return
	}

	if err := c.courseService.UpdateCourse(ctx.Request.Context(), ctx.Param("courseId"), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: dto.MsgCourseUpdated})
}
