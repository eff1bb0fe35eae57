package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/courseleads/internal/app/models"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db DBTX
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

func insertCourseQuery(course *models.Course) squirrel.InsertBuilder {
	return psql.Insert("courses").
		Columns("instructor_id", "name", "max_seats", "start_date").
		Values(course.InstructorID, course.Name, course.MaxSeats, course.StartDate).
		Suffix("RETURNING course_id")
}

func updateCourseQuery(courseID int64, update models.UpdateCourse) squirrel.UpdateBuilder {
	return psql.Update("courses").
		Set("name", update.Name).
		Set("max_seats", update.MaxSeats).
		Set("start_date", update.StartDate).
		Where(squirrel.Eq{"course_id": courseID})
}

// Create inserts a course and sets its generated ID
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	const op = "create course"

	sql, args, err := insertCourseQuery(course).ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID); err != nil {
		return storageError(ctx, op, err)
	}

	return nil
}

// Update replaces name, max_seats and start_date. It returns the number of rows changed,
// which is zero when the course does not exist or the ID is not an integer.
func (r *CourseRepository) Update(ctx context.Context, update models.UpdateCourse) (int64, error) {
	const op = "update course"

	courseID, ok := models.ParseRowID(update.CourseID)
	if !ok {
		return 0, nil
	}

	sql, args, err := updateCourseQuery(courseID, update).ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, storageError(ctx, op, err)
	}

	return tag.RowsAffected(), nil
}

// Count returns the number of courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	const op = "count courses"

	sql, args, err := psql.Select("COUNT(*)").From("courses").ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, storageError(ctx, op, err)
	}

	return count, nil
}
