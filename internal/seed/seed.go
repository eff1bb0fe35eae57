package seed

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/courseleads/internal/app/models"
	appRepos "github.com/yigit/courseleads/internal/app/repositories"
)

// demoInstructorID owns the demo course and writes the demo comment
const demoInstructorID = 1

// CreateDemoData inserts a demo course with one registered lead and a comment.
// Nothing is written when at least one course already exists.
func CreateDemoData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	count, err := repos.CourseRepository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Info().Int64("courses", count).Msg("Courses already present, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Creating demo data (course, lead, comment)...")

	course := appModels.CreateCourse{
		InstructorID: demoInstructorID,
		Name:         "Introduction to Go",
		MaxSeats:     30,
		StartDate:    time.Now().UTC().AddDate(0, 1, 0).Truncate(24 * time.Hour),
	}.Row()
	if err := repos.CourseRepository.Create(ctx, course); err != nil {
		return err
	}

	leadID, err := repos.LeadRepository.Create(ctx, appModels.RegisterLead{
		CourseID:        strconv.FormatInt(course.ID, 10),
		Name:            "Jane Doe",
		Email:           "jane.doe@example.com",
		Phone:           "+1 555 0100",
		LinkedInProfile: "https://www.linkedin.com/in/janedoe",
	})
	if err != nil {
		return err
	}

	comment := appModels.CreateComment{
		LeadID:       leadID,
		InstructorID: demoInstructorID,
		Comment:      "Demo lead, safe to delete.",
	}.Row()
	if err := repos.CommentRepository.Create(ctx, comment); err != nil {
		return err
	}

	lgr.Info().Int64("course_id", course.ID).Int64("lead_id", leadID).Msg("Demo data created")
	return nil
}
