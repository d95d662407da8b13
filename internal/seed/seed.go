package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/aomari/course-management/internal/app/models"
	"github.com/aomari/course-management/internal/app/repositories"
	"github.com/aomari/course-management/internal/pkg/apperrors"
	"github.com/aomari/course-management/internal/pkg/helpers"
)

// CreateDefaultData inserts a small demo data set if it is not already present.
// Every insert tolerates an already-exists answer so reruns are safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	instructorID, err := seedInstructor(ctx, repos, &models.Instructor{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace.hopper@example.com",
	}, &models.InstructorDetails{
		YoutubeChannel: "https://youtube.com/@gracehopper",
		Hobby:          helpers.StringPtr("Compilers"),
	}, lgr)
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if instructorID > 0 {
		for _, title := range []string{"Compiler Construction", "Naval Computing"} {
			course := &models.Course{Title: title, InstructorID: instructorID}
			if err := repos.CourseRepository.Create(ctx, course); err != nil && !errors.Is(err, apperrors.ErrCourseAlreadyExists) {
				lgr.Error().Err(err).Str("title", title).Msg("Error creating default course")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	student := &models.Student{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada.lovelace@example.com",
	}
	if err := repos.StudentRepository.Create(ctx, student); err != nil && !errors.Is(err, apperrors.ErrStudentEmailTaken) {
		lgr.Error().Err(err).Msg("Error creating default student")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr != nil {
		return finalErr
	}
	lgr.Info().Msg("Default data ready")
	return nil
}

func seedInstructor(ctx context.Context, repos *repositories.Repositories, instructor *models.Instructor, details *models.InstructorDetails, lgr zerolog.Logger) (int64, error) {
	err := repos.InstructorRepository.CreateWithDetails(ctx, instructor, details)
	if err == nil {
		return instructor.ID, nil
	}
	if !errors.Is(err, apperrors.ErrInstructorEmailTaken) {
		lgr.Error().Err(err).Str("email", instructor.Email).Msg("Error creating default instructor")
		return 0, err
	}

	existing, err := repos.InstructorRepository.GetByEmail(ctx, instructor.Email)
	if err != nil {
		lgr.Error().Err(err).Str("email", instructor.Email).Msg("Error loading existing default instructor")
		return 0, err
	}
	return existing.ID, nil
}
