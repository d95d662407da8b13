package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aomari/course-management/internal/app/models/dto"
	"github.com/aomari/course-management/internal/pkg/apperrors"
	"github.com/aomari/course-management/internal/pkg/helpers"
)

type InstructorServiceSuite struct {
	suite.Suite
	fakes   *fakes
	service InstructorService
	details InstructorDetailsService
	ctx     context.Context
}

func TestInstructorServiceSuite(t *testing.T) {
	suite.Run(t, new(InstructorServiceSuite))
}

func (s *InstructorServiceSuite) SetupTest() {
	s.fakes = newFakes()
	s.service = NewInstructorService(s.fakes.instructors, s.fakes.details)
	s.details = NewInstructorDetailsService(s.fakes.details)
	s.ctx = context.Background()
}

func (s *InstructorServiceSuite) createInstructor(firstName, lastName, email string) *dto.InstructorResponse {
	resp, err := s.service.CreateInstructor(s.ctx, dto.CreateInstructorRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	})
	s.Require().NoError(err)
	return resp
}

func (s *InstructorServiceSuite) TestCreateInstructor() {
	s.Run("without details", func() {
		resp := s.createInstructor("Grace", "Hopper", "grace@navy.mil")
		s.Require().NotZero(resp.ID)
		s.Require().Equal("Grace Hopper", resp.FullName)
		s.Require().Nil(resp.Details)
	})

	s.Run("with details", func() {
		hobby := "sailing"
		resp, err := s.service.CreateInstructor(s.ctx, dto.CreateInstructorRequest{
			FirstName: "Alan",
			LastName:  "Kay",
			Email:     "alan@parc.org",
			Details: &dto.CreateInstructorDetailsRequest{
				YoutubeChannel: "https://youtube.com/@alankay",
				Hobby:          &hobby,
			},
		})
		s.Require().NoError(err)
		s.Require().NotNil(resp.Details)
		s.Require().Equal("https://youtube.com/@alankay", resp.Details.YoutubeChannel)
		s.Require().Equal("sailing", *resp.Details.Hobby)
	})

	s.Run("duplicate email rejected", func() {
		s.createInstructor("Ada", "Lovelace", "ada@analytical.org")
		_, err := s.service.CreateInstructor(s.ctx, dto.CreateInstructorRequest{
			FirstName: "Augusta",
			LastName:  "King",
			Email:     "ada@analytical.org",
		})
		s.Require().ErrorIs(err, apperrors.ErrInstructorEmailTaken)
	})

	s.Run("blank name rejected", func() {
		_, err := s.service.CreateInstructor(s.ctx, dto.CreateInstructorRequest{
			FirstName: "   ",
			LastName:  "Turing",
			Email:     "alan@bletchley.uk",
		})
		s.Require().ErrorIs(err, apperrors.ErrValidationFailed)
	})

	s.Run("overlong name rejected", func() {
		_, err := s.service.CreateInstructor(s.ctx, dto.CreateInstructorRequest{
			FirstName: strings.Repeat("x", 101),
			LastName:  "Turing",
			Email:     "alan2@bletchley.uk",
		})
		s.Require().ErrorIs(err, apperrors.ErrValidationFailed)
	})
}

func (s *InstructorServiceSuite) TestGetInstructor() {
	created := s.createInstructor("Grace", "Hopper", "grace@navy.mil")

	s.Run("by id", func() {
		resp, err := s.service.GetInstructorByID(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Require().Equal(created.Email, resp.Email)
	})

	s.Run("by email", func() {
		resp, err := s.service.GetInstructorByEmail(s.ctx, "grace@navy.mil")
		s.Require().NoError(err)
		s.Require().Equal(created.ID, resp.ID)
	})

	s.Run("unknown id", func() {
		_, err := s.service.GetInstructorByID(s.ctx, 9999)
		s.Require().ErrorIs(err, apperrors.ErrInstructorNotFound)
	})

	s.Run("unknown email", func() {
		_, err := s.service.GetInstructorByEmail(s.ctx, "nobody@example.com")
		s.Require().ErrorIs(err, apperrors.ErrInstructorNotFound)
	})
}

func (s *InstructorServiceSuite) TestGetAllInstructorsPagination() {
	for i := 0; i < 5; i++ {
		s.createInstructor("Prof", "Number"+string(rune('A'+i)), "prof"+string(rune('a'+i))+"@uni.edu")
	}

	resp, err := s.service.GetAllInstructors(s.ctx, 1, 2)
	s.Require().NoError(err)
	s.Require().Len(resp.Instructors, 2)
	s.Require().Equal(int64(5), resp.Pagination.TotalItems)
	s.Require().Equal(3, resp.Pagination.TotalPages)

	last, err := s.service.GetAllInstructors(s.ctx, 3, 2)
	s.Require().NoError(err)
	s.Require().Len(last.Instructors, 1)
	s.Require().Equal(3, last.Pagination.CurrentPage)
}

func (s *InstructorServiceSuite) TestUpdateInstructor() {
	created := s.createInstructor("Grace", "Hopper", "grace@navy.mil")
	other := s.createInstructor("Alan", "Kay", "alan@parc.org")

	s.Run("rename keeping email", func() {
		resp, err := s.service.UpdateInstructor(s.ctx, created.ID, dto.UpdateInstructorRequest{
			FirstName: "Grace",
			LastName:  "Murray Hopper",
			Email:     "grace@navy.mil",
		})
		s.Require().NoError(err)
		s.Require().Equal("Grace Murray Hopper", resp.FullName)
	})

	s.Run("email change to taken address rejected", func() {
		_, err := s.service.UpdateInstructor(s.ctx, created.ID, dto.UpdateInstructorRequest{
			FirstName: "Grace",
			LastName:  "Hopper",
			Email:     other.Email,
		})
		s.Require().ErrorIs(err, apperrors.ErrInstructorEmailTaken)
	})

	s.Run("email change to free address", func() {
		resp, err := s.service.UpdateInstructor(s.ctx, created.ID, dto.UpdateInstructorRequest{
			FirstName: "Grace",
			LastName:  "Hopper",
			Email:     "grace@yale.edu",
		})
		s.Require().NoError(err)
		s.Require().Equal("grace@yale.edu", resp.Email)
	})

	s.Run("unknown instructor", func() {
		_, err := s.service.UpdateInstructor(s.ctx, 9999, dto.UpdateInstructorRequest{
			FirstName: "No",
			LastName:  "Body",
			Email:     "nobody@example.com",
		})
		s.Require().ErrorIs(err, apperrors.ErrInstructorNotFound)
	})
}

func (s *InstructorServiceSuite) TestUpdateInstructorDetailsLifecycle() {
	hobby := "chess"
	created, err := s.service.CreateInstructor(s.ctx, dto.CreateInstructorRequest{
		FirstName: "Mikhail",
		LastName:  "Tal",
		Email:     "tal@riga.lv",
		Details: &dto.CreateInstructorDetailsRequest{
			YoutubeChannel: "https://youtube.com/@tal",
			Hobby:          &hobby,
		},
	})
	s.Require().NoError(err)
	s.Require().NotNil(created.Details)
	detailsID := created.Details.ID

	s.Run("details payload updates linked record in place", func() {
		newHobby := "blitz"
		resp, err := s.service.UpdateInstructor(s.ctx, created.ID, dto.UpdateInstructorRequest{
			FirstName: "Mikhail",
			LastName:  "Tal",
			Email:     "tal@riga.lv",
			Details: &dto.CreateInstructorDetailsRequest{
				YoutubeChannel: "https://youtube.com/@magician",
				Hobby:          &newHobby,
			},
		})
		s.Require().NoError(err)
		s.Require().NotNil(resp.Details)
		s.Require().Equal(detailsID, resp.Details.ID)
		s.Require().Equal("https://youtube.com/@magician", resp.Details.YoutubeChannel)
	})

	s.Run("absent details payload unlinks leaving an orphan", func() {
		resp, err := s.service.UpdateInstructor(s.ctx, created.ID, dto.UpdateInstructorRequest{
			FirstName: "Mikhail",
			LastName:  "Tal",
			Email:     "tal@riga.lv",
		})
		s.Require().NoError(err)
		s.Require().Nil(resp.Details)

		orphans, err := s.details.GetOrphanedDetails(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(orphans, 1)
		s.Require().Equal(detailsID, orphans[0].ID)
	})

	s.Run("details payload on bare instructor creates and links", func() {
		resp, err := s.service.UpdateInstructor(s.ctx, created.ID, dto.UpdateInstructorRequest{
			FirstName: "Mikhail",
			LastName:  "Tal",
			Email:     "tal@riga.lv",
			Details: &dto.CreateInstructorDetailsRequest{
				YoutubeChannel: "https://youtube.com/@comeback",
			},
		})
		s.Require().NoError(err)
		s.Require().NotNil(resp.Details)
		s.Require().NotEqual(detailsID, resp.Details.ID)
	})
}

func (s *InstructorServiceSuite) TestLinkAndUnlinkDetails() {
	instructor := s.createInstructor("Grace", "Hopper", "grace@navy.mil")
	details, err := s.details.CreateInstructorDetails(s.ctx, dto.CreateInstructorDetailsRequest{
		YoutubeChannel: "https://youtube.com/@cobol",
		Hobby:          helpers.StringPtr("knitting"),
	})
	s.Require().NoError(err)

	s.Run("link existing record", func() {
		resp, err := s.service.AddInstructorDetails(s.ctx, instructor.ID, details.ID)
		s.Require().NoError(err)
		s.Require().NotNil(resp.Details)
		s.Require().Equal(details.ID, resp.Details.ID)
	})

	s.Run("link unknown details", func() {
		_, err := s.service.AddInstructorDetails(s.ctx, instructor.ID, 9999)
		s.Require().ErrorIs(err, apperrors.ErrInstructorDetailsNotFound)
	})

	s.Run("link onto unknown instructor", func() {
		_, err := s.service.AddInstructorDetails(s.ctx, 9999, details.ID)
		s.Require().ErrorIs(err, apperrors.ErrInstructorNotFound)
	})

	s.Run("unlink", func() {
		resp, err := s.service.RemoveInstructorDetails(s.ctx, instructor.ID)
		s.Require().NoError(err)
		s.Require().Nil(resp.Details)

		kept, err := s.details.GetInstructorDetailsByID(s.ctx, details.ID)
		s.Require().NoError(err)
		s.Require().Equal("https://youtube.com/@cobol", kept.YoutubeChannel)
	})
}

func (s *InstructorServiceSuite) TestDeleteInstructor() {
	s.Run("delete cascades owned details", func() {
		created, err := s.service.CreateInstructor(s.ctx, dto.CreateInstructorRequest{
			FirstName: "Grace",
			LastName:  "Hopper",
			Email:     "grace@navy.mil",
			Details: &dto.CreateInstructorDetailsRequest{
				YoutubeChannel: "https://youtube.com/@cobol",
			},
		})
		s.Require().NoError(err)
		detailsID := created.Details.ID

		s.Require().NoError(s.service.DeleteInstructor(s.ctx, created.ID))

		_, err = s.service.GetInstructorByID(s.ctx, created.ID)
		s.Require().ErrorIs(err, apperrors.ErrInstructorNotFound)
		_, err = s.details.GetInstructorDetailsByID(s.ctx, detailsID)
		s.Require().ErrorIs(err, apperrors.ErrInstructorDetailsNotFound)
	})

	s.Run("delete unknown", func() {
		err := s.service.DeleteInstructor(s.ctx, 9999)
		s.Require().ErrorIs(err, apperrors.ErrInstructorNotFound)
	})

	s.Run("delete blocked while courses remain", func() {
		instructor := s.createInstructor("Alan", "Kay", "alan@parc.org")
		courses := NewCourseService(s.fakes.courses, s.fakes.instructors, s.fakes.reviews)
		course, err := courses.CreateCourse(s.ctx, dto.CreateCourseRequest{
			Title:        "Object-Oriented Design",
			InstructorID: instructor.ID,
		})
		s.Require().NoError(err)

		err = s.service.DeleteInstructor(s.ctx, instructor.ID)
		s.Require().ErrorIs(err, apperrors.ErrInstructorHasCourses)

		// Both sides survive the refused delete
		kept, err := s.service.GetInstructorByID(s.ctx, instructor.ID)
		s.Require().NoError(err)
		s.Require().Equal(instructor.Email, kept.Email)
		_, err = courses.GetCourseByID(s.ctx, course.ID, false)
		s.Require().NoError(err)

		// Removing the course unblocks the delete
		s.Require().NoError(courses.DeleteCourse(s.ctx, course.ID))
		s.Require().NoError(s.service.DeleteInstructor(s.ctx, instructor.ID))
	})
}

func (s *InstructorServiceSuite) TestSearchAndFilters() {
	bare := s.createInstructor("Barbara", "Liskov", "liskov@mit.edu")
	_, err := s.service.CreateInstructor(s.ctx, dto.CreateInstructorRequest{
		FirstName: "Donald",
		LastName:  "Knuth",
		Email:     "knuth@stanford.edu",
		Details: &dto.CreateInstructorDetailsRequest{
			YoutubeChannel: "https://youtube.com/@taocp",
		},
	})
	s.Require().NoError(err)

	s.Run("search by name is case-insensitive substring", func() {
		found, err := s.service.SearchInstructorsByName(s.ctx, "liskov")
		s.Require().NoError(err)
		s.Require().Len(found, 1)
		s.Require().Equal(bare.ID, found[0].ID)
	})

	s.Run("with details", func() {
		found, err := s.service.GetInstructorsWithDetails(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(found, 1)
		s.Require().Equal("Donald Knuth", found[0].FullName)
		s.Require().NotNil(found[0].Details)
	})

	s.Run("without details", func() {
		found, err := s.service.GetInstructorsWithoutDetails(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(found, 1)
		s.Require().Equal(bare.ID, found[0].ID)
	})

	s.Run("existence checks", func() {
		exists, err := s.service.InstructorExistsByID(s.ctx, bare.ID)
		s.Require().NoError(err)
		s.Require().True(exists)

		exists, err = s.service.InstructorExistsByEmail(s.ctx, "nobody@example.com")
		s.Require().NoError(err)
		s.Require().False(exists)
	})
}
