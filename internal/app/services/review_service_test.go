package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aomari/course-management/internal/app/models/dto"
	"github.com/aomari/course-management/internal/pkg/apperrors"
)

type ReviewServiceSuite struct {
	suite.Suite
	fakes   *fakes
	service ReviewService
	ctx     context.Context

	instructorID int64
	courseID     int64
	studentID    int64
}

func TestReviewServiceSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceSuite))
}

func (s *ReviewServiceSuite) SetupTest() {
	s.fakes = newFakes()
	s.service = NewReviewService(s.fakes.reviews, s.fakes.courses, s.fakes.students)
	s.ctx = context.Background()

	instructors := NewInstructorService(s.fakes.instructors, s.fakes.details)
	instructor, err := instructors.CreateInstructor(s.ctx, dto.CreateInstructorRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@navy.mil",
	})
	s.Require().NoError(err)
	s.instructorID = instructor.ID

	courses := NewCourseService(s.fakes.courses, s.fakes.instructors, s.fakes.reviews)
	course, err := courses.CreateCourse(s.ctx, dto.CreateCourseRequest{
		Title:        "Compiler Construction",
		InstructorID: instructor.ID,
	})
	s.Require().NoError(err)
	s.courseID = course.ID

	students := NewStudentService(s.fakes.students, s.fakes.courses, s.fakes.instructors)
	student, err := students.CreateStudent(s.ctx, dto.CreateStudentRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@analytical.org",
	})
	s.Require().NoError(err)
	s.studentID = student.ID
}

func (s *ReviewServiceSuite) createReview(comment string) *dto.ReviewResponse {
	resp, err := s.service.CreateReview(s.ctx, dto.CreateReviewRequest{
		Comment:   comment,
		CourseID:  s.courseID,
		StudentID: s.studentID,
	})
	s.Require().NoError(err)
	return resp
}

func (s *ReviewServiceSuite) TestCreateReview() {
	s.Run("success", func() {
		resp := s.createReview("Great pacing")
		s.Require().NotZero(resp.ID)
		s.Require().Equal(s.courseID, resp.CourseID)
		s.Require().Equal(s.studentID, resp.StudentID)
	})

	s.Run("unknown course rejected", func() {
		_, err := s.service.CreateReview(s.ctx, dto.CreateReviewRequest{
			Comment:   "Ghost",
			CourseID:  9999,
			StudentID: s.studentID,
		})
		s.Require().ErrorIs(err, apperrors.ErrCourseNotFound)
	})

	s.Run("unknown student rejected", func() {
		_, err := s.service.CreateReview(s.ctx, dto.CreateReviewRequest{
			Comment:   "Ghost",
			CourseID:  s.courseID,
			StudentID: 9999,
		})
		s.Require().ErrorIs(err, apperrors.ErrStudentNotFound)
	})

	s.Run("blank comment rejected", func() {
		_, err := s.service.CreateReview(s.ctx, dto.CreateReviewRequest{
			Comment:   "   ",
			CourseID:  s.courseID,
			StudentID: s.studentID,
		})
		s.Require().ErrorIs(err, apperrors.ErrValidationFailed)
	})
}

func (s *ReviewServiceSuite) TestUpdateReview() {
	review := s.createReview("Solid content")

	s.Run("comment edit keeps references", func() {
		resp, err := s.service.UpdateReview(s.ctx, review.ID, dto.UpdateReviewRequest{
			Comment:   "Solid content, weak exercises",
			CourseID:  s.courseID,
			StudentID: s.studentID,
		})
		s.Require().NoError(err)
		s.Require().Equal("Solid content, weak exercises", resp.Comment)
		s.Require().Equal(s.courseID, resp.CourseID)
	})

	s.Run("repoint to unknown course rejected", func() {
		_, err := s.service.UpdateReview(s.ctx, review.ID, dto.UpdateReviewRequest{
			Comment:   "Moved",
			CourseID:  9999,
			StudentID: s.studentID,
		})
		s.Require().ErrorIs(err, apperrors.ErrCourseNotFound)
	})

	s.Run("unknown review", func() {
		_, err := s.service.UpdateReview(s.ctx, 9999, dto.UpdateReviewRequest{
			Comment:   "Anything",
			CourseID:  s.courseID,
			StudentID: s.studentID,
		})
		s.Require().ErrorIs(err, apperrors.ErrReviewNotFound)
	})
}

func (s *ReviewServiceSuite) TestDeleteReview() {
	review := s.createReview("Short lived")

	s.Require().NoError(s.service.DeleteReview(s.ctx, review.ID))

	_, err := s.service.GetReviewByID(s.ctx, review.ID)
	s.Require().ErrorIs(err, apperrors.ErrReviewNotFound)

	s.Run("delete unknown", func() {
		s.Require().ErrorIs(s.service.DeleteReview(s.ctx, 9999), apperrors.ErrReviewNotFound)
	})
}

func (s *ReviewServiceSuite) TestReviewQueries() {
	s.createReview("first")
	s.createReview("second")
	s.createReview("third")

	s.Run("by course newest first", func() {
		reviews, err := s.service.GetReviewsByCourseID(s.ctx, s.courseID)
		s.Require().NoError(err)
		s.Require().Len(reviews, 3)
		s.Require().Equal("third", reviews[0].Comment)
		s.Require().Equal("first", reviews[2].Comment)
	})

	s.Run("by unknown course", func() {
		_, err := s.service.GetReviewsByCourseID(s.ctx, 9999)
		s.Require().ErrorIs(err, apperrors.ErrCourseNotFound)
	})

	s.Run("latest honors the limit", func() {
		reviews, err := s.service.GetLatestReviews(s.ctx, 2)
		s.Require().NoError(err)
		s.Require().Len(reviews, 2)
		s.Require().Equal("third", reviews[0].Comment)
	})

	s.Run("latest defaults when the limit is not positive", func() {
		reviews, err := s.service.GetLatestReviews(s.ctx, 0)
		s.Require().NoError(err)
		s.Require().Len(reviews, 3)
	})

	s.Run("count by course", func() {
		count, err := s.service.CountReviewsByCourseID(s.ctx, s.courseID)
		s.Require().NoError(err)
		s.Require().Equal(int64(3), count.Count)
	})

	s.Run("search by comment", func() {
		found, err := s.service.SearchReviewsByComment(s.ctx, "SEC")
		s.Require().NoError(err)
		s.Require().Len(found, 1)
		s.Require().Equal("second", found[0].Comment)
	})

	s.Run("search by course title", func() {
		found, err := s.service.SearchReviewsByCourseTitle(s.ctx, "compiler")
		s.Require().NoError(err)
		s.Require().Len(found, 3)
	})

	s.Run("by instructor", func() {
		found, err := s.service.GetReviewsByInstructorID(s.ctx, s.instructorID)
		s.Require().NoError(err)
		s.Require().Len(found, 3)
	})

	s.Run("existence check", func() {
		exists, err := s.service.ReviewExistsByID(s.ctx, 9999)
		s.Require().NoError(err)
		s.Require().False(exists)
	})
}
