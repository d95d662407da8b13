package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aomari/course-management/internal/app/models/dto"
	"github.com/aomari/course-management/internal/pkg/apperrors"
	"github.com/aomari/course-management/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses. Controllers hand
// every service error to this function instead of picking status codes themselves.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrInstructorNotFound,
		apperrors.ErrInstructorDetailsNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrReviewNotFound,
		apperrors.ErrEnrollmentMissing):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, notFoundMessage(err))
	case apperrors.Is(err, apperrors.ErrResourceAlreadyExists,
		apperrors.ErrConflict,
		apperrors.ErrInstructorEmailTaken,
		apperrors.ErrStudentEmailTaken,
		apperrors.ErrCourseAlreadyExists,
		apperrors.ErrAlreadyEnrolled,
		apperrors.ErrInstructorHasCourses):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, conflictMessage(err))
	case errors.Is(err, apperrors.ErrValidationFailed):
		respondDetail(c, http.StatusBadRequest, validationDetail(err))
	case errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeResourceInvalid, err.Error())
	case errors.Is(err, apperrors.ErrDataIntegrity):
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Data integrity violation")
		respond(c, http.StatusConflict, dto.ErrorCodeDatabaseError, "Operation violates data integrity")
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	respondDetail(c, status, dto.NewErrorDetail(code, message))
}

func respondDetail(c *gin.Context, status int, detail *dto.ErrorDetail) {
	resp := dto.NewErrorResponse(detail)
	resp.Path = c.Request.URL.Path
	c.JSON(status, resp)
}

func validationDetail(err error) *dto.ErrorDetail {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Details != nil {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, customErr.Message).WithDetails(customErr.Details)
	}
	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
}

// notFoundMessage picks the most specific message the error chain carries
func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInstructorNotFound):
		return "Instructor not found"
	case errors.Is(err, apperrors.ErrInstructorDetailsNotFound):
		return "Instructor details not found"
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return "Course not found"
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return "Student not found"
	case errors.Is(err, apperrors.ErrReviewNotFound):
		return "Review not found"
	case errors.Is(err, apperrors.ErrEnrollmentMissing):
		return "Student is not enrolled in this course"
	default:
		return "Resource not found"
	}
}

func conflictMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInstructorEmailTaken):
		return "An instructor with this email already exists"
	case errors.Is(err, apperrors.ErrStudentEmailTaken):
		return "A student with this email already exists"
	case errors.Is(err, apperrors.ErrCourseAlreadyExists):
		return "This instructor already has a course with this title"
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		return "Student is already enrolled in this course"
	case errors.Is(err, apperrors.ErrInstructorHasCourses):
		return "Instructor still has assigned courses"
	default:
		return "Resource already exists"
	}
}
