package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aomari/course-management/internal/app/models/dto"
	"github.com/aomari/course-management/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/api/v1/courses/42", nil)

	HandleAPIError(c, err)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	tests := []struct {
		err     error
		message string
	}{
		{apperrors.ErrInstructorNotFound, "Instructor not found"},
		{apperrors.ErrInstructorDetailsNotFound, "Instructor details not found"},
		{apperrors.ErrCourseNotFound, "Course not found"},
		{apperrors.ErrStudentNotFound, "Student not found"},
		{apperrors.ErrReviewNotFound, "Review not found"},
		{apperrors.ErrEnrollmentMissing, "Student is not enrolled in this course"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			status, resp := handleError(t, tt.err)
			assert.Equal(t, http.StatusNotFound, status)
			assert.False(t, resp.Success)
			assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
			assert.Equal(t, "/api/v1/courses/42", resp.Path)
		})
	}
}

func TestHandleAPIErrorConflict(t *testing.T) {
	tests := []struct {
		err     error
		message string
	}{
		{apperrors.ErrInstructorEmailTaken, "An instructor with this email already exists"},
		{apperrors.ErrStudentEmailTaken, "A student with this email already exists"},
		{apperrors.ErrCourseAlreadyExists, "This instructor already has a course with this title"},
		{apperrors.ErrAlreadyEnrolled, "Student is already enrolled in this course"},
		{apperrors.ErrInstructorHasCourses, "Instructor still has assigned courses"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			status, resp := handleError(t, tt.err)
			assert.Equal(t, http.StatusConflict, status)
			assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
		})
	}
}

func TestHandleAPIErrorValidation(t *testing.T) {
	err := fmt.Errorf("%w: firstName cannot be empty", apperrors.ErrValidationFailed)

	status, resp := handleError(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "firstName")
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	err := fmt.Errorf("loading course: %w", apperrors.ErrCourseNotFound)

	status, resp := handleError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Course not found", resp.Error.Message)
}

func TestHandleAPIErrorDataIntegrity(t *testing.T) {
	status, resp := handleError(t, apperrors.ErrDataIntegrity)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, dto.ErrorCodeDatabaseError, resp.Error.Code)
}

func TestHandleAPIErrorUnknownFallsBackTo500(t *testing.T) {
	status, resp := handleError(t, fmt.Errorf("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, dto.ErrorCodeInternalServer, resp.Error.Code)
	assert.Equal(t, "Internal server error", resp.Error.Message)
}
