package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aomari/course-management/internal/app/models/dto"
	"github.com/aomari/course-management/internal/app/services"
)

// Controllers bundles all HTTP controllers for route registration
type Controllers struct {
	Instructor        *InstructorController
	InstructorDetails *InstructorDetailsController
	Course            *CourseController
	Student           *StudentController
	Review            *ReviewController
}

// NewControllers wires every controller against the given services
func NewControllers(
	instructorService services.InstructorService,
	detailsService services.InstructorDetailsService,
	courseService services.CourseService,
	studentService services.StudentService,
	reviewService services.ReviewService,
) *Controllers {
	return &Controllers{
		Instructor:        NewInstructorController(instructorService),
		InstructorDetails: NewInstructorDetailsController(detailsService),
		Course:            NewCourseController(courseService),
		Student:           NewStudentController(studentService),
		Review:            NewReviewController(reviewService),
	}
}

// parseIDParam parses a path parameter as an int64 id and writes the 400 response
// itself on failure.
func parseIDParam(ctx *gin.Context, name, resource string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+resource+" ID")
		errorDetail = errorDetail.WithDetails(resource + " ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindJSON binds a JSON body and writes the 400 response itself on failure.
// Binding failures from the validator carry a field-level breakdown.
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
