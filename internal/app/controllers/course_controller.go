package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aomari/course-management/internal/app/models/dto"
	"github.com/aomari/course-management/internal/app/services"
	"github.com/aomari/course-management/internal/middleware"
	"github.com/aomari/course-management/internal/pkg/helpers"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// withReviews reads the includeReviews query flag
func withReviews(ctx *gin.Context) bool {
	return ctx.Query("includeReviews") == "true"
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a new course owned by an existing instructor
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 409 {object} dto.ErrorResponse "Instructor already has a course with this title"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.CreateCourse(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      course,
		Timestamp: time.Now(),
	})
}

// GetCourseByID retrieves a course by ID
// @Summary Get course details
// @Description Retrieves a course by its ID with its instructor summary, optionally with reviews
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param includeReviews query bool false "Include the course's reviews" default(false)
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id, withReviews(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      course,
		Timestamp: time.Now(),
	})
}

// GetAllCourses retrieves a page of courses
// @Summary List courses
// @Description Retrieves courses with pagination, each with its instructor summary
// @Tags courses
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Param includeReviews query bool false "Include each course's reviews" default(false)
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	courses, err := c.courseService.GetAllCourses(ctx, page, size, withReviews(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// GetCoursesByInstructor lists an instructor's courses
// @Summary List courses by instructor
// @Description Retrieves all courses owned by the given instructor
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID" Format(int64) minimum(1)
// @Param includeReviews query bool false "Include each course's reviews" default(false)
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID format"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id}/courses [get]
func (c *CourseController) GetCoursesByInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}

	courses, err := c.courseService.GetCoursesByInstructorID(ctx, id, withReviews(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// CountCoursesByInstructor counts an instructor's courses
// @Summary Count courses by instructor
// @Description Counts the courses owned by the given instructor
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.CountResponse "Count retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID format"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id}/courses/count [get]
func (c *CourseController) CountCoursesByInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}

	count, err := c.courseService.CountCoursesByInstructorID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, count)
}

// UpdateCourse updates an existing course
// @Summary Update a course
// @Description Updates a course's title or moves it to another instructor
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.UpdateCourseRequest true "Updated course information"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course or instructor not found"
// @Failure 409 {object} dto.ErrorResponse "Instructor already has a course with this title"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      course,
		Timestamp: time.Now(),
	})
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Description Deletes a course together with its reviews and enrollments. Students survive.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.DeleteResponse "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDeleteResponse(id, "Course", "Course deleted successfully"))
}

// SearchCourses finds courses by title or instructor name
// @Summary Search courses
// @Description Finds courses by case-insensitive substring on the title or the instructor's name
// @Tags courses
// @Accept json
// @Produce json
// @Param title query string false "Title fragment"
// @Param instructor query string false "Instructor name fragment"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing search parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/search [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	title := ctx.Query("title")
	instructor := ctx.Query("instructor")

	var (
		courses []dto.CourseResponse
		err     error
	)
	switch {
	case title != "":
		courses, err = c.courseService.SearchCoursesByTitle(ctx, title)
	case instructor != "":
		courses, err = c.courseService.SearchCoursesByInstructorName(ctx, instructor)
	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing search parameter")
		errorDetail = errorDetail.WithDetails("Provide a title or instructor query parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// CourseExists checks whether a course exists
// @Summary Check course existence
// @Description Reports whether a course with the given ID exists
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.ExistsResponse "Existence result"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/exists [get]
func (c *CourseController) CourseExists(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course")
	if !ok {
		return
	}

	exists, err := c.courseService.CourseExistsByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExistsResponse{Exists: exists})
}
