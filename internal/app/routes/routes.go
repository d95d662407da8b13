package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aomari/course-management/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl *controllers.Controllers) {
	router.GET("/health", healthCheck)

	// API version group
	v1 := router.Group("/api/v1")

	instructors := v1.Group("/instructors")
	{
		instructors.POST("", ctrl.Instructor.CreateInstructor)
		instructors.GET("", ctrl.Instructor.GetAllInstructors)
		instructors.GET("/by-email", ctrl.Instructor.GetInstructorByEmail)
		instructors.GET("/search", ctrl.Instructor.SearchInstructors)
		instructors.GET("/with-details", ctrl.Instructor.GetInstructorsWithDetails)
		instructors.GET("/without-details", ctrl.Instructor.GetInstructorsWithoutDetails)
		instructors.GET("/:id", ctrl.Instructor.GetInstructorByID)
		instructors.PUT("/:id", ctrl.Instructor.UpdateInstructor)
		instructors.DELETE("/:id", ctrl.Instructor.DeleteInstructor)
		instructors.GET("/:id/exists", ctrl.Instructor.InstructorExists)
		instructors.PUT("/:id/details", ctrl.Instructor.AddInstructorDetails)
		instructors.DELETE("/:id/details", ctrl.Instructor.RemoveInstructorDetails)
		instructors.GET("/:id/courses", ctrl.Course.GetCoursesByInstructor)
		instructors.GET("/:id/courses/count", ctrl.Course.CountCoursesByInstructor)
		instructors.GET("/:id/students", ctrl.Student.GetInstructorStudents)
		instructors.GET("/:id/reviews", ctrl.Review.GetInstructorReviews)
	}

	details := v1.Group("/instructor-details")
	{
		details.POST("", ctrl.InstructorDetails.CreateInstructorDetails)
		details.GET("/search", ctrl.InstructorDetails.SearchInstructorDetails)
		details.GET("/orphaned", ctrl.InstructorDetails.GetOrphanedInstructorDetails)
		details.GET("/:id", ctrl.InstructorDetails.GetInstructorDetailsByID)
		details.PUT("/:id", ctrl.InstructorDetails.UpdateInstructorDetails)
		details.DELETE("/:id", ctrl.InstructorDetails.DeleteInstructorDetails)
	}

	courses := v1.Group("/courses")
	{
		courses.POST("", ctrl.Course.CreateCourse)
		courses.GET("", ctrl.Course.GetAllCourses)
		courses.GET("/search", ctrl.Course.SearchCourses)
		courses.GET("/:id", ctrl.Course.GetCourseByID)
		courses.PUT("/:id", ctrl.Course.UpdateCourse)
		courses.DELETE("/:id", ctrl.Course.DeleteCourse)
		courses.GET("/:id/exists", ctrl.Course.CourseExists)
		courses.GET("/:id/students", ctrl.Student.GetCourseStudents)
		courses.GET("/:id/students/count", ctrl.Student.CountCourseStudents)
		courses.GET("/:id/reviews", ctrl.Review.GetCourseReviews)
		courses.GET("/:id/reviews/count", ctrl.Review.CountCourseReviews)
	}

	students := v1.Group("/students")
	{
		students.POST("", ctrl.Student.CreateStudent)
		students.GET("", ctrl.Student.GetAllStudents)
		students.GET("/search", ctrl.Student.SearchStudents)
		students.GET("/without-courses", ctrl.Student.GetStudentsWithNoCourses)
		students.GET("/:id", ctrl.Student.GetStudentByID)
		students.PUT("/:id", ctrl.Student.UpdateStudent)
		students.DELETE("/:id", ctrl.Student.DeleteStudent)
		students.GET("/:id/courses", ctrl.Student.GetStudentCourses)
		students.POST("/:id/courses/:courseId", ctrl.Student.EnrollStudent)
		students.DELETE("/:id/courses/:courseId", ctrl.Student.UnenrollStudent)
		students.GET("/:id/courses/:courseId", ctrl.Student.GetEnrollmentStatus)
	}

	reviews := v1.Group("/reviews")
	{
		reviews.POST("", ctrl.Review.CreateReview)
		reviews.GET("/latest", ctrl.Review.GetLatestReviews)
		reviews.GET("/search", ctrl.Review.SearchReviews)
		reviews.GET("/:id", ctrl.Review.GetReviewByID)
		reviews.PUT("/:id", ctrl.Review.UpdateReview)
		reviews.DELETE("/:id", ctrl.Review.DeleteReview)
	}
}

// healthCheck reports service liveness
// @Summary Health check
// @Description Reports whether the service is up
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Service status"
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
