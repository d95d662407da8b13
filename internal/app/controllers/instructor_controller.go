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

// InstructorController handles instructor-related operations
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// CreateInstructor handles instructor creation
// @Summary Create a new instructor
// @Description Creates a new instructor, optionally with an embedded details record
// @Tags instructors
// @Accept json
// @Produce json
// @Param request body dto.CreateInstructorRequest true "Instructor information"
// @Success 201 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors [post]
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var req dto.CreateInstructorRequest
	if !bindJSON(ctx, &req) {
		return
	}

	instructor, err := c.instructorService.CreateInstructor(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      instructor,
		Timestamp: time.Now(),
	})
}

// GetInstructorByID retrieves an instructor by ID
// @Summary Get instructor details
// @Description Retrieves an instructor by its ID, including any linked details record
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID format"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id} [get]
func (c *InstructorController) GetInstructorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}

	instructor, err := c.instructorService.GetInstructorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      instructor,
		Timestamp: time.Now(),
	})
}

// GetInstructorByEmail retrieves an instructor by exact email
// @Summary Get instructor by email
// @Description Retrieves an instructor by exact email match
// @Tags instructors
// @Accept json
// @Produce json
// @Param email query string true "Instructor email"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing email parameter"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/by-email [get]
func (c *InstructorController) GetInstructorByEmail(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing email parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	instructor, err := c.instructorService.GetInstructorByEmail(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      instructor,
		Timestamp: time.Now(),
	})
}

// GetAllInstructors retrieves a page of instructors
// @Summary List instructors
// @Description Retrieves instructors with pagination
// @Tags instructors
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.InstructorListResponse} "Instructors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors [get]
func (c *InstructorController) GetAllInstructors(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	instructors, err := c.instructorService.GetAllInstructors(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      instructors,
		Timestamp: time.Now(),
	})
}

// UpdateInstructor updates an existing instructor
// @Summary Update an instructor
// @Description Updates an instructor. A details payload creates or updates the linked record; omitting it unlinks the current one.
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID" Format(int64) minimum(1)
// @Param request body dto.UpdateInstructorRequest true "Updated instructor information"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id} [put]
func (c *InstructorController) UpdateInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}

	var req dto.UpdateInstructorRequest
	if !bindJSON(ctx, &req) {
		return
	}

	instructor, err := c.instructorService.UpdateInstructor(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      instructor,
		Timestamp: time.Now(),
	})
}

// DeleteInstructor deletes an instructor
// @Summary Delete an instructor
// @Description Deletes an instructor together with its owned details record. The instructor's courses and their reviews are removed as well.
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.DeleteResponse "Instructor deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID format"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id} [delete]
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}

	if err := c.instructorService.DeleteInstructor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDeleteResponse(id, "Instructor", "Instructor deleted successfully"))
}

// AddInstructorDetails links an existing details record to an instructor
// @Summary Link instructor details
// @Description Links an existing standalone details record to an instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID" Format(int64) minimum(1)
// @Param request body dto.LinkInstructorDetailsRequest true "Details record to link"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Details linked successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Instructor or details record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id}/details [put]
func (c *InstructorController) AddInstructorDetails(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}

	var req dto.LinkInstructorDetailsRequest
	if !bindJSON(ctx, &req) {
		return
	}

	instructor, err := c.instructorService.AddInstructorDetails(ctx, id, req.DetailsID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      instructor,
		Timestamp: time.Now(),
	})
}

// RemoveInstructorDetails unlinks an instructor's details record
// @Summary Unlink instructor details
// @Description Unlinks an instructor's details record without deleting it
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Details unlinked successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID format"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id}/details [delete]
func (c *InstructorController) RemoveInstructorDetails(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}

	instructor, err := c.instructorService.RemoveInstructorDetails(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      instructor,
		Timestamp: time.Now(),
	})
}

// SearchInstructors finds instructors by name
// @Summary Search instructors
// @Description Finds instructors whose first or last name contains the query, case-insensitively
// @Tags instructors
// @Accept json
// @Produce json
// @Param name query string true "Name fragment"
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorResponse} "Instructors retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing name parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/search [get]
func (c *InstructorController) SearchInstructors(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing name parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	instructors, err := c.instructorService.SearchInstructorsByName(ctx, name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      instructors,
		Timestamp: time.Now(),
	})
}

// GetInstructorsWithDetails lists instructors that have a linked details record
// @Summary List instructors with details
// @Description Retrieves instructors that have a linked details record
// @Tags instructors
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorResponse} "Instructors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/with-details [get]
func (c *InstructorController) GetInstructorsWithDetails(ctx *gin.Context) {
	instructors, err := c.instructorService.GetInstructorsWithDetails(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      instructors,
		Timestamp: time.Now(),
	})
}

// GetInstructorsWithoutDetails lists instructors with no linked details record
// @Summary List instructors without details
// @Description Retrieves instructors that have no linked details record
// @Tags instructors
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorResponse} "Instructors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/without-details [get]
func (c *InstructorController) GetInstructorsWithoutDetails(ctx *gin.Context) {
	instructors, err := c.instructorService.GetInstructorsWithoutDetails(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      instructors,
		Timestamp: time.Now(),
	})
}

// InstructorExists checks whether an instructor exists
// @Summary Check instructor existence
// @Description Reports whether an instructor with the given ID exists
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.ExistsResponse "Existence result"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors/{id}/exists [get]
func (c *InstructorController) InstructorExists(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Instructor")
	if !ok {
		return
	}

	exists, err := c.instructorService.InstructorExistsByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExistsResponse{Exists: exists})
}
