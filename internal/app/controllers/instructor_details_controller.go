package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aomari/course-management/internal/app/models/dto"
	"github.com/aomari/course-management/internal/app/services"
	"github.com/aomari/course-management/internal/middleware"
)

// InstructorDetailsController handles instructor details operations
type InstructorDetailsController struct {
	detailsService services.InstructorDetailsService
}

// NewInstructorDetailsController creates a new InstructorDetailsController
func NewInstructorDetailsController(detailsService services.InstructorDetailsService) *InstructorDetailsController {
	return &InstructorDetailsController{
		detailsService: detailsService,
	}
}

// CreateInstructorDetails handles standalone details creation
// @Summary Create instructor details
// @Description Creates a standalone details record that can be linked to an instructor later
// @Tags instructor-details
// @Accept json
// @Produce json
// @Param request body dto.CreateInstructorDetailsRequest true "Details information"
// @Success 201 {object} dto.APIResponse{data=dto.InstructorDetailsResponse} "Details created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructor-details [post]
func (c *InstructorDetailsController) CreateInstructorDetails(ctx *gin.Context) {
	var req dto.CreateInstructorDetailsRequest
	if !bindJSON(ctx, &req) {
		return
	}

	details, err := c.detailsService.CreateInstructorDetails(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      details,
		Timestamp: time.Now(),
	})
}

// GetInstructorDetailsByID retrieves a details record by ID
// @Summary Get instructor details record
// @Description Retrieves a details record by its ID
// @Tags instructor-details
// @Accept json
// @Produce json
// @Param id path int true "Details ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.InstructorDetailsResponse} "Details retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid details ID format"
// @Failure 404 {object} dto.ErrorResponse "Details not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructor-details/{id} [get]
func (c *InstructorDetailsController) GetInstructorDetailsByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Details")
	if !ok {
		return
	}

	details, err := c.detailsService.GetInstructorDetailsByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      details,
		Timestamp: time.Now(),
	})
}

// UpdateInstructorDetails updates an existing details record
// @Summary Update instructor details
// @Description Replaces both fields of an existing details record
// @Tags instructor-details
// @Accept json
// @Produce json
// @Param id path int true "Details ID" Format(int64) minimum(1)
// @Param request body dto.UpdateInstructorDetailsRequest true "Updated details information"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorDetailsResponse} "Details updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Details not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructor-details/{id} [put]
func (c *InstructorDetailsController) UpdateInstructorDetails(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Details")
	if !ok {
		return
	}

	var req dto.UpdateInstructorDetailsRequest
	if !bindJSON(ctx, &req) {
		return
	}

	details, err := c.detailsService.UpdateInstructorDetails(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      details,
		Timestamp: time.Now(),
	})
}

// DeleteInstructorDetails deletes a details record
// @Summary Delete instructor details
// @Description Deletes a details record. A linked instructor survives with its reference cleared.
// @Tags instructor-details
// @Accept json
// @Produce json
// @Param id path int true "Details ID" Format(int64) minimum(1)
// @Success 200 {object} dto.DeleteResponse "Details deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid details ID format"
// @Failure 404 {object} dto.ErrorResponse "Details not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructor-details/{id} [delete]
func (c *InstructorDetailsController) DeleteInstructorDetails(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Details")
	if !ok {
		return
	}

	if err := c.detailsService.DeleteInstructorDetails(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDeleteResponse(id, "InstructorDetails", "Instructor details deleted successfully"))
}

// SearchInstructorDetails finds details by channel or hobby
// @Summary Search instructor details
// @Description Finds details by case-insensitive substring on the YouTube channel or hobby
// @Tags instructor-details
// @Accept json
// @Produce json
// @Param channel query string false "Channel fragment"
// @Param hobby query string false "Hobby fragment"
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorDetailsResponse} "Details retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing search parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructor-details/search [get]
func (c *InstructorDetailsController) SearchInstructorDetails(ctx *gin.Context) {
	channel := ctx.Query("channel")
	hobby := ctx.Query("hobby")

	var (
		details interface{}
		err     error
	)
	switch {
	case channel != "":
		details, err = c.detailsService.SearchByYoutubeChannel(ctx, channel)
	case hobby != "":
		details, err = c.detailsService.SearchByHobby(ctx, hobby)
	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing search parameter")
		errorDetail = errorDetail.WithDetails("Provide a channel or hobby query parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      details,
		Timestamp: time.Now(),
	})
}

// GetOrphanedInstructorDetails lists details no instructor points to
// @Summary List orphaned details
// @Description Retrieves details records that no instructor currently links to
// @Tags instructor-details
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorDetailsResponse} "Details retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructor-details/orphaned [get]
func (c *InstructorDetailsController) GetOrphanedInstructorDetails(ctx *gin.Context) {
	details, err := c.detailsService.GetOrphanedDetails(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      details,
		Timestamp: time.Now(),
	})
}
