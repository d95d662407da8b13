package dto

import "time"

// APIResponse provides the base structured API response
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse creates a standard success response
func NewAPIResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// DeleteResponse reports the outcome of a delete operation
type DeleteResponse struct {
	DeletedID    int64     `json:"deletedId" example:"42"`
	ResourceType string    `json:"resourceType" example:"Course"`
	Message      string    `json:"message" example:"Course deleted successfully"`
	Success      bool      `json:"success" example:"true"`
	Timestamp    time.Time `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewDeleteResponse creates a standard delete response
func NewDeleteResponse(deletedID int64, resourceType, message string) DeleteResponse {
	return DeleteResponse{
		DeletedID:    deletedID,
		ResourceType: resourceType,
		Message:      message,
		Success:      true,
		Timestamp:    time.Now(),
	}
}

// CountResponse reports the result of a count operation
type CountResponse struct {
	Count        int64  `json:"count" example:"3"`
	ResourceType string `json:"resourceType" example:"Review"`
	Description  string `json:"description" example:"Number of reviews for course 1"`
}

// ExistsResponse reports the result of an existence check
type ExistsResponse struct {
	Exists bool `json:"exists" example:"true"`
}

// PaginationInfo carries paging metadata for list responses
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"42"`
	TotalPages  int   `json:"totalPages" example:"5"`
}

// PaginatedResponse represents a paginated list with metadata
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
