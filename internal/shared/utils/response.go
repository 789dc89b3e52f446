package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskd/internal/shared/errors"
)

// ErrorInfo is the machine-readable error payload. Validation failures
// carry the full list of violated fields.
type ErrorInfo struct {
	Type    string              `json:"type"`
	Message string              `json:"message"`
	Details string              `json:"details,omitempty"`
	Fields  []errors.FieldError `json:"fields,omitempty"`
}

// ErrorEnvelope wraps ErrorInfo in the response body.
type ErrorEnvelope struct {
	Error ErrorInfo `json:"error"`
}

// ListResponse is the list query result: the requested slice plus the
// total match count ignoring paging.
type ListResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
}

// SuccessResponse sends the resource as the response body.
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// CreatedResponse sends a 201 with the created resource as the body.
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ListSuccessResponse sends a 200 with items and the total match count.
func ListSuccessResponse(c *gin.Context, items interface{}, total int64) {
	c.JSON(http.StatusOK, ListResponse{
		Items: items,
		Total: total,
	})
}

// NoContentResponse sends a no content response.
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ErrorResponse sends an error response with custom status code and message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorEnvelope{
		Error: ErrorInfo{
			Type:    "error",
			Message: message,
		},
	})
}

// ErrorResponseWithError sends an error response based on error type.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorEnvelope{
			Error: ErrorInfo{
				Type:    string(appErr.Type),
				Message: appErr.Message,
				Details: appErr.Details,
				Fields:  appErr.Fields,
			},
		})
		return
	}

	// Do not expose internal error details to the client.
	c.JSON(http.StatusInternalServerError, ErrorEnvelope{
		Error: ErrorInfo{
			Type:    string(errors.ErrorTypeInternal),
			Message: "Internal server error occurred",
		},
	})
}
