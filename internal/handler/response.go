package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"omsbridge/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// HandleError maps an engine or domain error to the appropriate response.
// A validation rejection is the caller's fault (400) and carries the first
// violated rule; a downstream submission failure is a 500 the caller may
// retry.
func HandleError(c *gin.Context, err error) {
	if rej, ok := domain.AsRejection(err); ok {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   &APIError{Code: rej.Code, Field: rej.Field, Message: rej.Message},
		})
		return
	}

	requestID, _ := c.Get("request_id")
	switch {
	case errors.Is(err, domain.ErrSubmissionFailed):
		log.Printf("[%s] downstream submission failed: %v", requestID, err)
		RespondError(c, http.StatusInternalServerError, "SUBMISSION_FAILED", "Failed to insert into ERP")
	case errors.Is(err, domain.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
	default:
		log.Printf("[%s] internal error: %v", requestID, err)
		RespondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
	}
}
