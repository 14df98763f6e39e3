package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"signsheet/internal/domain"
	"signsheet/internal/middleware"
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

// parseErrorCodes maps parse failure kinds to API error codes.
var parseErrorCodes = map[domain.ErrorKind]string{
	domain.ErrorKindEmptyInput:         "EMPTY_INPUT",
	domain.ErrorKindNoHeaderRecognized: "NO_HEADER_RECOGNIZED",
	domain.ErrorKindNoNamesMarker:      "NO_NAMES_MARKER",
	domain.ErrorKindNoneFound:          "NO_DATE_FOUND",
	domain.ErrorKindMismatched:         "DATE_MISMATCH",
	domain.ErrorKindNoRecordsFound:     "NO_RECORDS_FOUND",
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
// Client errors carry the error text; server errors get a generic message.
func MapDomainError(err error) (status int, code, msg string) {
	var pe *domain.ParseError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &pe):
		kindCode, ok := parseErrorCodes[pe.Kind]
		if !ok {
			kindCode = "PARSE_FAILED"
		}
		return http.StatusUnprocessableEntity, kindCode, pe.Error()
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "request body exceeds maximum allowed size"
	case errors.Is(err, domain.ErrInvalidDateFormat):
		return http.StatusBadRequest, "INVALID_DATE_FORMAT", err.Error()
	case errors.Is(err, domain.ErrInvalidTime):
		return http.StatusBadRequest, "INVALID_TIME", err.Error()
	case errors.Is(err, domain.ErrTooManyPages):
		return http.StatusBadRequest, "TOO_MANY_PAGES", err.Error()
	case errors.Is(err, domain.ErrSelectedDateFormat):
		return http.StatusBadRequest, "INVALID_SELECTED_DATE", err.Error()
	case errors.Is(err, domain.ErrSelectedDateDiffer):
		return http.StatusUnprocessableEntity, "SELECTED_DATE_MISMATCH", err.Error()
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, "INVALID_REQUEST", err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "TIMEOUT", "request timed out"
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout, "REQUEST_CANCELED", "request was canceled"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// A parse failure also carries the failed result as data, so clients always
// receive the date and warnings that were established before the failure.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	requestID := middleware.GetRequestID(c)
	if status >= 500 {
		log.Printf("[%s] internal error: %v", requestID, err)
	}

	var pe *domain.ParseError
	if errors.As(err, &pe) {
		log.Printf("[%s] parse failed: %s", requestID, pe.Kind)
		c.JSON(status, APIResponse{
			Success: false,
			Data:    domain.FailedResult(pe),
			Error:   &APIError{Code: code, Message: msg},
		})
		return
	}
	RespondError(c, status, code, msg)
}

// bindError responds to a request body that could not be decoded.
func bindError(c *gin.Context, err error, msg string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		HandleError(c, err)
		return
	}
	RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", msg)
}
