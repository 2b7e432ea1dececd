package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// The engine's failure taxonomy. Every failure surfaced to a caller is one
// of these four kinds (or an internal error); handlers map them to HTTP
// statuses via ErrorStatus.

// NotFoundError marks a referenced truck/order/review as absent. Not retried.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ConflictError marks transaction contention that survived the store's
// internal retries. Transient: the caller may resubmit.
type ConflictError struct {
	Op  string
	Err error
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s: transaction contention: %v", e.Op, e.Err)
}

func (e ConflictError) Unwrap() error { return e.Err }

// IllegalTransitionError marks a status move the order state machine forbids.
type IllegalTransitionError struct {
	From string
	To   string
}

func (e IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal order transition %q -> %q", e.From, e.To)
}

// ValidationError marks input rejected before any write was attempted.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string { return e.Reason }

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var c ConflictError
	return errors.As(err, &c)
}

// ErrorStatus maps a taxonomy error to its HTTP status.
func ErrorStatus(err error) int {
	var (
		nf NotFoundError
		cf ConflictError
		it IllegalTransitionError
		ve ValidationError
	)
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &cf):
		return http.StatusConflict
	case errors.As(err, &it):
		return http.StatusConflict
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
