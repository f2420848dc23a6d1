package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

// NewDuplicateRequestError marks a friend-request uniqueness violation.
func NewDuplicateRequestError() *AppError {
	return &AppError{
		Code:    "DUPLICATE_REQUEST",
		Message: "Friend request already sent",
	}
}

// NewRequestNotFoundError is returned when an accept/decline target is missing
// or no longer pending. Both cases are deliberately indistinguishable.
func NewRequestNotFoundError() *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: "No pending friend request found",
	}
}

// NewNameTakenError marks a username collision at registration.
func NewNameTakenError(username string) *AppError {
	return &AppError{
		Code:    "NAME_TAKEN",
		Message: fmt.Sprintf("Username %q is already taken", username),
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

// NewInactiveAccountError distinguishes a disabled account from wrong credentials.
func NewInactiveAccountError() *AppError {
	return &AppError{
		Code:    "ACCOUNT_INACTIVE",
		Message: "This account is inactive",
	}
}

// NewUpstreamError wraps a failure from the external match-data provider.
func NewUpstreamError(err error) *AppError {
	return &AppError{
		Code:    "UPSTREAM_ERROR",
		Message: "Match data provider request failed",
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
