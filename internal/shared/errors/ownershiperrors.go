package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Ownership-specific error types. These are never downgraded to plain
// validation errors: the API layer must surface them as client-visible
// rejections distinct from not-found.
const (
	ErrorTypeInvalidOrganization ErrorType = "invalid_organization"
	ErrorTypeNotAuthorized       ErrorType = "not_authorized"
)

// OwnershipError signals that a principal attempted to act on an event
// outside the organizations it belongs to.
type OwnershipError struct {
	*AppError
	// OrganizationID is the organization the check ran against.
	OrganizationID uint
}

// Error implements the error interface
func (e *OwnershipError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *OwnershipError) Unwrap() error {
	return e.AppError
}

// NewInvalidOrganizationError reports a mismatch between the expected
// organization and the one actually owning the event.
func NewInvalidOrganizationError(expected, actual uint) *OwnershipError {
	return &OwnershipError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidOrganization,
			Message: "invalid organization",
			Code:    http.StatusBadRequest,
			Details: fmt.Sprintf("expected organization %d, event belongs to %d", expected, actual),
		},
		OrganizationID: expected,
	}
}

// NewNotAuthorizedError reports that the principal is not a member of the
// organization owning the event.
func NewNotAuthorizedError(organizationID uint) *OwnershipError {
	return &OwnershipError{
		AppError: &AppError{
			Type:    ErrorTypeNotAuthorized,
			Message: "not authorized for this organization",
			Code:    http.StatusForbidden,
		},
		OrganizationID: organizationID,
	}
}

// IsOwnershipError checks if the error is an OwnershipError (supports wrapped errors via errors.As)
func IsOwnershipError(err error) bool {
	var ownErr *OwnershipError
	return stderrors.As(err, &ownErr)
}

// IsInvalidOrganizationError checks for the expected-organization mismatch case.
func IsInvalidOrganizationError(err error) bool {
	var ownErr *OwnershipError
	return stderrors.As(err, &ownErr) && ownErr.Type == ErrorTypeInvalidOrganization
}

// IsNotAuthorizedError checks for the missing-membership case.
func IsNotAuthorizedError(err error) bool {
	var ownErr *OwnershipError
	return stderrors.As(err, &ownErr) && ownErr.Type == ErrorTypeNotAuthorized
}
