package usecase

import "errors"

// Sentinel errors for the use case layer. HTTP handlers map these to
// response codes; everything else is treated as an internal failure.
var (
	// Not found errors
	ErrReportNotFound   = errors.New("report not found")
	ErrIdentityNotFound = errors.New("identity not found")

	// Validation errors
	ErrValidation = errors.New("invalid input")

	// Lifecycle errors
	ErrInvalidState      = errors.New("operation not allowed in current case state")
	ErrInvalidTransition = errors.New("status not selectable")

	// Access control errors
	ErrForbidden = errors.New("operation not permitted for this role")

	// Share link errors
	ErrInvalidLink = errors.New("invalid share link")
	ErrExpiredLink = errors.New("expired share link")

	// External service errors
	ErrAdvisoryFailed = errors.New("advisory service failed")
)
