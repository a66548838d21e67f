// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category classifies a ServiceError and decides its HTTP status
type Category int

const (
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError Category = iota
	// CategoryDataError The client sent invalid data: a malformed payload, an unusable
	// invite code, an expired challenge
	CategoryDataError
	// CategoryUnauthorized The caller identity or wallet ownership could not be established
	CategoryUnauthorized
	// CategoryResourceNotFound The caller or the addressed resource does not exist
	CategoryResourceNotFound
	// CategoryDataConflict The request collides with existing data
	CategoryDataConflict
)

var categories = map[Category]struct {
	name   string
	status int
}{
	CategoryGeneralError:     {"CategoryGeneralError", http.StatusInternalServerError},
	CategoryDataError:        {"CategoryDataError", http.StatusBadRequest},
	CategoryUnauthorized:     {"CategoryUnauthorized", http.StatusUnauthorized},
	CategoryResourceNotFound: {"CategoryResourceNotFound", http.StatusNotFound},
	CategoryDataConflict:     {"CategoryDataConflict", http.StatusConflict},
}

func (c Category) String() string {
	if info, ok := categories[c]; ok {
		return info.name
	}
	return categories[CategoryGeneralError].name
}

// ServiceError is the error type returned by services for failures the client should see.
// Message is the error kind written to the response; Err is only logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

func (err ServiceError) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	if info, ok := categories[err.Category]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

func asServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	svcErr, ok := asServiceError(err)
	return ok && svcErr.Category == cat
}

// KindOf returns the client-facing kind of err, or "" when err is not a ServiceError.
func KindOf(err error) string {
	if svcErr, ok := asServiceError(err); ok {
		return svcErr.Message
	}
	return ""
}

// IsInternalError reports whether err must be hidden from the client
func IsInternalError(err error) bool {
	svcErr, ok := asServiceError(err)
	return !ok || svcErr.Category == CategoryGeneralError
}

func newError(cat Category, err error, kind string) error {
	if err == nil {
		err = errors.New(kind)
	}
	return &ServiceError{
		Category: cat,
		Message:  kind,
		Err:      err,
	}
}

// BadRequestError returns an error with category DataError
func BadRequestError(err error, kind string) error {
	return newError(CategoryDataError, err, kind)
}

// UnAuthorizedError returns an error with category Unauthorized
func UnAuthorizedError(err error, kind string) error {
	return newError(CategoryUnauthorized, err, kind)
}

// ResourceNotFoundError returns an error with category ResourceNotFound
func ResourceNotFoundError(err error, kind string) error {
	return newError(CategoryResourceNotFound, err, kind)
}

// ConflictError returns an error with category DataConflict
func ConflictError(err error, kind string) error {
	return newError(CategoryDataConflict, err, kind)
}
