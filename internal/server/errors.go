package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrPortfolioNotFound indicates no portfolio exists with the given ID
type ErrPortfolioNotFound struct {
	ID uuid.UUID
}

func (e *ErrPortfolioNotFound) Error() string {
	return fmt.Sprintf("portfolio not found: %s", e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrPortfolioNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
