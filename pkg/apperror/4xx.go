package apperror

import (
	"net/http"
)

const (
	BindingCode        = "400001"
	ValidationCode     = "400002"
	DomainRuleCode     = "422003"
	EntityNotFoundCode = "404004"
	EntityConflictCode = "409005"
)

// 400 Bad Request
func ErrInvalidRequest(err error) Error {
	return NewError(err, http.StatusBadRequest, BindingCode, "Invalid request")
}

func ErrInvalidParam(err error) Error {
	return NewError(err, http.StatusBadRequest, ValidationCode, "Invalid param")
}

// 404 Not Found
func ErrEntityNotFound(err error) Error {
	return NewError(err, http.StatusNotFound, EntityNotFoundCode, "Entity not found")
}

// 422 Unprocessable Entity
func ErrDomainRule(err error) Error {
	return NewError(err, http.StatusUnprocessableEntity, DomainRuleCode, "Domain rule violated")
}

// 409 Conflict
func ErrEntityConflict(err error) Error {
	return NewError(err, http.StatusConflict, EntityConflictCode, "Entity already exists")
}
