package apperror

import "net/http"

const (
	InternalServerCode = "500001"
	EventDispatchCode  = "500002"
)

// 500 Internal Server Error
func ErrInternalServer(err error) Error {
	return NewError(err, http.StatusInternalServerError, InternalServerCode, "Internal server error")
}

func ErrEventDispatch(err error) Error {
	return NewError(err, http.StatusInternalServerError, EventDispatchCode, "Event handler failed")
}
