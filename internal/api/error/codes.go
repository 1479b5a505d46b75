package error

import "net/http"

type ErrorCode string

const (
	UnknownError        ErrorCode = "unknown_error"
	InternalServerError ErrorCode = "internal_server_error"
	BadRequest          ErrorCode = "bad_request"
	NotFound            ErrorCode = "not_found"
	MethodNotAllowed    ErrorCode = "method_not_allowed"
	TooManyRequests     ErrorCode = "too_many_requests"
	RecipeNotFound      ErrorCode = "recipe_not_found"
	UserNotFound        ErrorCode = "user_not_found"
	AlreadyFavourited   ErrorCode = "already_favourited"
	FavouriteNotFound   ErrorCode = "favourite_not_found"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:        0, // No error code - unknown
	InternalServerError: http.StatusInternalServerError,
	BadRequest:          http.StatusBadRequest,
	NotFound:            http.StatusNotFound,
	MethodNotAllowed:    http.StatusMethodNotAllowed,
	TooManyRequests:     http.StatusTooManyRequests,
	RecipeNotFound:      http.StatusNotFound,
	UserNotFound:        http.StatusNotFound,
	AlreadyFavourited:   http.StatusConflict,
	FavouriteNotFound:   http.StatusNotFound,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
