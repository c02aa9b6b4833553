package apierrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hydrafit/hydra-api/internal/token"
)

// Kind classifies a failure for transport translation. Services speak in
// kinds; only Respond knows about HTTP status codes.
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// Error is a typed service failure with a user-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func BadRequest(message string) *Error   { return New(KindBadRequest, message) }
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }
func Internal(message string) *Error     { return New(KindInternal, message) }

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Success bool        `json:"success"`
}

// OK sends a 200 success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Message: message, Data: data, Success: true})
}

// Created sends a 201 success envelope.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Message: message, Data: data, Success: true})
}

// Respond is the single translator from service errors to HTTP responses.
// Unknown errors become an opaque 500; internals are never exposed.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		c.JSON(statusFor(apiErr.Kind), Envelope{Message: apiErr.Message, Success: false})
		return
	}

	switch {
	case errors.Is(err, token.ErrMissingToken), errors.Is(err, token.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, Envelope{Message: err.Error(), Success: false})
	default:
		c.JSON(http.StatusInternalServerError, Envelope{Message: "internal server error", Success: false})
	}
}

func statusFor(kind Kind) int {
	switch kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
