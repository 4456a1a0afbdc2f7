package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError carries the HTTP status a failure should be reported with.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fiber.ErrInternalServerError.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

func BadRequest(message string, err error) *AppError {
	return NewAppError(fiber.StatusBadRequest, message, err)
}

func NotFound(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, message, nil)
}

// resolve maps any handler error to a status and a message safe to show.
// Unknown errors are reported as a plain 500.
func resolve(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Error()
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	return fiber.StatusInternalServerError, fiber.ErrInternalServerError.Message
}

func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		status, message := resolve(err)
		return ctx.Status(status).JSON(ErrorResponse(status, message))
	}
}

// ErrorHandler is the fiber.Config hook for errors raised outside the middleware chain,
// e.g. an oversized body.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	status, message := resolve(err)
	return ctx.Status(status).JSON(ErrorResponse(status, message))
}
