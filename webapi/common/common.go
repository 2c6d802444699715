// Package common holds the pieces every handler package shares: request
// binding with validation, the error body shape, and the mapping from
// domain errors to HTTP status codes.
package common

import (
	"errors"

	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the error response shape: {"error": "<message>"}.
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorJSON writes an error body with the given status.
func ErrorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorBody{Error: message})
}

// DomainErrorJSON maps a domain error to its status code and writes the
// error body. The service layer signals typed errors; this is the only
// place status codes are decided.
func DomainErrorJSON(c *fiber.Ctx, err error) error {
	return ErrorJSON(c, ErrorToStatusCode(err), err.Error())
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrHoldingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrInsufficientHoldings),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

var validate = validator.New()

// BindAndValidate parses the request body into T and validates it. On
// failure it writes the error response and returns nil with the error.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	return &input, nil
}
