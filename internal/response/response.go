// Package response builds the uniform JSON envelope every endpoint
// returns, success and error paths alike.  The shape is the one
// non-negotiable wire contract of the API:
//
//	{success, data, message, errors, meta}
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the fixed response wrapper.  Errors is always a map (never
// null) and Meta defaults to an empty object so clients can consume both
// without null checks.
type Envelope struct {
	Success bool                `json:"success"`
	Data    any                 `json:"data"`
	Message *string             `json:"message"`
	Errors  map[string][]string `json:"errors"`
	Meta    any                 `json:"meta"`
}

// JSON writes a fully specified envelope.  An empty message becomes
// JSON null to match the contract's string|null message field.
func JSON(c echo.Context, status int, success bool, data any, message string, errs map[string][]string, meta any) error {
	var msg *string
	if message != "" {
		msg = &message
	}
	if errs == nil {
		errs = map[string][]string{}
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return c.JSON(status, Envelope{
		Success: success,
		Data:    data,
		Message: msg,
		Errors:  errs,
		Meta:    meta,
	})
}

// Success writes a 200 envelope with empty errors and meta.
func Success(c echo.Context, data any, message string) error {
	return JSON(c, http.StatusOK, true, data, message, nil, nil)
}

// SuccessMeta is Success plus paging metadata for list endpoints.
func SuccessMeta(c echo.Context, data any, message string, meta any) error {
	return JSON(c, http.StatusOK, true, data, message, nil, meta)
}

// Created writes a 201 envelope for store flows that echo back the
// canonical row read from the database.
func Created(c echo.Context, data any, message string) error {
	return JSON(c, http.StatusCreated, true, data, message, nil, nil)
}

// Error writes a failure envelope with null data and the given status.
func Error(c echo.Context, status int, message string, errs map[string][]string) error {
	return JSON(c, status, false, nil, message, errs, nil)
}
