// Package handler defines the HTTP handlers for the seating API.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is shared by all handlers; validator instances cache struct
// metadata, so a single instance is both cheaper and the documented usage.
var validate = validator.New()

// bindAndValidate decodes the JSON body into dst and runs struct validation.
// On failure it writes the 400 response and reports false so handlers can
// bail out with a bare return.
func bindAndValidate(c echo.Context, dst interface{}) bool {
	if err := c.Bind(dst); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
		return false
	}
	if err := validate.Struct(dst); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "detail": err.Error()})
		return false
	}
	return true
}

// getUserID extracts the user_id stored in context by the JWT middleware.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses a numeric path parameter; zero is never a valid ID.
func pathID(c echo.Context, name string) (uint64, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}
