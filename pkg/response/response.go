package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "github.com/shravanjnaidu/spicetrade/pkg/errors"
)

// The wire format mirrors the original SpiceTrade API: handlers return flat
// payloads (arrays, row objects, or {"success": true, ...}) and failures are
// always {"error": "<message>"} with the status carried by the error.

type ErrorBody struct {
	Error string `json:"error"`
}

func JSON(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Success(c echo.Context, fields map[string]interface{}) error {
	body := map[string]interface{}{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(http.StatusOK, body)
}

func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: validationMessage(validationErr)})
	}

	message := "database error"
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	return c.JSON(apperrors.StatusOf(err), ErrorBody{Error: message})
}

func validationMessage(errs validator.ValidationErrors) string {
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			return field + " is required"
		case "email":
			return field + " must be a valid email address"
		case "min":
			return field + " must be at least " + err.Param()
		case "max":
			return field + " must be at most " + err.Param()
		case "oneof":
			return field + " must be one of: " + err.Param()
		default:
			return field + " is invalid"
		}
	}
	return "invalid input data"
}
