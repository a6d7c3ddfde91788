package http

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/planhub/planner/internal/domain/errors"
)

// RequestValidator plugs go-playground/validator into echo's binding so
// required-field checks run on every bound payload.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator reporting field names by their
// json tags.
func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Failures surface as validation
// errors, never as storage failures.
func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if ok := isValidationErrors(err, &fieldErrs); ok {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}
		return apperrors.Validationf("Missing required fields: %s", strings.Join(fields, ", "))
	}
	return apperrors.Validationf("Invalid request payload")
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		*target = fieldErrs
		return true
	}
	return false
}

// bindRequest decodes and validates the request body. Malformed input
// encoding is a validation failure.
func bindRequest(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return apperrors.Validationf("Invalid JSON format")
	}
	return c.Validate(v)
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Validationf("Invalid %s: %s", name, c.Param(name))
	}
	return id, nil
}

// writeError maps the two error kinds onto the response envelope:
// validation failures are caller-correctable (400), everything else is a
// backend fault (500).
func writeError(c echo.Context, logger *zap.Logger, err error) error {
	if apperrors.IsValidation(err) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error":  "Validation Error",
			"detail": err.Error(),
		})
	}
	logger.Error("Request failed",
		zap.String("path", c.Path()),
		zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error":  "Database Error",
		"detail": err.Error(),
	})
}

func writeSuccess(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

func writeID(c echo.Context, id int64) error {
	return c.JSON(http.StatusOK, map[string]int64{"id": id})
}
