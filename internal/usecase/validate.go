package usecase

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/planhub/planner/internal/domain/errors"
)

// requiredText trims the value and enforces the length bound; an empty
// result is rejected.
func requiredText(field, value string, max int) (string, error) {
	v := strings.TrimSpace(value)
	if utf8.RuneCountInString(v) > max {
		return "", apperrors.Validationf("%s cannot exceed %d characters", field, max)
	}
	if v == "" {
		return "", apperrors.Validationf("%s cannot be empty", field)
	}
	return v, nil
}

// optionalText trims the value and enforces the length bound; empty is
// allowed.
func optionalText(field, value string, max int) (string, error) {
	v := strings.TrimSpace(value)
	if utf8.RuneCountInString(v) > max {
		return "", apperrors.Validationf("%s cannot exceed %d characters", field, max)
	}
	return v, nil
}
