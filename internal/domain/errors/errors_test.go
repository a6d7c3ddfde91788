package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/planhub/planner/internal/domain/errors"
)

func TestKinds(t *testing.T) {
	validation := apperrors.Validationf("name %q is taken", "alice")
	assert.True(t, apperrors.IsValidation(validation))
	assert.False(t, apperrors.IsStorage(validation))
	assert.Equal(t, `name "alice" is taken`, validation.Error())

	storage := apperrors.Storagef("connection lost")
	assert.True(t, apperrors.IsStorage(storage))
	assert.False(t, apperrors.IsValidation(storage))
}

func TestStorageWrapping(t *testing.T) {
	cause := stderrors.New("disk full")
	err := apperrors.Storage(cause, "Error creating user")

	assert.Equal(t, "Error creating user: disk full", err.Error())
	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, apperrors.IsStorage(err))
}

func TestWrapKeepsKind(t *testing.T) {
	inner := apperrors.Validationf("Board not found")
	wrapped := apperrors.Wrap(fmt.Errorf("export: %w", inner), "Error exporting board")

	assert.True(t, apperrors.IsValidation(wrapped))
	assert.True(t, stderrors.Is(wrapped, inner))

	plain := apperrors.Wrap(stderrors.New("boom"), "Error listing users")
	assert.True(t, apperrors.IsStorage(plain))

	assert.NoError(t, apperrors.Wrap(nil, "ignored"))
}

func TestIsHelpersOnForeignErrors(t *testing.T) {
	err := stderrors.New("not ours")
	assert.False(t, apperrors.IsValidation(err))
	assert.False(t, apperrors.IsStorage(err))
}
