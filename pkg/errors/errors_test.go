// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/textops/textops/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "operation not registered",
			wantStr: "[NOT_FOUND] operation not registered",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "empty delimiter",
			wantStr: "[INVALID_INPUT] empty delimiter",
		},
		{
			name:    "file_write_error",
			code:    errors.ErrFileWrite,
			message: "cannot rewrite template",
			wantStr: "[FILE_WRITE] cannot rewrite template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.wantStr, err.Error())
			assert.Equal(t, tt.code, err.Code)
			assert.Nil(t, err.Wrapped)
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrFileNotFound, "no such file %q", "vars.txt")
	assert.Equal(t, `[FILE_NOT_FOUND] no such file "vars.txt"`, err.Error())
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := errors.Wrap(inner, errors.ErrFileWrite, "rewrite failed")

	assert.Equal(t, "[FILE_WRITE] rewrite failed: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, inner))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "ignored"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "ignored %d", 1))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "missing")
	wrapped := errors.Wrap(err, errors.ErrInternal, "outer")

	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.False(t, errors.IsErrorCode(err, errors.ErrInternal))

	// As unwraps to the outermost coded error
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrInternal))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrNotFound, errors.GetErrorCode(errors.New(errors.ErrNotFound, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInvalidInput, "bad delimiter").
		WithDetail("delimiter", "")

	assert.Equal(t, "", err.Details["delimiter"])
}

func TestErrorIsByCode(t *testing.T) {
	a := errors.New(errors.ErrNotFound, "first")
	b := errors.New(errors.ErrNotFound, "second")

	assert.True(t, stderrors.Is(a, b))
}
