package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textops/textops/pkg/errors"
	"github.com/textops/textops/pkg/types"
)

func TestRegisterAndGet(t *testing.T) {
	reg := New[string]()

	require.NoError(t, reg.Register("lower", "case filter"))

	got, err := reg.Get("lower")
	require.NoError(t, err)
	assert.Equal(t, "case filter", got)
}

func TestRegisterEmptyName(t *testing.T) {
	reg := New[string]()

	err := reg.Register("", "anonymous")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRegisterDuplicate(t *testing.T) {
	reg := New[int]()

	require.NoError(t, reg.Register("sort", 1))
	err := reg.Register("sort", 2)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	// Original registration survives
	got, err := reg.Get("sort")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestGetMissing(t *testing.T) {
	reg := New[string]()

	_, err := reg.Get("absent")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestListSorted(t *testing.T) {
	reg := New[int]()
	for i, name := range []string{"upper", "lower", "title"} {
		require.NoError(t, reg.Register(name, i))
	}

	assert.Equal(t, []string{"lower", "title", "upper"}, reg.List())
}

func TestListPrefix(t *testing.T) {
	reg := New[int]()
	for i, name := range []string{"trim", "trim-lines", "ltrim", "rtrim", "squeeze"} {
		require.NoError(t, reg.Register(name, i))
	}

	assert.Equal(t, []string{"trim", "trim-lines"}, reg.ListPrefix("trim"))
	assert.Empty(t, reg.ListPrefix("join"))
	assert.Len(t, reg.ListPrefix(""), 5)
}

func TestHasClearCount(t *testing.T) {
	reg := New[bool]()
	require.NoError(t, reg.Register("split", true))

	assert.True(t, reg.Has("split"))
	assert.Equal(t, 1, reg.Count())

	reg.Clear()
	assert.False(t, reg.Has("split"))
	assert.Equal(t, 0, reg.Count())
}

func TestMustRegisterPanics(t *testing.T) {
	reg := New[string]()
	MustRegister(reg, "join", "list filter")

	assert.Panics(t, func() {
		MustRegister(reg, "join", "again")
	})
}

func TestMustGetPanics(t *testing.T) {
	reg := New[string]()

	assert.Panics(t, func() {
		MustGet(reg, "absent")
	})
}

func TestOperationRegistry(t *testing.T) {
	// The global registry is shared; use a throwaway name and leave the
	// real registrations alone.
	op := types.Operation{
		Name:    "test-echo",
		Group:   "test",
		Summary: "echoes its input",
		Filter: func(req types.Request) (string, error) {
			return req.Input, nil
		},
	}
	require.NoError(t, RegisterOperation(op))

	got, err := GetOperation("test-echo")
	require.NoError(t, err)
	assert.Equal(t, "test-echo", got.Name)

	out, err := got.Filter(types.Request{Input: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	assert.True(t, HasOperation("test-echo"))
	assert.Contains(t, ListOperations("test-"), "test-echo")
}
