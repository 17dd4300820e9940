package result_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libris/pkg/result"
)

var errSample = errors.New("sample failure")

func TestOk(t *testing.T) {
	r := result.Ok[int, error](42)

	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.Equal(t, 42, r.Value())
	assert.Equal(t, 42, r.Unwrap())
}

func TestErr(t *testing.T) {
	r := result.Err[int](errSample)

	assert.False(t, r.IsOk())
	assert.True(t, r.IsErr())
	assert.Equal(t, errSample, r.Error())
}

func TestUnwrapPanicsOnErr(t *testing.T) {
	r := result.Err[string](errSample)

	assert.Panics(t, func() {
		_ = r.Unwrap()
	})
}

func TestUnwrapOr(t *testing.T) {
	t.Run("returns value on ok", func(t *testing.T) {
		r := result.Ok[string, error]("actual")
		assert.Equal(t, "actual", r.UnwrapOr("default"))
	})

	t.Run("returns default on err", func(t *testing.T) {
		r := result.Err[string](errSample)
		assert.Equal(t, "default", r.UnwrapOr("default"))
	})
}

func TestMap(t *testing.T) {
	t.Run("transforms value on ok", func(t *testing.T) {
		r := result.Ok[int, error](21)

		mapped := result.Map(r, func(v int) int { return v * 2 })

		require.True(t, mapped.IsOk())
		assert.Equal(t, 42, mapped.Value())
	})

	t.Run("passes error through and never calls fn", func(t *testing.T) {
		r := result.Err[int](errSample)
		calls := 0

		mapped := result.Map(r, func(v int) string {
			calls++
			return "unreachable"
		})

		require.True(t, mapped.IsErr())
		assert.Equal(t, errSample, mapped.Error())
		assert.Zero(t, calls)
	})
}

func TestMapErr(t *testing.T) {
	t.Run("transforms error on err", func(t *testing.T) {
		r := result.Err[int](errSample)

		mapped := result.MapErr(r, func(e error) string { return e.Error() })

		require.True(t, mapped.IsErr())
		assert.Equal(t, "sample failure", mapped.Error())
	})

	t.Run("passes value through and never calls fn", func(t *testing.T) {
		r := result.Ok[int, error](7)
		calls := 0

		mapped := result.MapErr(r, func(e error) string {
			calls++
			return "unreachable"
		})

		require.True(t, mapped.IsOk())
		assert.Equal(t, 7, mapped.Value())
		assert.Zero(t, calls)
	})
}

func TestFlatMap(t *testing.T) {
	double := func(v int) result.Result[int, error] {
		return result.Ok[int, error](v * 2)
	}
	fail := func(v int) result.Result[int, error] {
		return result.Err[int](errSample)
	}

	t.Run("chains on ok", func(t *testing.T) {
		r := result.FlatMap(result.Ok[int, error](10), double)

		require.True(t, r.IsOk())
		assert.Equal(t, 20, r.Value())
	})

	t.Run("propagates error from fn", func(t *testing.T) {
		r := result.FlatMap(result.Ok[int, error](10), fail)

		require.True(t, r.IsErr())
		assert.Equal(t, errSample, r.Error())
	})

	t.Run("short-circuits on first error", func(t *testing.T) {
		earlier := errors.New("earlier failure")
		calls := 0

		r := result.FlatMap(result.Err[int](earlier), func(v int) result.Result[int, error] {
			calls++
			return result.Ok[int, error](v)
		})

		require.True(t, r.IsErr())
		assert.Equal(t, earlier, r.Error())
		assert.Zero(t, calls)
	})

	t.Run("propagates earliest error through a chain", func(t *testing.T) {
		first := errors.New("first failure")

		r := result.FlatMap(
			result.FlatMap(result.Err[int](first), double),
			fail,
		)

		require.True(t, r.IsErr())
		assert.Equal(t, first, r.Error())
	})
}
