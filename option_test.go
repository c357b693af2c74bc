package xtd_test

import (
	"testing"

	"github.com/mknejp/xtd"
	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	assert := assert.New(t)

	const v uint = 123

	opt := xtd.Some(v)

	assert.True(opt.Some(), "should be Some")
	assert.False(opt.None(), "should not be None")
	assert.Equal(v, opt.Raw(), "should contain `v`")
}

func TestNone(t *testing.T) {
	assert := assert.New(t)

	var zeroVal uint

	opt := xtd.None[uint]()

	assert.False(opt.Some(), "should not be Some")
	assert.True(opt.None(), "should be None")
	assert.Equal(zeroVal, opt.Raw(), "should contain Zero value")
}

func TestOption_ZeroValue(t *testing.T) {
	assert := assert.New(t)

	var opt xtd.Option[string]
	fromMarker := xtd.None[string]()

	assert.True(opt.None(), "zero value should be None")
	assert.True(xtd.Equal(opt, fromMarker), "zero value and None() should be equal")
}

func TestSomeBy(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	opt := xtd.SomeBy(func() string {
		calls++
		return "built"
	})

	assert.Equal(1, calls, "build should run exactly once")
	assert.True(opt.Some(), "should be Some")
	assert.Equal("built", opt.Raw(), "should contain the built value")
}

func TestFromPtr(t *testing.T) {
	assert := assert.New(t)

	t.Run("nil pointer", func(t *testing.T) {
		opt := xtd.FromPtr[int](nil)

		assert.True(opt.None(), "nil should become None")
	})

	t.Run("non-nil pointer", func(t *testing.T) {
		v := 42
		opt := xtd.FromPtr(&v)

		assert.True(opt.Some(), "pointer should become Some")
		assert.Equal(v, opt.Raw(), "should contain the pointee")
	})
}

func TestOption_Get(t *testing.T) {
	assert := assert.New(t)

	t.Run("some", func(t *testing.T) {
		const v string = "abc"

		opt := xtd.Some(v)

		actual, ok := opt.Get()

		assert.True(ok)
		assert.Equal(v, actual)
	})

	t.Run("none", func(t *testing.T) {
		var zeroVal string

		opt := xtd.None[string]()

		actual, ok := opt.Get()

		assert.False(ok)
		assert.Equal(zeroVal, actual)
	})
}

func TestOption_GetOrDefault(t *testing.T) {
	assert := assert.New(t)

	t.Run("some", func(t *testing.T) {
		const v string = "abc"

		opt := xtd.Some(v)

		actual := opt.GetOrDefault("def")

		assert.Equal(v, actual)
	})

	t.Run("none", func(t *testing.T) {
		const defVal string = "def"

		opt := xtd.None[string]()

		actual := opt.GetOrDefault(defVal)

		assert.Equal(defVal, actual)
	})

	t.Run("none stays none", func(t *testing.T) {
		opt := xtd.None[int]()

		actual := opt.GetOrDefault(1)

		assert.Equal(1, actual)
		assert.True(opt.None(), "GetOrDefault must not engage the Option")
	})
}

func TestOption_GetOrElse(t *testing.T) {
	assert := assert.New(t)

	t.Run("some", func(t *testing.T) {
		opt := xtd.Some(10)

		actual := opt.GetOrElse(func() int {
			t.Error("fallback should not run for Some")
			return 0
		})

		assert.Equal(10, actual)
	})

	t.Run("none", func(t *testing.T) {
		opt := xtd.None[int]()

		actual := opt.GetOrElse(func() int { return 7 })

		assert.Equal(7, actual)
	})
}

func TestOption_Unwrap(t *testing.T) {
	assert := assert.New(t)

	t.Run("some", func(t *testing.T) {
		opt := xtd.Some(42)

		v, err := opt.Unwrap()

		assert.NoError(err)
		assert.Equal(42, v, "should return the exact stored value")
		assert.True(opt.Some(), "reading must not change the state")
	})

	t.Run("none", func(t *testing.T) {
		opt := xtd.None[int]()

		_, err := opt.Unwrap()

		assert.ErrorIs(err, xtd.ErrDisengaged)
		assert.True(opt.None(), "reading must not change the state")
	})
}

func TestOption_Must(t *testing.T) {
	assert := assert.New(t)

	t.Run("some", func(t *testing.T) {
		opt := xtd.Some("abc")

		assert.Equal("abc", opt.Must())
	})

	t.Run("none", func(t *testing.T) {
		opt := xtd.None[string]()

		assert.Panics(func() { opt.Must() }, "Must on None should panic")
	})
}

func TestOption_Ptr(t *testing.T) {
	assert := assert.New(t)

	t.Run("some", func(t *testing.T) {
		opt := xtd.Some(5)

		p := opt.Ptr()

		assert.NotNil(p)
		assert.Equal(5, *p)

		*p = 6
		assert.Equal(5, opt.Raw(), "mutating the pointee must not affect the Option")
	})

	t.Run("none", func(t *testing.T) {
		opt := xtd.None[int]()

		assert.Nil(opt.Ptr())
	})
}

func TestOption_Iter(t *testing.T) {
	assert := assert.New(t)

	t.Run("some yields once", func(t *testing.T) {
		opt := xtd.Some("x")

		var got []string
		for v := range opt.Iter() {
			got = append(got, v)
		}

		assert.Equal([]string{"x"}, got)
	})

	t.Run("none yields nothing", func(t *testing.T) {
		opt := xtd.None[string]()

		count := 0
		for range opt.Iter() {
			count++
		}

		assert.Zero(count)
	})
}

func TestOption_Set(t *testing.T) {
	assert := assert.New(t)

	t.Run("engage from none", func(t *testing.T) {
		var opt xtd.Option[string]

		opt.Set("hello")

		assert.True(opt.Some())
		assert.Equal("hello", opt.Raw())
	})

	t.Run("replace existing", func(t *testing.T) {
		opt := xtd.Some("first")

		opt.Set("second")

		assert.Equal("second", opt.Raw())
	})
}

func TestOption_Reset(t *testing.T) {
	assert := assert.New(t)

	t.Run("some", func(t *testing.T) {
		opt := xtd.Some(3)

		opt.Reset()

		assert.True(opt.None())
		assert.Zero(opt.Raw(), "stored value should be dropped")
	})

	t.Run("none is a no-op", func(t *testing.T) {
		opt := xtd.None[int]()

		opt.Reset()

		assert.True(opt.None())
	})
}

func TestOption_Replace(t *testing.T) {
	assert := assert.New(t)

	t.Run("some", func(t *testing.T) {
		opt := xtd.Some(1)

		prev := opt.Replace(2)

		assert.Equal(2, opt.Raw())
		assert.True(prev.Some())
		assert.Equal(1, prev.Raw(), "previous value should be handed back")
	})

	t.Run("none", func(t *testing.T) {
		opt := xtd.None[int]()

		prev := opt.Replace(2)

		assert.Equal(2, opt.Raw())
		assert.True(prev.None())
	})
}

func TestOption_Take(t *testing.T) {
	assert := assert.New(t)

	opt := xtd.Some("payload")

	taken := opt.Take()

	assert.True(opt.None(), "Take should leave the Option None")
	assert.True(taken.Some())
	assert.Equal("payload", taken.Raw())

	again := opt.Take()
	assert.True(again.None(), "second Take should yield None")
}

func TestOption_Emplace(t *testing.T) {
	assert := assert.New(t)

	t.Run("replaces existing value", func(t *testing.T) {
		opt := xtd.Some("old")

		sawOldDropped := false
		v := opt.Emplace(func() string {
			// The old value must already be gone when build runs.
			sawOldDropped = opt.None()
			return "new"
		})

		assert.True(sawOldDropped, "old value should be dropped before build runs")
		assert.Equal("new", v)
		assert.Equal("new", opt.Raw())
	})

	t.Run("panicking build leaves None", func(t *testing.T) {
		opt := xtd.Some("old")

		assert.Panics(func() {
			opt.Emplace(func() string { panic("boom") })
		})

		assert.True(opt.None(), "a failed Emplace must not restore the old value")
	})
}

func TestOption_Swap(t *testing.T) {
	assert := assert.New(t)

	t.Run("one engaged", func(t *testing.T) {
		a := xtd.Some("x")
		b := xtd.None[string]()

		a.Swap(&b)

		assert.True(a.None())
		assert.True(b.Some())
		assert.Equal("x", b.Raw())
	})

	t.Run("both engaged", func(t *testing.T) {
		a := xtd.Some("x")
		b := xtd.Some("y")

		a.Swap(&b)

		assert.Equal("y", a.Raw())
		assert.Equal("x", b.Raw())
	})

	t.Run("both none", func(t *testing.T) {
		a := xtd.None[int]()
		b := xtd.None[int]()

		a.Swap(&b)

		assert.True(a.None())
		assert.True(b.None())
	})
}

func TestOption_Assignment(t *testing.T) {
	assert := assert.New(t)

	t.Run("engaged becomes disengaged", func(t *testing.T) {
		a := xtd.Some(1)
		b := xtd.None[int]()

		a = b

		assert.True(a.None(), "assigning None must disengage the target")
	})

	t.Run("disengaged becomes engaged", func(t *testing.T) {
		a := xtd.None[int]()
		b := xtd.Some(2)

		a = b

		assert.True(a.Some())
		assert.Equal(2, a.Raw())
	})

	t.Run("copies are independent", func(t *testing.T) {
		a := xtd.Some(1)
		b := a

		b.Set(2)

		assert.Equal(1, a.Raw(), "mutating a copy must not affect the source")
	})
}

func TestOption_EndToEnd(t *testing.T) {
	assert := assert.New(t)

	var opt xtd.Option[string]

	_, err := opt.Unwrap()
	assert.ErrorIs(err, xtd.ErrDisengaged)

	opt.Set("hello")

	assert.True(opt.Some())
	assert.Equal("hello", opt.Raw())

	v, err := opt.Unwrap()
	assert.NoError(err)
	assert.Equal("hello", v)
}
