package dynarray

import (
	"errors"
	"os"
	"testing"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	os.Exit(m.Run())
}

// traceToTest redirects the core tracer to the log of t at debug level. The
// returned function restores the previous tracer.
func traceToTest(t *testing.T) func() {
	saved := gtrace.CoreTracer
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return func() { gtrace.CoreTracer = saved }
}

func newArray(t *testing.T, capacity int) *Array[int] {
	t.Helper()
	a, err := NewWithCapacity[int](capacity)
	require.NoError(t, err)
	return a
}

func TestNewRejectsNegativeCapacity(t *testing.T) {
	_, err := New[int](Config{InitialCapacity: -1})
	if !errors.Is(err, containers.ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments for negative capacity, got %v", err)
	}
}

func TestNewDefaultCapacity(t *testing.T) {
	a, err := New[string](Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultCapacity, a.Cap())
	assert.Equal(t, 0, a.Len())
	assert.NoError(t, a.Check())
}

func TestAppendDoublesCapacity(t *testing.T) {
	defer traceToTest(t)()
	//
	a := newArray(t, 2)
	a.Append(1)
	a.Append(2)
	require.Equal(t, 2, a.Cap(), "array must not grow before it is full")
	a.Append(3)
	assert.Equal(t, 4, a.Cap())
	assert.Equal(t, 3, a.Len())
	v, err := a.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{1, 2, 3}, a.Values())
	assert.NoError(t, a.Check())
}

func TestCapacitySequenceIsPowersOfTwo(t *testing.T) {
	a := newArray(t, 1)
	caps := []int{}
	for i := range 20 {
		a.Append(i)
		if len(caps) == 0 || caps[len(caps)-1] != a.Cap() {
			caps = append(caps, a.Cap())
		}
	}
	assert.Equal(t, []int{1, 2, 4, 8, 16, 32}, caps)
}

func TestGetOutOfRange(t *testing.T) {
	a := newArray(t, 4)
	a.Append(7)
	for _, index := range []int{-1, 1, 4, 100} {
		_, err := a.Get(index)
		assert.ErrorIs(t, err, containers.ErrIndexOutOfRange, "index %d", index)
	}
}

func TestInsertAt(t *testing.T) {
	a := newArray(t, 2)
	require.NoError(t, a.InsertAt(0, 2))
	require.NoError(t, a.InsertAt(0, 0))
	require.NoError(t, a.InsertAt(1, 1)) // grows
	require.NoError(t, a.InsertAt(3, 3)) // at size, like Append
	assert.Equal(t, []int{0, 1, 2, 3}, a.Values())
	assert.Equal(t, 4, a.Cap())
	assert.NoError(t, a.Check())
}

func TestInsertAtRejectsWithoutMutation(t *testing.T) {
	a := newArray(t, 2)
	a.Append(1)
	a.Append(2)
	err := a.InsertAt(3, 9)
	assert.ErrorIs(t, err, containers.ErrIndexOutOfRange)
	err = a.InsertAt(-1, 9)
	assert.ErrorIs(t, err, containers.ErrIndexOutOfRange)
	assert.Equal(t, []int{1, 2}, a.Values())
	assert.Equal(t, 2, a.Cap(), "rejected insert must not grow the array")
}

func TestRemoveAt(t *testing.T) {
	a := newArray(t, 2)
	for i := range 5 {
		a.Append(i * 10)
	}
	capacity := a.Cap()
	v, err := a.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	v, err = a.RemoveAt(3)
	require.NoError(t, err)
	assert.Equal(t, 40, v)
	assert.Equal(t, []int{0, 20, 30}, a.Values())
	assert.Equal(t, capacity, a.Cap(), "capacity must never shrink")
	assert.NoError(t, a.Check())
	_, err = a.RemoveAt(3)
	assert.ErrorIs(t, err, containers.ErrIndexOutOfRange)
}

func TestRemoveAtReleasesSlot(t *testing.T) {
	a, err := NewWithCapacity[*int](4)
	require.NoError(t, err)
	x, y := 1, 2
	a.Append(&x)
	a.Append(&y)
	_, err = a.RemoveAt(0)
	require.NoError(t, err)
	assert.Nil(t, a.data[1])
	assert.NoError(t, a.Check())
}

func TestRemoveFromEmpty(t *testing.T) {
	a := newArray(t, 0)
	_, err := a.RemoveAt(0)
	assert.ErrorIs(t, err, containers.ErrIndexOutOfRange)
}

func TestSet(t *testing.T) {
	a := newArray(t, 3)
	a.Append(1)
	require.NoError(t, a.Set(0, 5))
	v, _ := a.Get(0)
	assert.Equal(t, 5, v)
	assert.ErrorIs(t, a.Set(1, 5), containers.ErrIndexOutOfRange)
}

func TestIndexOf(t *testing.T) {
	a := newArray(t, 5)
	for _, v := range []int{10, 20, 30, 20} {
		a.Append(v)
	}
	i, ok := IndexOf(a, 20)
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	i, ok = IndexOf(a, 40)
	assert.False(t, ok)
	assert.Equal(t, -1, i)
	i, ok = a.Index(func(v int) bool { return v > 25 })
	assert.True(t, ok)
	assert.Equal(t, 2, i)
}

func TestAllStopsEarly(t *testing.T) {
	a := newArray(t, 5)
	for _, v := range []int{1, 2, 3, 4} {
		a.Append(v)
	}
	var seen []int
	for i, v := range a.All() {
		if i == 2 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestValuesIsACopy(t *testing.T) {
	a := newArray(t, 2)
	a.Append(1)
	values := a.Values()
	values[0] = 99
	v, _ := a.Get(0)
	assert.Equal(t, 1, v)
}

func TestNilArray(t *testing.T) {
	var a *Array[int]
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.Cap())
	_, err := a.Get(0)
	assert.ErrorIs(t, err, containers.ErrIllegalArguments)
	assert.Empty(t, a.Values())
}

func TestAppendOnNilArrayPanics(t *testing.T) {
	var a *Array[int]
	assert.PanicsWithValue(t, "Append called on nil array", func() { a.Append(1) })
}
