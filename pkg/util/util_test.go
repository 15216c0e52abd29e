package util

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertList(t *testing.T) {
	got := ConvertList([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	assert.Empty(t, ConvertList(nil, strconv.Itoa))
}

func TestSliceIncludes(t *testing.T) {
	assert.True(t, SliceIncludes([]string{"a", "b"}, "b"))
	assert.False(t, SliceIncludes([]string{"a", "b"}, "c"))
	assert.False(t, SliceIncludes(nil, "a"))
}

func TestPtrVal(t *testing.T) {
	p := Ptr(42)
	require.NotNil(t, p)
	assert.Equal(t, 42, Val(p))
	assert.Equal(t, 0, Val[int](nil))
}

func TestGetHistogramVec(t *testing.T) {
	first, err := GetHistogramVec("util_test_duration_seconds", "code")
	require.NoError(t, err)

	// Registering the same name again returns the existing collector.
	second, err := GetHistogramVec("util_test_duration_seconds", "code")
	require.NoError(t, err)
	assert.Same(t, first, second)
}
