package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsNil(t *testing.T) {
	require.True(t, IsNil(nil))

	var p *int
	require.True(t, IsNil(p))
	var m map[string]int
	require.True(t, IsNil(m))
	var s []int
	require.True(t, IsNil(s))
	var fn func()
	require.True(t, IsNil(fn))
	var ch chan int
	require.True(t, IsNil(ch))

	require.False(t, IsNil(0))
	require.False(t, IsNil(""))
	require.False(t, IsNil(false))
	require.False(t, IsNil(struct{}{}))
	require.False(t, IsNil(new(int)))
	require.False(t, IsNil([]int{}))
	require.False(t, IsNil(map[string]int{}))
}
