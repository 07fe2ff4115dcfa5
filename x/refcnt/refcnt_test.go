package refcnt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRefCounter(t *testing.T) {
	var numCalls int
	c := NewRefCounter(func() { numCalls++ })
	require.Equal(t, int32(1), c.RefCount())

	require.Equal(t, int32(2), c.IncRef())
	require.Equal(t, int32(1), c.DecRef())
	require.Equal(t, 0, numCalls)

	require.Equal(t, int32(0), c.DecRef())
	require.Equal(t, 1, numCalls)
}

func TestRefCounterInvalidRefCountPanics(t *testing.T) {
	c := NewRefCounter(nil)
	require.NotPanics(t, func() { c.DecRef() })
	require.Panics(t, func() { c.DecRef() })
}

func TestRefCounterIncRefAfterZeroPanics(t *testing.T) {
	c := NewRefCounter(nil)
	c.DecRef()
	require.Panics(t, func() { c.IncRef() })
}
