package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	s := Ptr("2026-01-15T10:00:00Z")
	require.NotNil(t, s)
	assert.Equal(t, "2026-01-15T10:00:00Z", *s)

	n := Ptr(int64(42))
	require.NotNil(t, n)
	assert.Equal(t, int64(42), *n)
}
