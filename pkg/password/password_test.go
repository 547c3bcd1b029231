package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, Compare(hash, "s3cret"))
	assert.ErrorIs(t, Compare(hash, "wrong"), ErrMismatch)
	assert.ErrorIs(t, Compare("", "s3cret"), ErrMismatch)
}
