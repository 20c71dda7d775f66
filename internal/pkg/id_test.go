package pkg

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMatchID(t *testing.T) {
	// When: generating an id
	id, err := GenerateMatchID()

	// Then: it is a number in range
	require.NoError(t, err)

	n, err := strconv.Atoi(id)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, maxMatchID)
}
