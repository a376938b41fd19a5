package hashx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_Deterministic(t *testing.T) {
	d1 := Hash("putnew")
	d2 := Hash("putnew")
	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 64)
}

func TestHash_DistinctInputs(t *testing.T) {
	assert.NotEqual(t, Hash("alumni123"), Hash("alumni124"))
}

func TestHash_KnownVector(t *testing.T) {
	// sha256("") is a published constant.
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Hash(""))
}

func TestVerify(t *testing.T) {
	d := Hash("secret123")
	assert.True(t, Verify(d, "secret123"))
	assert.False(t, Verify(d, "secret124"))
	assert.False(t, Verify("", "secret123"))
	assert.False(t, Verify("not-a-digest", "secret123"))
}
