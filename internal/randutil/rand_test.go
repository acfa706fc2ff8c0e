package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsReproducible(t *testing.T) {
	t.Parallel()

	a, b := New(42), New(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestSeed(t *testing.T) {
	t.Parallel()

	fixed := int64(1234)
	assert.Equal(t, fixed, Seed(&fixed))
	assert.NotZero(t, Seed(nil))
}

func TestDeriveSeparatesStreams(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Derive(7, 3), Derive(7, 3))
	assert.NotEqual(t, Derive(7, 0), Derive(7, 1))
	assert.NotEqual(t, New(Derive(7, 0)).Uint64(), New(Derive(7, 1)).Uint64())
}
