package llcases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvert(t *testing.T) {
	alg := MustParseAlgorithm("R U' r2")
	assert.Equal(t, Algorithm{
		{WideR, true}, {WideR, true}, {MoveU, false}, {MoveR, true},
	}, Invert(alg))
	assert.Empty(t, Invert(nil))
}

func TestRunInvertFirst(t *testing.T) {
	const sune = "R U R' U R U2 R'"

	setup, err := Run(sune, true)
	require.NoError(t, err)
	require.False(t, setup.Solved())

	setup.Apply(MustParseAlgorithm(sune))
	assert.Equal(t, Solved(), setup)

	forward, err := Run(sune, false)
	require.NoError(t, err)
	forward.Apply(Invert(MustParseAlgorithm(sune)))
	assert.Equal(t, Solved(), forward)
}

func TestRunInvalid(t *testing.T) {
	_, err := Run("R U K", true)
	require.Error(t, err)
	var notationErr *InvalidNotationError
	assert.ErrorAs(t, err, &notationErr)
}

func TestSexyMoveOrder(t *testing.T) {
	s := Solved()
	for i := 0; i < 6; i++ {
		s.Apply(MustParseAlgorithm("R U R' U'"))
		if i < 5 {
			assert.False(t, s.Solved(), "after %d repetitions", i+1)
		}
	}
	assert.True(t, s.Solved())
}
