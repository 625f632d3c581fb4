package llcases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLastLayer(t *testing.T) {
	for _, solution := range []string{
		"R U R' U R U2 R'",
		"F R U R' U' F'",
		"r U R' U' r' F R F'",
	} {
		check, err := CheckLastLayer(solution)
		require.NoError(t, err, solution)
		assert.True(t, check.CrossSolved, solution)
		assert.True(t, check.F2LSolved, solution)
		assert.False(t, check.Solved, solution)
	}

	check, err := CheckLastLayer("R")
	require.NoError(t, err)
	assert.False(t, check.F2LSolved)
	assert.False(t, check.Solved)

	_, err = CheckLastLayer("R Q")
	assert.Error(t, err)
}

func TestCubieAgreesOnSolved(t *testing.T) {
	for _, text := range []string{
		"R U R' U'",
		"R U R' U' R U R' U' R U R' U' R U R' U' R U R' U' R U R' U'",
		"x y z",
		"r U R'",
		"M2 U M2 U2 M2 U M2",
		"R U R' U R U2 R' R U2 R' U' R U' R'",
	} {
		alg := MustParseAlgorithm(text)
		s := Solved()
		s.Apply(alg)
		cube, err := ReplayCubie(alg)
		require.NoError(t, err, text)
		assert.Equal(t, s.Solved(), cube.Solved(), text)
	}
}
