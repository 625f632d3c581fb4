package llcases

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		text     string
		expected Algorithm
	}{
		{"R U R' U'", Algorithm{{MoveR, false}, {MoveU, false}, {MoveR, true}, {MoveU, true}}},
		{"R2", Algorithm{{MoveR, false}, {MoveR, false}}},
		{"R2' L'2", Algorithm{{MoveR, true}, {MoveR, true}, {MoveL, true}, {MoveL, true}}},
		{"Rw r' Uw2", Algorithm{{WideR, false}, {WideR, true}, {WideU, false}, {WideU, false}}},
		{"rw", Algorithm{{WideR, false}}},
		{"x y' z2", Algorithm{{RotateX, false}, {RotateY, true}, {RotateZ, false}, {RotateZ, false}}},
		{"M' E S2", Algorithm{{SliceM, true}, {SliceE, false}, {SliceS, false}, {SliceS, false}}},
		{"(R U R') [F]", Algorithm{{MoveR, false}, {MoveU, false}, {MoveR, true}, {MoveF, false}}},
		{"R\nU\t R'\n", Algorithm{{MoveR, false}, {MoveU, false}, {MoveR, true}}},
	}
	for _, test := range tests {
		alg, err := ParseAlgorithm(test.text)
		require.NoError(t, err, test.text)
		assert.Equal(t, test.expected, alg, test.text)
	}
}

func TestParseEmpty(t *testing.T) {
	alg, err := ParseAlgorithm("  \n ")
	require.NoError(t, err)
	assert.Empty(t, alg)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		text     string
		token    string
		position int
	}{
		{"R U Q", "Q", 2},
		{"R3", "R3", 0},
		{"U R''", "R''", 1},
		{"R22", "R22", 0},
		{"2", "2", 0},
		{"Mw", "Mw", 0},
		{"xw U", "xw", 0},
		{"R U Rw3", "Rw3", 2},
	}
	for _, test := range tests {
		_, err := ParseAlgorithm(test.text)
		require.Error(t, err, test.text)

		var notationErr *InvalidNotationError
		require.True(t, errors.As(err, &notationErr), test.text)
		assert.Equal(t, test.token, notationErr.Token, test.text)
		assert.Equal(t, test.position, notationErr.Position, test.text)
		assert.Equal(t, "invalid_notation", notationErr.Code, test.text)
	}
}

func TestAlgorithmString(t *testing.T) {
	alg := MustParseAlgorithm("R U2 r' M")
	assert.Equal(t, "R U U r' M", alg.String())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustParseAlgorithm("R K")
	})
}
