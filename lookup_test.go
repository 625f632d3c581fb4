package llcases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	records := sampleRecords()
	records[1].SetFingerprint(Fingerprint{Top: "00111001", Ring: "010000101010"})
	sune := records[0].Fingerprint()

	match, ok := Lookup(records, sune)
	require.True(t, ok)
	assert.Equal(t, 0, match.Index)
	assert.Equal(t, 0, match.Turns)
	assert.Equal(t, "R U R' U R U2 R'", match.Solution)
	assert.Same(t, &records[0], match.Record)

	match, ok = Lookup(records, sune.Rotate(2))
	require.True(t, ok)
	assert.Equal(t, 0, match.Index)
	assert.Equal(t, 2, match.Turns)
	assert.Equal(t, "y2 R U R' U R U2 R' y2", match.Solution)

	match, ok = Lookup(records, records[1].Fingerprint().Rotate(3))
	require.True(t, ok)
	assert.Equal(t, 1, match.Index)
	assert.Equal(t, 3, match.Turns)
	assert.Equal(t, "y F R U R' U' F' y'", match.Solution)

	_, ok = Lookup(records, Fingerprint{Top: "00000000", Ring: "000000000000"})
	assert.False(t, ok)
}

func TestLookupSkipsBadRecords(t *testing.T) {
	records := sampleRecords()
	records[0].TopPattern = "0101"
	_, ok := Lookup(records, Fingerprint{Top: "0101", Ring: "001100000100"})
	assert.False(t, ok)
}

func TestNearest(t *testing.T) {
	records := sampleRecords()
	records[1].SetFingerprint(Fingerprint{Top: "00111001", Ring: "010000101010"})

	query := Fingerprint{Top: "01011111", Ring: "001100000100"}
	match, agreement := Nearest(records, query)
	require.NotNil(t, match)
	assert.Equal(t, 0, match.Index)
	assert.Equal(t, 0, match.Turns)
	assert.InDelta(t, 0.95, agreement, 1e-9)

	match, agreement = Nearest(records, records[1].Fingerprint().Rotate(1))
	require.NotNil(t, match)
	assert.Equal(t, 1, match.Index)
	assert.Equal(t, 1, match.Turns)
	assert.InDelta(t, 1, agreement, 1e-9)

	match, _ = Nearest(nil, query)
	assert.Nil(t, match)
	match, _ = Nearest(records, Fingerprint{Top: "1"})
	assert.Nil(t, match)
}

func TestAdjustSolution(t *testing.T) {
	assert.Equal(t, "R U R'", AdjustSolution("  R U  R' ", 0))
	assert.Equal(t, "y' R U R' y", AdjustSolution("R U R'", 1))
	assert.Equal(t, "y2 R U R' y2", AdjustSolution("R U R'", 2))
	assert.Equal(t, "y R U R' y'", AdjustSolution("R U R'", 3))
	assert.Equal(t, AdjustSolution("R", 3), AdjustSolution("R", -1))
}
