package llcases

import (
	"strings"

	"github.com/unixpickle/num-analysis/linalg"
)

// A Match is a case record found for a fingerprint.
type Match struct {
	Index  int
	Record *CaseRecord

	// Turns is the number of clockwise grid rotations that
	// map the record's fingerprint onto the one searched for.
	Turns int

	// Solution is the record's solution, adjusted with
	// y rotations for the observed orientation.
	Solution string
}

var (
	setupRotations   = [4]string{"", "y'", "y2", "y"}
	restoreRotations = [4]string{"", "y", "y2", "y'"}
)

// Lookup finds the first record whose fingerprint equals
// fp in any of the four orientations.
func Lookup(records []CaseRecord, fp Fingerprint) (*Match, bool) {
	for i := range records {
		stored := records[i].Fingerprint()
		if stored.Validate() != nil {
			continue
		}
		for turns := 0; turns < 4; turns++ {
			if stored.Rotate(turns) == fp {
				return newMatch(records, i, turns), true
			}
		}
	}
	return nil, false
}

// Nearest finds the record and orientation whose
// fingerprint agrees with fp on the most stickers.
//
// The second return value is the fraction of stickers
// that agree, from 0 to 1. If no record has a usable
// fingerprint, Nearest returns nil.
func Nearest(records []CaseRecord, fp Fingerprint) (*Match, float64) {
	if fp.Validate() != nil {
		return nil, 0
	}
	target := fingerprintVector(fp)

	var best *Match
	var bestScore float64
	for i := range records {
		stored := records[i].Fingerprint()
		if stored.Validate() != nil {
			continue
		}
		for turns := 0; turns < 4; turns++ {
			score := fingerprintVector(stored.Rotate(turns)).Dot(target)
			if best == nil || score > bestScore {
				best = newMatch(records, i, turns)
				bestScore = score
			}
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, (bestScore/float64(len(target)) + 1) / 2
}

// AdjustSolution wraps a solution in the y rotations
// which account for a case seen after the given number of
// clockwise turns.
func AdjustSolution(solution string, turns int) string {
	turns = ((turns % 4) + 4) % 4
	parts := []string{setupRotations[turns], solution, restoreRotations[turns]}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func newMatch(records []CaseRecord, idx, turns int) *Match {
	return &Match{
		Index:    idx,
		Record:   &records[idx],
		Turns:    turns,
		Solution: AdjustSolution(records[idx].Solution, turns),
	}
}

// fingerprintVector maps each bit of a fingerprint to
// +1 or -1, so that the dot product of two vectors counts
// agreements minus disagreements.
func fingerprintVector(fp Fingerprint) linalg.Vector {
	bits := fp.Top + fp.Ring
	res := make(linalg.Vector, len(bits))
	for i := range bits {
		if bits[i] == '1' {
			res[i] = 1
		} else {
			res[i] = -1
		}
	}
	return res
}
