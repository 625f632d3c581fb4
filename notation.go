package llcases

import (
	"strings"
)

// A Move is a base move identifier, such as a face turn,
// a wide turn, a slice turn, or a cube rotation.
type Move byte

const (
	MoveU Move = 'U'
	MoveD Move = 'D'
	MoveF Move = 'F'
	MoveB Move = 'B'
	MoveL Move = 'L'
	MoveR Move = 'R'

	WideU Move = 'u'
	WideD Move = 'd'
	WideF Move = 'f'
	WideB Move = 'b'
	WideL Move = 'l'
	WideR Move = 'r'

	RotateX Move = 'x'
	RotateY Move = 'y'
	RotateZ Move = 'z'

	SliceM Move = 'M'
	SliceE Move = 'E'
	SliceS Move = 'S'
)

// Moves lists every base move the engine understands.
var Moves = []Move{
	MoveU, MoveD, MoveF, MoveB, MoveL, MoveR,
	WideU, WideD, WideF, WideB, WideL, WideR,
	RotateX, RotateY, RotateZ,
	SliceM, SliceE, SliceS,
}

// Valid checks if the engine knows how to apply m.
func (m Move) Valid() bool {
	_, ok := moveTable[m]
	return ok
}

func (m Move) String() string {
	return string(rune(m))
}

// A Step is one quarter turn of a Move, either in the
// move's own direction or its inverse.
type Step struct {
	Move  Move
	Prime bool
}

func (s Step) String() string {
	if s.Prime {
		return s.Move.String() + "'"
	}
	return s.Move.String()
}

// An Algorithm is a flat sequence of quarter-turn steps.
type Algorithm []Step

func (a Algorithm) String() string {
	parts := make([]string, len(a))
	for i, s := range a {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// groupingMarks are stripped from tokens before parsing,
// so that "(R U R')" reads the same as "R U R'".
var groupingMarks = strings.NewReplacer("(", "", ")", "", "[", "", "]", "")

// ParseAlgorithm parses a whitespace-separated sequence
// of WCA-style moves.
//
// Doubled moves produce two identical steps. Wide turns
// may be written either as a lowercase letter ("r") or
// with a width marker ("Rw").
func ParseAlgorithm(text string) (Algorithm, error) {
	var res Algorithm
	for i, token := range strings.Fields(groupingMarks.Replace(text)) {
		step, count, err := parseToken(token)
		if err != nil {
			return nil, NewInvalidNotationError(token, i, err)
		}
		for j := 0; j < count; j++ {
			res = append(res, step)
		}
	}
	return res, nil
}

// MustParseAlgorithm is like ParseAlgorithm, but it
// panics on malformed notation.
func MustParseAlgorithm(text string) Algorithm {
	alg, err := ParseAlgorithm(text)
	if err != nil {
		panic(err)
	}
	return alg
}

func parseToken(token string) (Step, int, error) {
	base, modifiers := splitModifiers(token)
	move, err := parseBase(base)
	if err != nil {
		return Step{}, 0, err
	}

	step := Step{Move: move}
	count := 1
	for _, ch := range modifiers {
		switch ch {
		case '\'':
			if step.Prime {
				return Step{}, 0, errDuplicateModifier
			}
			step.Prime = true
		case '2':
			if count == 2 {
				return Step{}, 0, errDuplicateModifier
			}
			count = 2
		}
	}
	return step, count, nil
}

func splitModifiers(token string) (base, modifiers string) {
	end := len(token)
	for end > 0 && (token[end-1] == '\'' || token[end-1] == '2') {
		end--
	}
	return token[:end], token[end:]
}

func parseBase(base string) (Move, error) {
	switch len(base) {
	case 1:
		if m := Move(base[0]); m.Valid() {
			return m, nil
		}
	case 2:
		if base[1] == 'w' {
			m := Move(strings.ToLower(base[:1])[0])
			if isWide(m) {
				return m, nil
			}
		}
	}
	return 0, errUnknownBase
}

func isWide(m Move) bool {
	switch m {
	case WideU, WideD, WideF, WideB, WideL, WideR:
		return true
	}
	return false
}
