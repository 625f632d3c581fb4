package llcases

import (
	"fmt"
	"strings"
)

// A Face identifies one of the six sides of the cube.
type Face int

const (
	Up Face = iota
	Down
	Front
	Back
	Left
	Right

	NumFaces = 6
)

var faceLetters = [NumFaces]byte{'U', 'D', 'F', 'B', 'L', 'R'}

// Letter returns the WCA letter for the face.
func (f Face) Letter() byte {
	return faceLetters[f]
}

func (f Face) String() string {
	return string(faceLetters[f])
}

// Color returns the sticker color the face has on a
// solved cube.
func (f Face) Color() Color {
	return referenceColors[f]
}

// A Color is the color of a single sticker.
type Color int

const (
	Yellow Color = iota
	White
	Green
	Blue
	Red
	Orange

	NumColors = 6
)

var referenceColors = [NumFaces]Color{
	Up:    Yellow,
	Down:  White,
	Front: Green,
	Back:  Blue,
	Left:  Red,
	Right: Orange,
}

var colorNames = []string{"yellow", "white", "green", "blue", "red", "orange"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// CenterIndex is the index of the center sticker on
// every face. No move ever changes it.
const CenterIndex = 4

// A State is the sticker representation of a cube.
//
// Each face holds 9 stickers in row-major order.
// States are plain values, so copying a State copies
// the cube and two States may be compared with ==.
type State struct {
	faces [NumFaces][9]Color
}

// Solved returns the solved cube.
func Solved() State {
	var s State
	for f := Face(0); f < NumFaces; f++ {
		for i := range s.faces[f] {
			s.faces[f][i] = f.Color()
		}
	}
	return s
}

// Sticker returns the sticker at an index on a face.
func (s *State) Sticker(f Face, idx int) Color {
	return s.faces[f][idx]
}

// Face returns a copy of the stickers on a face.
func (s *State) Face(f Face) [9]Color {
	return s.faces[f]
}

// Solved checks if every face is a single color.
func (s *State) Solved() bool {
	for _, face := range s.faces {
		for _, c := range face {
			if c != face[CenterIndex] {
				return false
			}
		}
	}
	return true
}

// ColorCounts returns the number of stickers of each
// color, indexed by Color.
func (s *State) ColorCounts() [NumColors]int {
	var res [NumColors]int
	for _, face := range s.faces {
		for _, c := range face {
			res[c]++
		}
	}
	return res
}

func (s State) String() string {
	var b strings.Builder
	for f := Face(0); f < NumFaces; f++ {
		b.WriteString(f.String())
		b.WriteByte(':')
		for _, c := range s.faces[f] {
			b.WriteByte(' ')
			b.WriteString(c.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
