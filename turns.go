package llcases

// A location is a single sticker slot on the cube.
type location struct {
	face  Face
	index int
}

// A cycle moves the sticker at each location to the
// next location, wrapping the last back to the first.
type cycle [4]location

// A turn is a primitive sticker permutation: an optional
// clockwise rotation of one face's stickers followed by
// three independent 4-cycles.
type turn struct {
	name   string
	face   Face
	cycles [3]cycle
}

const noFace Face = -1

// clockwiseFace maps each non-center index of a face to
// the index its new sticker comes from during a
// clockwise quarter turn.
var clockwiseFace = [8]struct{ dst, src int }{
	{0, 6}, {1, 3}, {2, 0}, {3, 7}, {5, 1}, {6, 8}, {7, 5}, {8, 2},
}

var (
	turnU = turn{name: "U", face: Up, cycles: [3]cycle{
		{{Front, 0}, {Left, 0}, {Back, 0}, {Right, 0}},
		{{Front, 1}, {Left, 1}, {Back, 1}, {Right, 1}},
		{{Front, 2}, {Left, 2}, {Back, 2}, {Right, 2}},
	}}
	turnD = turn{name: "D", face: Down, cycles: [3]cycle{
		{{Front, 6}, {Right, 6}, {Back, 6}, {Left, 6}},
		{{Front, 7}, {Right, 7}, {Back, 7}, {Left, 7}},
		{{Front, 8}, {Right, 8}, {Back, 8}, {Left, 8}},
	}}
	turnR = turn{name: "R", face: Right, cycles: [3]cycle{
		{{Front, 2}, {Up, 2}, {Back, 6}, {Down, 2}},
		{{Front, 5}, {Up, 5}, {Back, 3}, {Down, 5}},
		{{Front, 8}, {Up, 8}, {Back, 0}, {Down, 8}},
	}}
	turnL = turn{name: "L", face: Left, cycles: [3]cycle{
		{{Front, 0}, {Down, 0}, {Back, 8}, {Up, 0}},
		{{Front, 3}, {Down, 3}, {Back, 5}, {Up, 3}},
		{{Front, 6}, {Down, 6}, {Back, 2}, {Up, 6}},
	}}
	turnF = turn{name: "F", face: Front, cycles: [3]cycle{
		{{Up, 6}, {Right, 0}, {Down, 2}, {Left, 8}},
		{{Up, 7}, {Right, 3}, {Down, 1}, {Left, 5}},
		{{Up, 8}, {Right, 6}, {Down, 0}, {Left, 2}},
	}}
	turnB = turn{name: "B", face: Back, cycles: [3]cycle{
		{{Up, 2}, {Left, 0}, {Down, 6}, {Right, 8}},
		{{Up, 1}, {Left, 3}, {Down, 7}, {Right, 5}},
		{{Up, 0}, {Left, 6}, {Down, 8}, {Right, 2}},
	}}

	// Slice-only turns. These carry the centers of the
	// faces they pass through.
	turnMPrime = turn{name: "M'", face: noFace, cycles: [3]cycle{
		{{Front, 1}, {Up, 1}, {Back, 7}, {Down, 1}},
		{{Front, 4}, {Up, 4}, {Back, 4}, {Down, 4}},
		{{Front, 7}, {Up, 7}, {Back, 1}, {Down, 7}},
	}}
	turnS = turn{name: "S", face: noFace, cycles: [3]cycle{
		{{Up, 3}, {Right, 1}, {Down, 5}, {Left, 7}},
		{{Up, 4}, {Right, 4}, {Down, 4}, {Left, 4}},
		{{Up, 5}, {Right, 7}, {Down, 3}, {Left, 1}},
	}}
	turnE = turn{name: "E", face: noFace, cycles: [3]cycle{
		{{Front, 3}, {Right, 3}, {Back, 3}, {Left, 3}},
		{{Front, 4}, {Right, 4}, {Back, 4}, {Left, 4}},
		{{Front, 5}, {Right, 5}, {Back, 5}, {Left, 5}},
	}}
	turnEPrime = turn{name: "E'", face: noFace, cycles: [3]cycle{
		{{Front, 3}, {Left, 3}, {Back, 3}, {Right, 3}},
		{{Front, 4}, {Left, 4}, {Back, 4}, {Right, 4}},
		{{Front, 5}, {Left, 5}, {Back, 5}, {Right, 5}},
	}}
)

// A component is one entry in a move's composition. It
// names either a primitive turn or another move, applied
// a number of times in a row.
type component struct {
	turn  *turn
	move  Move
	times int
}

// moveTable defines every base move as a fixed sequence
// of primitive turns and other moves.
var moveTable = map[Move][]component{
	MoveU: {{turn: &turnU, times: 1}},
	MoveD: {{turn: &turnD, times: 1}},
	MoveF: {{turn: &turnF, times: 1}},
	MoveB: {{turn: &turnB, times: 1}},
	MoveL: {{turn: &turnL, times: 1}},
	MoveR: {{turn: &turnR, times: 1}},

	RotateX: {{turn: &turnR, times: 1}, {turn: &turnMPrime, times: 1}, {turn: &turnL, times: 3}},
	RotateY: {{turn: &turnU, times: 1}, {turn: &turnEPrime, times: 1}, {turn: &turnD, times: 3}},
	RotateZ: {{turn: &turnF, times: 1}, {turn: &turnS, times: 1}, {turn: &turnB, times: 3}},

	WideR: {{turn: &turnR, times: 1}, {turn: &turnMPrime, times: 1}},
	WideL: {{turn: &turnL, times: 1}, {turn: &turnMPrime, times: 3}},
	WideU: {{move: RotateY, times: 1}, {turn: &turnD, times: 1}},
	WideD: {{move: RotateY, times: 3}, {turn: &turnU, times: 1}},
	WideF: {{turn: &turnF, times: 1}, {turn: &turnS, times: 1}},
	WideB: {{turn: &turnB, times: 1}, {turn: &turnS, times: 3}},

	SliceM: {{turn: &turnMPrime, times: 3}},
	SliceE: {{turn: &turnE, times: 1}},
	SliceS: {{turn: &turnS, times: 1}},
}

// Move applies a single quarter turn of a base move.
// Unknown moves are ignored; ParseAlgorithm never
// produces them.
func (s *State) Move(m Move) {
	for _, c := range moveTable[m] {
		for i := 0; i < c.times; i++ {
			if c.turn != nil {
				s.applyTurn(c.turn)
			} else {
				s.Move(c.move)
			}
		}
	}
}

// Turn applies a step, using three quarter turns for
// a prime.
func (s *State) Turn(step Step) {
	count := 1
	if step.Prime {
		count = 3
	}
	for i := 0; i < count; i++ {
		s.Move(step.Move)
	}
}

func (s *State) applyTurn(t *turn) {
	if t.face != noFace {
		s.rotateFace(t.face)
	}
	for _, c := range t.cycles {
		s.cycle(c)
	}
}

func (s *State) rotateFace(f Face) {
	old := s.faces[f]
	for _, m := range clockwiseFace {
		s.faces[f][m.dst] = old[m.src]
	}
}

func (s *State) cycle(c cycle) {
	last := s.faces[c[3].face][c[3].index]
	for i := 3; i > 0; i-- {
		s.faces[c[i].face][c[i].index] = s.faces[c[i-1].face][c[i-1].index]
	}
	s.faces[c[0].face][c[0].index] = last
}
