package llcases

import "strings"

const (
	TopPatternLen  = 8
	RingPatternLen = 12
)

var topPatternOrder = [TopPatternLen]int{0, 1, 2, 3, 5, 6, 7, 8}

var ringPatternOrder = [RingPatternLen]location{
	{Front, 0}, {Front, 1}, {Front, 2},
	{Right, 2}, {Right, 1}, {Right, 0},
	{Left, 0}, {Left, 1}, {Left, 2},
	{Back, 2}, {Back, 1}, {Back, 0},
}

// A Fingerprint records which last-layer stickers show
// the top face's color.
//
// Top covers the 8 non-center stickers of the top face.
// Ring covers the top row of the four side faces.
// Each character is '1' if the sticker matches.
type Fingerprint struct {
	Top  string
	Ring string
}

// PatternOf computes the fingerprint of a state.
//
// Fingerprints are position-exact: the same case viewed
// after a y rotation has a different fingerprint. Use
// Fingerprint.Rotate or Lookup to compare up to rotation.
func PatternOf(s State) Fingerprint {
	target := Up.Color()

	var top strings.Builder
	for _, idx := range topPatternOrder {
		top.WriteByte(bit(s.Sticker(Up, idx) == target))
	}

	var ring strings.Builder
	for _, loc := range ringPatternOrder {
		ring.WriteByte(bit(s.Sticker(loc.face, loc.index) == target))
	}

	return Fingerprint{Top: top.String(), Ring: ring.String()}
}

// FingerprintOf computes the fingerprint of the case that
// a solution solves.
func FingerprintOf(solution string) (Fingerprint, error) {
	state, err := Run(solution, true)
	if err != nil {
		return Fingerprint{}, err
	}
	return PatternOf(state), nil
}

// Validate checks that both patterns have the right length
// and contain only bits.
func (f Fingerprint) Validate() error {
	if len(f.Top) != TopPatternLen || len(f.Ring) != RingPatternLen {
		return errFingerprintLength
	}
	if strings.Trim(f.Top+f.Ring, "01") != "" {
		return errFingerprintContent
	}
	return nil
}

func (f Fingerprint) String() string {
	return f.Top + " " + f.Ring
}

// Grid coordinates used to rotate patterns. The top
// pattern lives on a 3x3 grid with an implied center.
// The ring pattern lives on the border of a 5x5 grid,
// north, west, east, then south.
var (
	topGrid = [TopPatternLen][2]int{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}
	ringGrid = [RingPatternLen][2]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 0}, {2, 0}, {3, 0},
		{1, 4}, {2, 4}, {3, 4},
		{4, 1}, {4, 2}, {4, 3},
	}
)

// Rotate returns the fingerprint seen after turning the
// recognition grid clockwise the given number of times.
// Negative turns rotate counter-clockwise.
func (f Fingerprint) Rotate(turns int) Fingerprint {
	turns = ((turns % 4) + 4) % 4
	for i := 0; i < turns; i++ {
		f = Fingerprint{
			Top:  rotateGrid(f.Top, topGrid[:], 3),
			Ring: rotateGrid(f.Ring, ringGrid[:], 5),
		}
	}
	return f
}

func rotateGrid(bits string, coords [][2]int, size int) string {
	if len(bits) != len(coords) {
		return bits
	}
	rotated := map[[2]int]byte{}
	for i, c := range coords {
		rotated[[2]int{c[1], size - 1 - c[0]}] = bits[i]
	}
	res := make([]byte, len(coords))
	for i, c := range coords {
		res[i] = rotated[c]
	}
	return string(res)
}

func bit(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}
