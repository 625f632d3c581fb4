package llcases

import (
	"fmt"

	"github.com/unixpickle/gocube"
)

var (
	f2lEdges   = []int{1, 2, 3, 7, 8, 9, 10, 11}
	f2lCorners = []int{0, 1, 4, 5}
	crossEdges = []int{2, 8, 10, 11}
)

// cubieHybrids expresses the moves which gocube cannot
// parse as face turns plus whole-cube rotations.
var cubieHybrids = map[Move][]string{
	WideR:   {"L", "x"},
	WideL:   {"R", "x'"},
	WideU:   {"D", "y"},
	WideD:   {"U", "y'"},
	WideF:   {"B", "z"},
	WideB:   {"F", "z'"},
	SliceM:  {"R", "L'", "x'"},
	SliceE:  {"U", "D'", "y'"},
	SliceS:  {"F'", "B", "z"},
	RotateX: {"x"},
	RotateY: {"y"},
	RotateZ: {"z"},
}

// A LayerCheck reports which parts of the first two
// layers survive a case's setup.
type LayerCheck struct {
	CrossSolved bool
	F2LSolved   bool
	Solved      bool
}

// ReplayCubie applies an algorithm to a solved gocube
// cubie cube.
//
// This is an independent model of the cube, so it can be
// used to cross-check the sticker engine.
func ReplayCubie(a Algorithm) (*gocube.CubieCube, error) {
	cube := gocube.SolvedCubieCube()
	if err := ApplyCubie(&cube, a); err != nil {
		return nil, err
	}
	return &cube, nil
}

// ApplyCubie applies an algorithm to a gocube cubie cube.
func ApplyCubie(c *gocube.CubieCube, a Algorithm) error {
	for _, step := range a {
		count := 1
		if step.Prime {
			count = 3
		}
		for i := 0; i < count; i++ {
			if err := cubieMove(c, step.Move); err != nil {
				return err
			}
		}
	}
	return nil
}

// CheckLastLayer replays the inverse of a solution and
// checks that the resulting case only affects the last
// layer.
func CheckLastLayer(solution string) (LayerCheck, error) {
	alg, err := ParseAlgorithm(solution)
	if err != nil {
		return LayerCheck{}, err
	}
	cube, err := ReplayCubie(Invert(alg))
	if err != nil {
		return LayerCheck{}, err
	}
	return LayerCheck{
		CrossSolved: hasCrossSolved(cube),
		F2LSolved:   hasF2LSolved(cube),
		Solved:      cube.Solved(),
	}, nil
}

func cubieMove(c *gocube.CubieCube, m Move) error {
	names, ok := cubieHybrids[m]
	if !ok {
		names = []string{m.String()}
	}
	for _, name := range names {
		if rot, err := gocube.ParseRotation(name); err == nil {
			stickers := c.StickerCube()
			stickers.Rotate(rot)
			stickers.ReinterpretCenters()
			cube, err := stickers.CubieCube()
			if err != nil {
				return fmt.Errorf("rotate %s: %w", name, err)
			}
			*c = *cube
			continue
		}
		move, err := gocube.ParseMove(name)
		if err != nil {
			return err
		}
		c.Move(move)
	}
	return nil
}

func hasF2LSolved(c *gocube.CubieCube) bool {
	for _, edgeIdx := range f2lEdges {
		if c.Edges[edgeIdx].Flip || c.Edges[edgeIdx].Piece != edgeIdx {
			return false
		}
	}
	for _, cornerIdx := range f2lCorners {
		if c.Corners[cornerIdx].Piece != cornerIdx || c.Corners[cornerIdx].Orientation != 1 {
			return false
		}
	}
	return true
}

func hasCrossSolved(c *gocube.CubieCube) bool {
	for _, edgeIdx := range crossEdges {
		edge := c.Edges[edgeIdx]
		if edge.Flip || edge.Piece != edgeIdx {
			return false
		}
	}
	return true
}
