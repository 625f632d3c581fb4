package llcases

// Apply applies every step of an algorithm in order.
func (s *State) Apply(a Algorithm) {
	for _, step := range a {
		s.Turn(step)
	}
}

// Invert returns the algorithm that undoes a.
func Invert(a Algorithm) Algorithm {
	res := make(Algorithm, len(a))
	for i, step := range a {
		res[len(a)-1-i] = Step{Move: step.Move, Prime: !step.Prime}
	}
	return res
}

// Run parses an algorithm and applies it to a solved cube.
//
// If invertFirst is set, the inverse of the algorithm is
// applied instead. For a case's solution, this yields
// the unsolved configuration of the case.
func Run(text string, invertFirst bool) (State, error) {
	alg, err := ParseAlgorithm(text)
	if err != nil {
		return State{}, err
	}
	if invertFirst {
		alg = Invert(alg)
	}
	state := Solved()
	state.Apply(alg)
	return state, nil
}
