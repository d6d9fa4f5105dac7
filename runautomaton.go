package automaton

import "sort"

// RunAutomaton Table driven matcher for the language of an automaton. The automaton is determinized once and
// its transitions are flattened into a [state][interval] table, so checking a string costs one binary search
// per symbol and never enumerates computation paths.
type RunAutomaton struct {
	points  []int
	accept  []bool
	size    int
	transit []int
}

func NewRunAutomaton(a *Automaton, determinizeWorkLimit int) (*RunAutomaton, error) {
	d, err := Determinize(a, determinizeWorkLimit)
	if err != nil {
		return nil, err
	}

	points := d.GetStartPoints()
	numStates := d.GetNumStates()
	r := &RunAutomaton{
		points:  points,
		accept:  make([]bool, numStates),
		size:    numStates,
		transit: make([]int, numStates*len(points)),
	}

	for s := 0; s < numStates; s++ {
		r.accept[s] = d.IsAccept(s)
		for i, p := range points {
			r.transit[s*len(points)+i] = d.Step(s, p)
		}
	}
	return r, nil
}

// Size Number of states of the determinized automaton.
func (r *RunAutomaton) Size() int {
	return r.size
}

// IsAccept Returns true if state is an accept state.
func (r *RunAutomaton) IsAccept(state int) bool {
	return r.accept[state]
}

// Step Returns the state reached from state on label, or -1.
func (r *RunAutomaton) Step(state, label int) int {
	// index of the last start point <= label; points[0] is 0 so it exists for labels >= 0
	i := sort.SearchInts(r.points, label+1) - 1
	if i < 0 {
		return -1
	}
	return r.transit[state*len(r.points)+i]
}

// Run Returns true if the given string is accepted.
func (r *RunAutomaton) Run(s string) bool {
	if r.size == 0 {
		return false
	}
	p := 0
	for _, v := range s {
		p = r.Step(p, int(v))
		if p == -1 {
			return false
		}
	}
	return r.accept[p]
}
