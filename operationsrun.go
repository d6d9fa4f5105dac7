package automaton

// Run Returns true if the deterministic automaton a accepts s.
func Run(a *Automaton, s string) bool {
	if a.GetNumStates() == 0 {
		return false
	}
	state := 0
	for _, v := range s {
		nextState := a.Step(state, int(v))
		if nextState == -1 {
			return false
		}
		state = nextState
	}
	return a.IsAccept(state)
}

// RunNFA Returns true if any computation of a on s ends in an accept state. Tracks the set of reachable states
// instead of enumerating every path.
func RunNFA(a *Automaton, s string) bool {
	numStates := a.GetNumStates()
	if numStates == 0 {
		return false
	}

	current := NewStateSet(numStates)
	next := NewStateSet(numStates)
	current.Add(0)

	for _, v := range s {
		next.Clear()
		for _, state := range current.GetArray() {
			for _, dest := range a.Successors(state, int(v)) {
				next.Add(dest)
			}
		}
		if next.Size() == 0 {
			return false
		}
		current, next = next, current
	}
	return current.AnyAccept(a)
}
