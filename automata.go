package automaton

// States of the computation automaton built by MakeComputationAutomaton.
const (
	StateA = iota
	StateB
	StateC
	StateDead
)

// Input symbols of the binary alphabet.
const (
	Symbol0 = '0'
	Symbol1 = '1'
)

type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language.
func (*Automata) MakeEmpty() *Automaton {
	a := NewAutomaton()
	a.FinishState()
	return a
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString() *Automaton {
	a := NewAutomaton()
	a.CreateState()
	a.SetAccept(0, true)
	return a
}

// MakeBinaryString
// Returns a new (deterministic) automaton that accepts every string over {0, 1}, the empty string included.
func (*Automata) MakeBinaryString() (*Automaton, error) {
	a := NewAutomaton()
	s := a.CreateState()
	a.SetAccept(s, true)
	if err := a.AddTransition(s, s, Symbol0, Symbol1); err != nil {
		return nil, err
	}
	a.FinishState()
	return a, nil
}

// MakeComputationAutomaton
// Returns the four state non-deterministic automaton whose computation trees are simulated:
//
//	A --0--> B, A    A --1--> A
//	B --0--> p       B --1--> C
//	C --0,1--> C
//
// A is initial, C accepts and p has no way out.
func (*Automata) MakeComputationAutomaton() (*Automaton, error) {
	a := NewAutomatonV1(4, 6)
	a.CreateNamedState("A")
	a.CreateNamedState("B")
	a.CreateNamedState("C")
	a.CreateNamedState("p")
	a.SetAccept(StateC, true)

	for _, t := range []struct{ source, dest, min, max int }{
		{StateA, StateB, Symbol0, Symbol0},
		{StateA, StateA, Symbol0, Symbol1},
		{StateB, StateDead, Symbol0, Symbol0},
		{StateB, StateC, Symbol1, Symbol1},
		{StateC, StateC, Symbol0, Symbol1},
	} {
		if err := a.AddTransition(t.source, t.dest, t.min, t.max); err != nil {
			return nil, err
		}
	}
	a.FinishState()
	return a, nil
}
