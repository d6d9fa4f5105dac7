package automaton

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

var (
	ErrUnknownState  = errors.New("unknown state")
	ErrStateFinished = errors.New("state already had transitions added")
	ErrInvalidRange  = errors.New("invalid label range")
)

// Automaton Represents a non-deterministic finite automaton over integer labels (code points). States are
// dense integers created with CreateState; state 0 is always the initial state. Mark accept states with
// SetAccept and add transitions with AddTransition. Each state must have all of its transitions added at
// once. When a state is finished, either because transitions are added to another state or because
// FinishState is called, its transitions are sorted (first by min, then max, then dest) and adjacent
// ranges leading to the same dest are merged.
type Automaton struct {
	// Two ints per state: offset of its first transition in transitions (or -1 if it has none
	// yet), followed by the number of transitions leaving it.
	states []int

	// Optional display names, indexed by state.
	names []string

	isAccept *bitset.BitSet

	// dest, min, max for each transition.
	transitions []int

	// Source state transitions are currently being added to, or -1.
	curState int

	// True if no state has two transitions leaving with the same label.
	deterministic bool
}

// Transition Cursor over the transitions leaving one state. See InitTransition.
type Transition struct {
	Source int
	Dest   int
	Min    int
	Max    int

	// Index into Automaton.transitions of the next transition to read.
	TransitionUpto int
}

func NewTransition() *Transition {
	return &Transition{Source: -1, Dest: -1}
}

func (t *Transition) String() string {
	if t.Min == t.Max {
		return fmt.Sprintf("%d -> %d [%q]", t.Source, t.Dest, rune(t.Min))
	}
	return fmt.Sprintf("%d -> %d [%q-%q]", t.Source, t.Dest, rune(t.Min), rune(t.Max))
}

func NewAutomaton() *Automaton {
	return NewAutomatonV1(2, 2)
}

func NewAutomatonV1(numStates, numTransitions int) *Automaton {
	return &Automaton{
		curState:      -1,
		deterministic: true,
		states:        make([]int, 0, numStates*2),
		names:         make([]string, 0, numStates),
		isAccept:      bitset.New(uint(numStates)),
		transitions:   make([]int, 0, numTransitions*3),
	}
}

// CreateState Create a new state.
func (a *Automaton) CreateState() int {
	return a.CreateNamedState("")
}

// CreateNamedState Create a new state carrying a display name.
func (a *Automaton) CreateNamedState(name string) int {
	state := len(a.states) / 2
	a.states = append(a.states, -1, 0)
	a.names = append(a.names, name)
	return state
}

// StateName Returns the display name of state, falling back to its number.
func (a *Automaton) StateName(state int) string {
	if state >= 0 && state < len(a.names) && a.names[state] != "" {
		return a.names[state]
	}
	return strconv.Itoa(state)
}

// SetAccept Set or clear this state as an accept state.
func (a *Automaton) SetAccept(state int, accept bool) {
	a.isAccept.SetTo(uint(state), accept)
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return a.isAccept.Test(uint(state))
}

// Returns accept states. If the bit is set then that state is an accept state.
func (a *Automaton) getAcceptStates() *bitset.BitSet {
	return a.isAccept
}

func (a *Automaton) validState(state int) bool {
	return state >= 0 && state < a.GetNumStates()
}

// AddTransitionLabel Add a new transition with min = max = label.
func (a *Automaton) AddTransitionLabel(source, dest, label int) error {
	return a.AddTransition(source, dest, label, label)
}

// AddTransition Add a new transition with the specified source, dest, min, max.
func (a *Automaton) AddTransition(source, dest, min, max int) error {
	if !a.validState(source) {
		return fmt.Errorf("source %d: %w", source, ErrUnknownState)
	}
	if !a.validState(dest) {
		return fmt.Errorf("dest %d: %w", dest, ErrUnknownState)
	}
	if min > max {
		return fmt.Errorf("[%d, %d]: %w", min, max, ErrInvalidRange)
	}

	if a.curState != source {
		if a.curState != -1 {
			a.finishCurrentState()
		}

		// Move to next source:
		if a.states[2*source] != -1 {
			return fmt.Errorf("from state (%d): %w", source, ErrStateFinished)
		}
		a.curState = source
		a.states[2*source] = len(a.transitions)
	}

	a.transitions = append(a.transitions, dest, min, max)
	a.states[2*a.curState+1]++
	return nil
}

// Freezes the last state, sorting and reducing the transitions.
func (a *Automaton) finishCurrentState() {
	numTransitions := a.states[2*a.curState+1]
	offset := a.states[2*a.curState]

	sort.Sort(&destMinMaxSorter{a.transitions[offset : offset+3*numTransitions]})

	// Reduce any "adjacent" transitions:
	upto := 0
	minValue, maxValue, dest := -1, -1, -1
	flush := func() {
		a.transitions[offset+3*upto] = dest
		a.transitions[offset+3*upto+1] = minValue
		a.transitions[offset+3*upto+2] = maxValue
		upto++
	}

	for i := 0; i < numTransitions; i++ {
		tDest := a.transitions[offset+3*i]
		tMin := a.transitions[offset+3*i+1]
		tMax := a.transitions[offset+3*i+2]

		if dest == tDest && tMin <= maxValue+1 {
			if tMax > maxValue {
				maxValue = tMax
			}
			continue
		}
		if dest != -1 {
			flush()
		}
		dest, minValue, maxValue = tDest, tMin, tMax
	}
	if dest != -1 {
		flush()
	}

	// Only the current state's transitions live past offset, so the slice can be cut.
	a.transitions = a.transitions[:offset+3*upto]
	a.states[2*a.curState+1] = upto

	sort.Sort(&minMaxDestSorter{a.transitions[offset : offset+3*upto]})

	if a.deterministic && upto > 1 {
		lastMax := a.transitions[offset+2]
		for i := 1; i < upto; i++ {
			minValue = a.transitions[offset+3*i+1]
			if minValue <= lastMax {
				a.deterministic = false
				break
			}
			lastMax = a.transitions[offset+3*i+2]
		}
	}
}

// IsDeterministic Returns true if this automaton is deterministic (for every state there is only one
// transition for each label).
func (a *Automaton) IsDeterministic() bool {
	return a.deterministic
}

// FinishState
// Finishes the current state; call this once you are done adding transitions for a state.
// This is automatically called if you start adding transitions to a new source state,
// but for the last state you add you need to call this method yourself.
func (a *Automaton) FinishState() {
	if a.curState != -1 {
		a.finishCurrentState()
		a.curState = -1
	}
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return len(a.states) / 2
}

// GetNumTransitions How many transitions this automaton has.
func (a *Automaton) GetNumTransitions() int {
	return len(a.transitions) / 3
}

// GetNumTransitionsWithState How many transitions this state has.
func (a *Automaton) GetNumTransitionsWithState(state int) int {
	return a.states[2*state+1]
}

// InitTransition Initialize the provided Transition to iterate through all transitions leaving the specified
// state. You must call GetNextTransition to get each transition. Returns the number of transitions leaving
// this state.
func (a *Automaton) InitTransition(state int, t *Transition) int {
	t.Source = state
	t.TransitionUpto = a.states[2*state]
	return a.GetNumTransitionsWithState(state)
}

// GetNextTransition Iterate to the next transition after the provided one.
func (a *Automaton) GetNextTransition(t *Transition) {
	t.Dest = a.transitions[t.TransitionUpto]
	t.Min = a.transitions[t.TransitionUpto+1]
	t.Max = a.transitions[t.TransitionUpto+2]
	t.TransitionUpto += 3
}

// Fill the provided Transition with the index'th transition leaving the specified state.
func (a *Automaton) getTransition(state, index int, t *Transition) {
	i := a.states[2*state] + 3*index
	t.Source = state
	t.Dest = a.transitions[i]
	t.Min = a.transitions[i+1]
	t.Max = a.transitions[i+2]
}

// Step Performs lookup in transitions, assuming determinism.
// Returns the destination state, -1 if no matching outgoing transition.
func (a *Automaton) Step(state, label int) int {
	first := a.states[2*state]
	numTransitions := a.states[2*state+1]

	// Transitions are sorted, binary search the one with label within [min, max].
	low, high := 0, numTransitions-1
	for low <= high {
		mid := (low + high) >> 1
		i := first + 3*mid
		if a.transitions[i+1] > label {
			high = mid - 1
		} else if a.transitions[i+2] < label {
			low = mid + 1
		} else {
			return a.transitions[i]
		}
	}
	return -1
}

// Successors Returns every state reachable from state on label, in transition order. The result is empty
// when the state has no transition for label.
func (a *Automaton) Successors(state, label int) []int {
	var dests []int
	t := NewTransition()
	count := a.InitTransition(state, t)
	for i := 0; i < count; i++ {
		a.GetNextTransition(t)
		if t.Min > label {
			// sorted by min
			break
		}
		if label <= t.Max {
			dests = append(dests, t.Dest)
		}
	}
	return dests
}

// Sorts packed (dest, min, max) triples by dest, then min, then max.
type destMinMaxSorter struct {
	values []int
}

func (r *destMinMaxSorter) Len() int {
	return len(r.values) / 3
}

func (r *destMinMaxSorter) Less(i, j int) bool {
	return lessTriple(r.values[3*i:3*i+3], r.values[3*j:3*j+3], 0, 1, 2)
}

func (r *destMinMaxSorter) Swap(i, j int) {
	swapTriple(r.values, i, j)
}

// Sorts packed (dest, min, max) triples by min, then max, then dest.
type minMaxDestSorter struct {
	values []int
}

func (r *minMaxDestSorter) Len() int {
	return len(r.values) / 3
}

func (r *minMaxDestSorter) Less(i, j int) bool {
	return lessTriple(r.values[3*i:3*i+3], r.values[3*j:3*j+3], 1, 2, 0)
}

func (r *minMaxDestSorter) Swap(i, j int) {
	swapTriple(r.values, i, j)
}

func lessTriple(x, y []int, order ...int) bool {
	for _, k := range order {
		if x[k] != y[k] {
			return x[k] < y[k]
		}
	}
	return false
}

func swapTriple(values []int, i, j int) {
	i, j = 3*i, 3*j
	values[i], values[j] = values[j], values[i]
	values[i+1], values[j+1] = values[j+1], values[i+1]
	values[i+2], values[j+2] = values[j+2], values[i+2]
}
