package automaton

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/bits-and-blooms/bitset"
)

// DefaultDeterminizeWorkLimit Default cap on the number of states Determinize may create.
const DefaultDeterminizeWorkLimit = 10000

var ErrTooComplexToDeterminize = errors.New("automaton too complex to determinize")

// IsEmptyAutomaton
// Returns true if the given automaton accepts no strings.
func IsEmptyAutomaton(a *Automaton) bool {
	if a.GetNumStates() == 0 {
		return true
	}
	if a.IsAccept(0) {
		return false
	}

	workList := []int{0}
	seen := bitset.New(uint(a.GetNumStates()))
	seen.Set(0)

	t := NewTransition()
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		if a.IsAccept(state) {
			return false
		}

		count := a.InitTransition(state, t)
		for i := 0; i < count; i++ {
			a.GetNextTransition(t)
			if !seen.Test(uint(t.Dest)) {
				workList = append(workList, t.Dest)
				seen.Set(uint(t.Dest))
			}
		}
	}
	return true
}

// LiveStates
// Returns the states that are reachable from the initial state and from which an accept state can be reached.
func LiveStates(a *Automaton) *bitset.BitSet {
	live := getLiveStatesFromInitial(a)
	live.InPlaceIntersection(getLiveStatesToAccept(a))
	return live
}

// DeadStates
// Returns the states that are reachable from the initial state but can never lead to acceptance.
func DeadStates(a *Automaton) *bitset.BitSet {
	return getLiveStatesFromInitial(a).Difference(getLiveStatesToAccept(a))
}

func getLiveStatesFromInitial(a *Automaton) *bitset.BitSet {
	numStates := a.GetNumStates()
	live := bitset.New(uint(numStates))
	if numStates == 0 {
		return live
	}

	workList := []int{0}
	live.Set(0)

	t := NewTransition()
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		count := a.InitTransition(s, t)
		for i := 0; i < count; i++ {
			a.GetNextTransition(t)
			if !live.Test(uint(t.Dest)) {
				live.Set(uint(t.Dest))
				workList = append(workList, t.Dest)
			}
		}
	}
	return live
}

// Walks the reversed edges back from every accept state.
func getLiveStatesToAccept(a *Automaton) *bitset.BitSet {
	numStates := a.GetNumStates()

	reversed := make([][]int, numStates)
	t := NewTransition()
	for s := 0; s < numStates; s++ {
		for i := 0; i < a.GetNumTransitionsWithState(s); i++ {
			a.getTransition(s, i, t)
			reversed[t.Dest] = append(reversed[t.Dest], s)
		}
	}

	live := a.getAcceptStates().Clone()
	workList := make([]int, 0)
	for s, ok := live.NextSet(0); ok && int(s) < numStates; s, ok = live.NextSet(s + 1) {
		workList = append(workList, int(s))
	}

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, source := range reversed[s] {
			if !live.Test(uint(source)) {
				live.Set(uint(source))
				workList = append(workList, source)
			}
		}
	}
	return live
}

// GetStartPoints Returns sorted array of all interval start points.
func (a *Automaton) GetStartPoints() []int {
	points := map[int]struct{}{0: {}}
	for s := 0; s < a.GetNumStates(); s++ {
		t := NewTransition()
		count := a.InitTransition(s, t)
		for i := 0; i < count; i++ {
			a.GetNextTransition(t)
			points[t.Min] = struct{}{}
			if t.Max < unicode.MaxRune {
				points[t.Max+1] = struct{}{}
			}
		}
	}
	return slices.Sorted(maps.Keys(points))
}

// Determinize
// Determinizes the given automaton with the subset construction. Every state of the result stands for a set
// of states of a and is named after them, e.g. "{A,B}". Fails with ErrTooComplexToDeterminize once more
// than workLimit states would be created.
func Determinize(a *Automaton, workLimit int) (*Automaton, error) {
	if a.IsDeterministic() || a.GetNumStates() <= 1 {
		return a, nil
	}

	numStates := a.GetNumStates()
	points := a.GetStartPoints()
	b := NewAutomaton()

	initial := NewStateSet(numStates)
	initial.Add(0)
	b.CreateNamedState(subsetName(a, initial))
	b.SetAccept(0, a.IsAccept(0))

	newState := NewHashMap[*FrozenIntSet](WithCapacity(16))
	frozen := initial.Freeze(0)
	newState.Set(frozen, frozen)
	workList := []*FrozenIntSet{frozen}

	t := NewTransition()
	for len(workList) > 0 {
		current := workList[0]
		workList = workList[1:]

		for i, min := range points {
			max := int(unicode.MaxRune)
			if i+1 < len(points) {
				max = points[i+1] - 1
			}

			next := NewStateSet(numStates)
			for _, s := range current.GetArray() {
				count := a.InitTransition(s, t)
				for j := 0; j < count; j++ {
					a.GetNextTransition(t)
					if t.Min <= min && max <= t.Max {
						next.Add(t.Dest)
					}
				}
			}
			if next.Size() == 0 {
				continue
			}

			dest, ok := newState.Get(next)
			if !ok {
				if b.GetNumStates() >= workLimit {
					return nil, fmt.Errorf("more than %d states: %w", workLimit, ErrTooComplexToDeterminize)
				}
				state := b.CreateNamedState(subsetName(a, next))
				b.SetAccept(state, next.AnyAccept(a))
				dest = next.Freeze(state)
				newState.Set(dest, dest)
				workList = append(workList, dest)
			}

			if err := b.AddTransition(current.State(), dest.State(), min, max); err != nil {
				return nil, err
			}
		}
	}
	b.FinishState()
	return b, nil
}

func subsetName(a *Automaton, set IntSet) string {
	names := make([]string, 0, set.Size())
	for _, s := range set.GetArray() {
		names = append(names, a.StateName(s))
	}
	return "{" + strings.Join(names, ",") + "}"
}
