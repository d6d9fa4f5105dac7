package automaton

import "github.com/bits-and-blooms/bitset"

var _ IntSet = &StateSet{}

// StateSet Mutable set of automaton states backed by a bitset.
type StateSet struct {
	inner       *bitset.BitSet
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet(numStates int) *StateSet {
	return &StateSet{
		inner: bitset.New(uint(numStates)),
	}
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = hashStates(s.GetArray())
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	return equalIntSets(s, other)
}

func (s *StateSet) GetArray() []int {
	states := make([]int, 0, s.inner.Count())
	for i, ok := s.inner.NextSet(0); ok; i, ok = s.inner.NextSet(i + 1) {
		states = append(states, int(i))
	}
	return states
}

func (s *StateSet) Size() int {
	return int(s.inner.Count())
}

func (s *StateSet) Add(state int) {
	if !s.inner.Test(uint(state)) {
		s.inner.Set(uint(state))
		s.hashUpdated = false
	}
}

func (s *StateSet) Contains(state int) bool {
	return s.inner.Test(uint(state))
}

func (s *StateSet) Clear() {
	s.inner.ClearAll()
	s.hashUpdated = false
}

// AnyAccept Returns true if any state of the set is an accept state of a.
func (s *StateSet) AnyAccept(a *Automaton) bool {
	return s.inner.IntersectionCardinality(a.getAcceptStates()) > 0
}

// Freeze Snapshot the set, tagging it with the given determinized state.
func (s *StateSet) Freeze(state int) *FrozenIntSet {
	return NewFrozenIntSet(s.GetArray(), s.Hash(), state)
}
