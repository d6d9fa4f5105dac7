package automaton

// Hashable Key type of HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// IntSet A set of automaton states usable as a HashMap key. GetArray returns the states in ascending order.
type IntSet interface {
	Hashable

	GetArray() []int

	Size() int
}

// hashStates Hash shared by every IntSet implementation so a mutable set and its frozen copy collide.
func hashStates(states []int) uint64 {
	h := uint64(len(states))
	for _, s := range states {
		h += uint64(mix(s))
	}
	return h
}

func equalIntSets(a IntSet, other Hashable) bool {
	b, ok := other.(IntSet)
	if !ok || a.Size() != b.Size() || a.Hash() != b.Hash() {
		return false
	}
	x, y := a.GetArray(), b.GetArray()
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
