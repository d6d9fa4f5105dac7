package automaton

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet Immutable snapshot of a StateSet, remembering the determinized state it was mapped to.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

func NewFrozenIntSet(values []int, hashCode uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenIntSet) Equals(other Hashable) bool {
	return equalIntSets(f, other)
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State The determinized state this set stands for.
func (f *FrozenIntSet) State() int {
	return f.state
}
