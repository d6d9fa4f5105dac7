package automaton

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// binaryStringsUpTo Every string over {0, 1} of length at most n, the empty string included.
func binaryStringsUpTo(n int) []string {
	out := []string{""}
	level := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, s := range level {
			next = append(next, s+"0", s+"1")
		}
		out = append(out, next...)
		level = next
	}
	return out
}

func TestIsEmptyAutomaton(t *testing.T) {
	assert.True(t, IsEmptyAutomaton(defaultAutomata.MakeEmpty()))
	assert.False(t, IsEmptyAutomaton(defaultAutomata.MakeEmptyString()))

	a, err := defaultAutomata.MakeComputationAutomaton()
	require.NoError(t, err)
	assert.False(t, IsEmptyAutomaton(a))

	// accept state that cannot be reached
	b := NewAutomaton()
	s0 := b.CreateState()
	s1 := b.CreateState()
	b.SetAccept(s1, true)
	require.NoError(t, b.AddTransitionLabel(s0, s0, 'x'))
	b.FinishState()
	assert.True(t, IsEmptyAutomaton(b))
}

func TestLiveAndDeadStates(t *testing.T) {
	a, err := defaultAutomata.MakeComputationAutomaton()
	require.NoError(t, err)

	live := LiveStates(a)
	assert.True(t, live.Test(StateA))
	assert.True(t, live.Test(StateB))
	assert.True(t, live.Test(StateC))
	assert.False(t, live.Test(StateDead))

	dead := DeadStates(a)
	assert.Equal(t, uint(1), dead.Count())
	assert.True(t, dead.Test(StateDead))
}

func TestGetStartPoints(t *testing.T) {
	a, err := defaultAutomata.MakeComputationAutomaton()
	require.NoError(t, err)
	assert.Equal(t, []int{0, Symbol0, Symbol1, Symbol1 + 1}, a.GetStartPoints())
}

func TestDeterminize(t *testing.T) {
	a, err := defaultAutomata.MakeComputationAutomaton()
	require.NoError(t, err)

	d, err := Determinize(a, DefaultDeterminizeWorkLimit)
	require.NoError(t, err)
	assert.True(t, d.IsDeterministic())
	assert.Equal(t, "{A}", d.StateName(0))

	for _, s := range binaryStringsUpTo(8) {
		assert.Equalf(t, RunNFA(a, s), Run(d, s), "input %q", s)
	}

	t.Run("already deterministic", func(t *testing.T) {
		b, err := defaultAutomata.MakeBinaryString()
		require.NoError(t, err)
		got, err := Determinize(b, DefaultDeterminizeWorkLimit)
		require.NoError(t, err)
		assert.Same(t, b, got)
	})

	t.Run("work limit", func(t *testing.T) {
		_, err := Determinize(a, 2)
		assert.True(t, errors.Is(err, ErrTooComplexToDeterminize))
	})
}

func TestRunNFA(t *testing.T) {
	a, err := defaultAutomata.MakeComputationAutomaton()
	require.NoError(t, err)

	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"1", false},
		{"0", false},
		{"00", false},
		{"01", true},
		{"10", false},
		{"0011", true},
		{"1110", false},
		{"10101", true},
		{"012", false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, RunNFA(a, tt.input), "RunNFA(%q)", tt.input)
	}

	// A string is accepted exactly when it contains "01".
	for _, s := range binaryStringsUpTo(8) {
		assert.Equalf(t, strings.Contains(s, "01"), RunNFA(a, s), "RunNFA(%q)", s)
	}

	assert.False(t, RunNFA(defaultAutomata.MakeEmpty(), ""))
	assert.True(t, RunNFA(defaultAutomata.MakeEmptyString(), ""))
}

func TestRun(t *testing.T) {
	a, err := defaultAutomata.MakeBinaryString()
	require.NoError(t, err)

	tests := []struct {
		name string
		s    string
		want bool
	}{
		{"empty", "", true},
		{"binary", "0110", true},
		{"other digit", "012", false},
		{"letters", "abc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, Run(a, tt.s), "Run(%v)", tt.s)
		})
	}

	assert.False(t, Run(defaultAutomata.MakeEmpty(), ""))
}
