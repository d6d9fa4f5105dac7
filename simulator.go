package automaton

import (
	"fmt"
	"io"
	"log/slog"
)

// DefaultMaxInputLength Default cap on the number of symbols a Simulator accepts.
const DefaultMaxInputLength = 24

// Result Outcome of one simulation run. Root is never shared between runs; it is nil for Check.
type Result struct {
	Input    string
	Root     *Configuration
	Accepted bool
	Nodes    int
}

// Message Verdict as shown to users.
func (r *Result) Message() string {
	if r.Accepted {
		return fmt.Sprintf("The string %q is accepted.", r.Input)
	}
	return fmt.Sprintf("The string %q is not accepted.", r.Input)
}

type Simulator struct {
	automaton      *Automaton
	matcher        *RunAutomaton
	logger         *slog.Logger
	maxInputLength int
	maxNodes       int
}

type SimulatorOption func(*Simulator)

func WithLogger(logger *slog.Logger) SimulatorOption {
	return func(s *Simulator) {
		s.logger = logger
	}
}

func WithMaxInputLength(n int) SimulatorOption {
	return func(s *Simulator) {
		s.maxInputLength = n
	}
}

func WithTreeMaxNodes(n int) SimulatorOption {
	return func(s *Simulator) {
		s.maxNodes = n
	}
}

// WithAutomaton Simulate a instead of the computation automaton.
func WithAutomaton(a *Automaton) SimulatorOption {
	return func(s *Simulator) {
		s.automaton = a
	}
}

func NewSimulator(opts ...SimulatorOption) (*Simulator, error) {
	s := &Simulator{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxInputLength: DefaultMaxInputLength,
		maxNodes:       DefaultMaxNodes,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.automaton == nil {
		a, err := defaultAutomata.MakeComputationAutomaton()
		if err != nil {
			return nil, fmt.Errorf("computation automaton: %w", err)
		}
		s.automaton = a
	}

	matcher, err := NewRunAutomaton(s.automaton, DefaultDeterminizeWorkLimit)
	if err != nil {
		return nil, fmt.Errorf("determinize: %w", err)
	}
	s.matcher = matcher
	return s, nil
}

// Automaton The automaton whose computation trees are built.
func (s *Simulator) Automaton() *Automaton {
	return s.automaton
}

// Simulate
// Validates raw, builds the computation tree of the input and checks it for acceptance. Invalid input is
// reported before any tree is built.
func (s *Simulator) Simulate(raw string) (*Result, error) {
	input, err := ValidateInput(raw, s.maxInputLength)
	if err != nil {
		s.logger.Debug("rejected input", "input", raw, "error", err)
		return nil, err
	}

	root, err := BuildTree(s.automaton, input, WithMaxNodes(s.maxNodes))
	if err != nil {
		s.logger.Warn("build computation tree", "input", input, "error", err)
		return nil, err
	}

	result := &Result{
		Input:    input,
		Root:     root,
		Accepted: Accepts(root, input),
		Nodes:    Size(root),
	}
	s.logger.Debug("simulated",
		"input", input,
		"accepted", result.Accepted,
		"nodes", result.Nodes,
		"height", Height(root),
	)
	return result, nil
}

// Check
// Validates raw and decides acceptance on the determinized automaton without building a tree. The cost is linear
// in the input, so only the alphabet is checked, not the input length cap.
func (s *Simulator) Check(raw string) (*Result, error) {
	input, err := ValidateInput(raw, 0)
	if err != nil {
		s.logger.Debug("rejected input", "input", raw, "error", err)
		return nil, err
	}
	result := &Result{Input: input, Accepted: s.matcher.Run(input)}
	s.logger.Debug("checked", "input", input, "accepted", result.Accepted)
	return result, nil
}
