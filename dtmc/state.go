package dtmc

import (
	"fmt"
	"strconv"
	"strings"
)

// StateID identifies a state within the chain that owns it.
// Uniqueness is the owner's responsibility.
type StateID int

// Proposition is an atomic proposition label attached to a state.
type Proposition string

// State is one state of a DTMC. It is immutable after construction, so
// it can be shared between goroutines and used as a map key by ID.
type State struct {
	id   StateID
	name string
	ap   []Proposition
}

// StateOption configures NewState.
type StateOption func(*State)

// WithName sets the display name. An empty name keeps the default.
func WithName(name string) StateOption {
	return func(s *State) {
		s.name = name
	}
}

// WithAP attaches atomic propositions. The slice is copied.
func WithAP(props ...Proposition) StateOption {
	return func(s *State) {
		s.ap = append(s.ap[:0:0], props...)
	}
}

// NewState creates a state. Without WithName the name is "s<id>".
func NewState(id StateID, opts ...StateOption) State {
	s := State{id: id}
	for _, opt := range opts {
		opt(&s)
	}
	if s.name == "" {
		s.name = defaultName(id)
	}
	if s.ap == nil {
		s.ap = []Proposition{}
	}
	return s
}

func (s State) ID() StateID {
	return s.id
}

// Name returns the display name, "s<id>" when none was set.
func (s State) Name() string {
	if s.name == "" {
		return defaultName(s.id)
	}
	return s.name
}

func defaultName(id StateID) string {
	return "s" + strconv.Itoa(int(id))
}

// AP returns a copy of the state's atomic propositions.
func (s State) AP() []Proposition {
	out := make([]Proposition, len(s.ap))
	copy(out, s.ap)
	return out
}

// HasAP reports whether p labels the state.
func (s State) HasAP(p Proposition) bool {
	for _, q := range s.ap {
		if q == p {
			return true
		}
	}
	return false
}

// Equal reports whether other is a State (or *State) with the same ID.
// Names and propositions are ignored.
func (s State) Equal(other any) bool {
	switch o := other.(type) {
	case State:
		return o.id == s.id
	case *State:
		return o != nil && o.id == s.id
	default:
		return false
	}
}

// Hash returns the ID itself.
func (s State) Hash() int {
	return int(s.id)
}

// Hash64 mixes the ID with the splitmix64 finalizer. Use it instead of
// Hash when bucketing sparse or very large ID spaces.
func (s State) Hash64() uint64 {
	z := uint64(s.id) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// String returns the display name.
func (s State) String() string {
	return s.Name()
}

// GoString returns the diagnostic form State(<id>, name=<name>, ap=["p" ...]).
// Propositions are quoted so labels containing spaces stay distinct.
func (s State) GoString() string {
	return fmt.Sprintf("State(%d, name=%s, ap=%q)", s.id, s.Name(), s.ap)
}

// ParseStateID parses a decimal state identifier.
func ParseStateID(text string) (StateID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: state id %q is not an integer", ErrInvalidArgument, text)
	}
	return StateID(n), nil
}

// ParseProposition trims text and rejects empty labels.
func ParseProposition(text string) (Proposition, error) {
	p := strings.TrimSpace(text)
	if p == "" {
		return "", fmt.Errorf("%w: empty proposition", ErrInvalidArgument)
	}
	return Proposition(p), nil
}

// ParsePropositions splits text on sep and parses each label.
// An empty text yields no propositions.
func ParsePropositions(text, sep string) ([]Proposition, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	parts := strings.Split(text, sep)
	props := make([]Proposition, 0, len(parts))
	for _, part := range parts {
		p, err := ParseProposition(part)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, nil
}
