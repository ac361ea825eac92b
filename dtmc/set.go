package dtmc

import "sort"

// StateSet holds states keyed by identity. Adding a state whose ID is
// already present keeps the existing entry.
type StateSet map[StateID]State

func NewStateSet(states ...State) StateSet {
	s := make(StateSet, len(states))
	for _, st := range states {
		s.Add(st)
	}
	return s
}

func (s StateSet) Add(st State) {
	if _, ok := s[st.id]; !ok {
		s[st.id] = st
	}
}

func (s StateSet) Has(st State) bool            { _, ok := s[st.id]; return ok }
func (s StateSet) Get(id StateID) (State, bool) { st, ok := s[id]; return st, ok }
func (s StateSet) Remove(st State)              { delete(s, st.id) }
func (s StateSet) Len() int                     { return len(s) }

// Slice returns the states ordered by ID.
func (s StateSet) Slice() []State {
	out := make([]State, 0, len(s))
	for _, st := range s {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func (s StateSet) Copy() StateSet {
	out := make(StateSet, len(s))
	for id, st := range s {
		out[id] = st
	}
	return out
}

func (s StateSet) Equals(other StateSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if _, ok := other[id]; !ok {
			return false
		}
	}
	return true
}

func (s StateSet) Union(other StateSet) StateSet {
	out := s.Copy()
	for _, st := range other {
		out.Add(st)
	}
	return out
}

func (s StateSet) Intersect(other StateSet) StateSet {
	out := make(StateSet)
	for id, st := range s {
		if _, ok := other[id]; ok {
			out[id] = st
		}
	}
	return out
}

func (s StateSet) Difference(other StateSet) StateSet {
	out := make(StateSet)
	for id, st := range s {
		if _, ok := other[id]; !ok {
			out[id] = st
		}
	}
	return out
}

// Labeled returns the states carrying proposition p.
func (s StateSet) Labeled(p Proposition) StateSet {
	out := make(StateSet)
	for id, st := range s {
		if st.HasAP(p) {
			out[id] = st
		}
	}
	return out
}
