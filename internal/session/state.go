// Package session models the generation-session state as an explicit value
// passed through transitions rather than ambient globals, so the core stays
// testable without a UI harness.
package session

import "github.com/siamdraw/lotto-cli/internal/model"

// State is one session's view: the chosen mode, the current set, and whether
// a generation is in flight (the UI's rolling animation).
type State struct {
	Mode    model.Mode       `json:"mode"`
	Current *model.NumberSet `json:"current,omitempty"`
	Rolling bool             `json:"rolling"`
}

// BeginRoll marks a generation for mode as in flight.
func (s State) BeginRoll(mode model.Mode) State {
	s.Mode = mode
	s.Rolling = true
	return s
}

// Complete installs the freshly generated set, replacing the previous one
// wholesale, and clears the rolling flag.
func (s State) Complete(set *model.NumberSet) State {
	s.Current = set
	s.Rolling = false
	return s
}

// Fail clears the rolling flag and keeps the previous set on display.
func (s State) Fail() State {
	s.Rolling = false
	return s
}
