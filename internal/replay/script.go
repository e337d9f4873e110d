package replay

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"multiselect/internal/domain"
)

// Script is a headless interaction sequence
type Script struct {
	Trigger         string   `toml:"trigger"`
	AllowDuplicates *bool    `toml:"allow_duplicates"`
	Initial         []string `toml:"initial"`
	// NoTrigger leaves the trigger element unregistered
	NoTrigger bool   `toml:"no_trigger"`
	Steps     []Step `toml:"step"`
}

// Step is one host event. Exactly one of Key, Click, Add, Remove, RemoveAt,
// Reset, Open or Close is set.
type Step struct {
	Key          string   `toml:"key"`
	Origin       string   `toml:"origin"` // "trigger" or "item:N"
	Prevent      *bool    `toml:"prevent"`
	CaretAtStart *bool    `toml:"caret_at_start"`
	Click        *int     `toml:"click"`
	Add          *string  `toml:"add"`
	Remove       *string  `toml:"remove"`
	RemoveAt     *int     `toml:"remove_at"`
	Reset        []string `toml:"reset"`
	Open         bool     `toml:"open"`
	Close        bool     `toml:"close"`
}

// ErrEmptyStep is returned for a step that does nothing
var ErrEmptyStep = errors.New("step has no event")

// Parse decodes and validates a TOML script
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if _, err := domain.ParseTriggerKind(s.Trigger); err != nil {
		return nil, err
	}
	for i, st := range s.Steps {
		if st.kinds() != 1 {
			return nil, fmt.Errorf("step %d: %w", i+1, ErrEmptyStep)
		}
		if st.Key != "" {
			if _, err := domain.ParseRole(st.Origin); err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}
	return &s, nil
}

func (st Step) kinds() int {
	n := 0
	for _, set := range []bool{
		st.Key != "", st.Click != nil, st.Add != nil, st.Remove != nil,
		st.RemoveAt != nil, st.Reset != nil, st.Open, st.Close,
	} {
		if set {
			n++
		}
	}
	return n
}
