package model

import (
	"encoding/json"
	"fmt"
)

// Symbols written for a status in JSON output and in the Tracker sheet.
const (
	SymbolPass = "✔️"
	SymbolFail = "❌"
)

// Status records whether an activity met its goal for the day.
//
// The meaning depends on the activity Kind: a do activity passes when it was
// completed, a do-not activity passes when it was avoided.
type Status int

const (
	StatusFail Status = iota
	StatusPass
)

// StatusFromAnswer maps a yes/no answer to a status.
func StatusFromAnswer(yes bool) Status {
	if yes {
		return StatusPass
	}
	return StatusFail
}

// Passed reports whether the status is a pass.
func (s Status) Passed() bool { return s == StatusPass }

// Symbol returns the tick or cross symbol.
func (s Status) Symbol() string {
	if s == StatusPass {
		return SymbolPass
	}
	return SymbolFail
}

// Label names the status for the given kind, e.g. "Avoided" or "Not Completed".
func (s Status) Label(k Kind) string {
	switch {
	case k == KindDo && s == StatusPass:
		return "Completed"
	case k == KindDo:
		return "Not Completed"
	case s == StatusPass:
		return "Avoided"
	default:
		return "Not Avoided"
	}
}

func (s Status) String() string { return s.Symbol() }

// MarshalJSON encodes the status as its symbol.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Symbol())
}

// UnmarshalJSON decodes a status symbol.
func (s *Status) UnmarshalJSON(data []byte) error {
	var sym string
	if err := json.Unmarshal(data, &sym); err != nil {
		return err
	}
	parsed, err := ParseStatus(sym)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStatus parses a status symbol.
func ParseStatus(sym string) (Status, error) {
	switch sym {
	case SymbolPass:
		return StatusPass, nil
	case SymbolFail:
		return StatusFail, nil
	}
	return StatusFail, fmt.Errorf("unknown status symbol %q", sym)
}
