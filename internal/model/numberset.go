package model

import (
	"fmt"
	"time"
)

// SourceKind identifies how a number set was produced.
type SourceKind string

const (
	SourceRandom     SourceKind = "random"
	SourceAI         SourceKind = "ai"
	SourceHistorical SourceKind = "historical_stats"
	SourceGuru       SourceKind = "guru_consensus"
)

// Mode selects the generation strategy for a number set.
type Mode string

const (
	ModeRandom     Mode = "random"
	ModeAI         Mode = "ai"
	ModeHistorical Mode = "stats"
	ModeGuru       Mode = "guru"
)

// ParseMode converts a user-supplied mode string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeRandom, ModeAI, ModeHistorical, ModeGuru:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (want random, ai, stats or guru)", s)
}

// Source returns the SourceKind stamped on sets generated under this mode.
func (m Mode) Source() SourceKind {
	switch m {
	case ModeAI:
		return SourceAI
	case ModeHistorical:
		return SourceHistorical
	case ModeGuru:
		return SourceGuru
	default:
		return SourceRandom
	}
}

// NumberSet is the canonical lottery number record. Digit fields always hold
// exactly their declared width of decimal digits; FrontThree and RearThree
// always hold exactly two entries. A set is immutable once built and is
// replaced wholesale by the next generation.
type NumberSet struct {
	ID          string     `json:"id"`
	FirstPrize  string     `json:"first_prize"` // 6 digits
	FrontThree  []string   `json:"front_three"` // 2 entries, 3 digits each
	RearThree   []string   `json:"rear_three"`  // 2 entries, 3 digits each
	RearTwo     string     `json:"rear_two"`    // 2 digits
	Source      SourceKind `json:"source"`
	Reasoning   string     `json:"reasoning,omitempty"`
	Confidence  *float64   `json:"confidence,omitempty"` // 0–100
	DrawDate    string     `json:"draw_date"`
	Sources     []string   `json:"sources,omitempty"` // provenance: method or guru names
	GeneratedAt time.Time  `json:"generated_at"`
}
