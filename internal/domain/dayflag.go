package domain

// Turn identifies the half-day a flag or cell belongs to.
type Turn string

const (
	TurnMorning   Turn = "morning"
	TurnAfternoon Turn = "afternoon"
)

// ValidTurn reports whether t is a known turn value.
func ValidTurn(t Turn) bool {
	return t == TurnMorning || t == TurnAfternoon
}

// FlagKind classifies a day/turn slot.
type FlagKind string

const (
	FlagNone    FlagKind = "NONE"    // regular training (or nothing planned)
	FlagLibre   FlagKind = "LIBRE"   // day off
	FlagPartido FlagKind = "PARTIDO" // match day
)

// DayFlag is the decoded per-day, per-turn classification. Rival and
// LogoURL are only meaningful for PARTIDO.
type DayFlag struct {
	Kind    FlagKind `json:"kind"`
	Rival   string   `json:"rival,omitempty"`
	LogoURL string   `json:"logoUrl,omitempty"`
}

// IsZero reports whether the flag carries no classification.
func (f DayFlag) IsZero() bool {
	return f.Kind == "" || f.Kind == FlagNone
}
