package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionType categorizes a planner session. Stored natively on the record,
// orthogonal to whatever payload the title/description fields carry.
type SessionType string

const (
	SessionGeneral  SessionType = "general"
	SessionStrength SessionType = "strength"
	SessionTactical SessionType = "tactical"
	SessionAerobic  SessionType = "aerobic"
	SessionRecovery SessionType = "recovery"
)

// ValidSessionType reports whether t is one of the known session categories.
func ValidSessionType(t SessionType) bool {
	switch t {
	case SessionGeneral, SessionStrength, SessionTactical, SessionAerobic, SessionRecovery:
		return true
	}
	return false
}

// Session is the flat planner record. The store knows nothing about the
// roles a record can play: day flags, grid meta rows and exercise lists are
// all multiplexed into Title/Description via sentinel markers (see the
// encoding package). One record carries exactly one logical role.
type Session struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TeamID      primitive.ObjectID `bson:"teamId" json:"teamId"`
	Date        time.Time          `bson:"date" json:"date"` // day-bucket key, truncated to UTC midnight
	Type        SessionType        `bson:"type" json:"type"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Day returns the session's UTC calendar day. Two sessions with the same
// Day belong to the same grid column regardless of wall-clock time.
func (s *Session) Day() time.Time {
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), 0, 0, 0, 0, time.UTC)
}
