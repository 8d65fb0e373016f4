package planner

import (
	"time"

	"clubmanager/internal/domain"
	"clubmanager/internal/encoding"
)

// RowMapper derives the grid row label for a content session. The default
// maps a session to its type; callers with custom planner layouts can
// supply their own.
type RowMapper func(domain.Session) string

// DefaultRowLabel buckets content sessions by their stored type.
func DefaultRowLabel(s domain.Session) string {
	return string(s.Type)
}

// Cell is one (day, row) content slot: a session plus its decoded payload.
// Exercises is nil for plain notes and non-nil (possibly empty) for
// exercise-list records.
type Cell struct {
	Session     domain.Session        `json:"session"`
	Kind        encoding.Kind         `json:"-"`
	Notes       string                `json:"notes,omitempty"`
	Exercises   []domain.ExerciseItem `json:"exercises,omitempty"`
	DecodeError bool                  `json:"decodeError,omitempty"`
}

// MetaCell is one (day, rowName) grid-meta slot.
type MetaCell struct {
	Session domain.Session `json:"session"`
	Value   string         `json:"value"`
}

// DayBucket is one column of the weekly grid. Maps are always initialized,
// even for days with no records at all.
type DayBucket struct {
	Date  string                         `json:"date"` // YYYY-MM-DD
	Flags map[domain.Turn]domain.DayFlag `json:"flags"`
	Cells map[string]Cell                `json:"cells"`
	Meta  map[string]MetaCell            `json:"meta"`

	// flag slot owners, kept for collision resolution
	flagSessions map[domain.Turn]domain.Session
}

// Diagnostic reports a non-fatal oddity found while assembling: a slot
// collision that was resolved last-write-wins, a payload that failed to
// decode, or a record outside the requested window. The grid is complete
// regardless.
type Diagnostic struct {
	Day       string `json:"day,omitempty"`
	Slot      string `json:"slot,omitempty"`
	SessionID string `json:"sessionId"`
	Reason    string `json:"reason"`
}

// WeekGrid is the assembled Monday-to-Sunday view of one week.
type WeekGrid struct {
	WeekStart   string       `json:"weekStart"` // Monday, YYYY-MM-DD
	WeekEnd     string       `json:"weekEnd"`   // Sunday, YYYY-MM-DD
	Days        []DayBucket  `json:"days"`      // exactly 7, Monday first
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// AssembleWeek buckets an unordered set of flat session records into the
// two-dimensional planning grid for the week containing ref. Each record is
// classified by sentinel inspection and routed to its slot; colliding slot
// claims resolve deterministically to the latest record by date, tie-broken
// by ID, with the losers surfaced as diagnostics. Malformed payloads
// degrade to empty cells with a diagnostic rather than failing the view.
func AssembleWeek(ref time.Time, sessions []domain.Session, rowLabel RowMapper) *WeekGrid {
	if rowLabel == nil {
		rowLabel = DefaultRowLabel
	}

	start, end := WeekWindow(ref)
	grid := &WeekGrid{
		WeekStart: YMD(start),
		WeekEnd:   YMD(start.AddDate(0, 0, 6)),
		Days:      make([]DayBucket, 7),
	}
	byDay := make(map[string]*DayBucket, 7)
	for i := 0; i < 7; i++ {
		day := YMD(start.AddDate(0, 0, i))
		grid.Days[i] = DayBucket{
			Date:         day,
			Flags:        make(map[domain.Turn]domain.DayFlag),
			Cells:        make(map[string]Cell),
			Meta:         make(map[string]MetaCell),
			flagSessions: make(map[domain.Turn]domain.Session),
		}
		byDay[day] = &grid.Days[i]
	}

	for _, s := range sessions {
		if s.Date.Before(start) || !s.Date.Before(end) {
			grid.addDiagnostic(Diagnostic{SessionID: s.ID.Hex(), Reason: "record outside week window"})
			continue
		}
		day := byDay[YMD(s.Date)]

		switch encoding.Classify(s.Description) {
		case encoding.KindDayFlag:
			grid.placeDayFlag(day, s)
		case encoding.KindGridMeta:
			grid.placeGridMeta(day, s)
		case encoding.KindExerciseList:
			grid.placeCell(day, rowLabel(s), exerciseCell(s), grid.decodeDiag(day, s))
		default:
			grid.placeCell(day, rowLabel(s), Cell{Session: s, Kind: encoding.KindPlainNote, Notes: s.Description}, nil)
		}
	}
	return grid
}

func exerciseCell(s domain.Session) Cell {
	dec := encoding.DecodeExercises(s.Description)
	return Cell{
		Session:     s,
		Kind:        encoding.KindExerciseList,
		Notes:       dec.Prefix,
		Exercises:   dec.Items,
		DecodeError: dec.DecodeError,
	}
}

func (g *WeekGrid) decodeDiag(day *DayBucket, s domain.Session) *Diagnostic {
	if !encoding.DecodeExercises(s.Description).DecodeError {
		return nil
	}
	return &Diagnostic{Day: day.Date, SessionID: s.ID.Hex(), Reason: "exercise payload failed to decode"}
}

func (g *WeekGrid) placeDayFlag(day *DayBucket, s domain.Session) {
	turn, flag, ok := encoding.DecodeDayFlag(s.Description, s.Title)
	if !ok {
		return
	}
	if prev, claimed := day.flagSessions[turn]; claimed {
		kept, discarded := resolveCollision(prev, s)
		g.addDiagnostic(Diagnostic{
			Day:       day.Date,
			Slot:      "flag:" + string(turn),
			SessionID: discarded.ID.Hex(),
			Reason:    "duplicate day-flag slot, kept " + kept.ID.Hex(),
		})
		if kept.ID == prev.ID {
			return
		}
	}
	day.flagSessions[turn] = s
	day.Flags[turn] = flag
}

func (g *WeekGrid) placeGridMeta(day *DayBucket, s domain.Session) {
	rowName, value, ok := encoding.DecodeGridMeta(s.Description, s.Title)
	if !ok {
		return
	}
	if prev, claimed := day.Meta[rowName]; claimed {
		kept, discarded := resolveCollision(prev.Session, s)
		g.addDiagnostic(Diagnostic{
			Day:       day.Date,
			Slot:      "meta:" + rowName,
			SessionID: discarded.ID.Hex(),
			Reason:    "duplicate grid-meta slot, kept " + kept.ID.Hex(),
		})
		if kept.ID == prev.Session.ID {
			return
		}
	}
	day.Meta[rowName] = MetaCell{Session: s, Value: value}
}

func (g *WeekGrid) placeCell(day *DayBucket, row string, cell Cell, diag *Diagnostic) {
	if prev, claimed := day.Cells[row]; claimed {
		kept, discarded := resolveCollision(prev.Session, cell.Session)
		g.addDiagnostic(Diagnostic{
			Day:       day.Date,
			Slot:      "row:" + row,
			SessionID: discarded.ID.Hex(),
			Reason:    "duplicate content slot, kept " + kept.ID.Hex(),
		})
		if kept.ID == prev.Session.ID {
			return
		}
	}
	day.Cells[row] = cell
	if diag != nil {
		g.addDiagnostic(*diag)
	}
}

// resolveCollision is the documented last-write-wins policy: keep the
// record with the latest date, tie-broken by ID ordering.
func resolveCollision(a, b domain.Session) (kept, discarded domain.Session) {
	if b.Date.After(a.Date) {
		return b, a
	}
	if a.Date.After(b.Date) {
		return a, b
	}
	if b.ID.Hex() > a.ID.Hex() {
		return b, a
	}
	return a, b
}

func (g *WeekGrid) addDiagnostic(d Diagnostic) {
	g.Diagnostics = append(g.Diagnostics, d)
}
