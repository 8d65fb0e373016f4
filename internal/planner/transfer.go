package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubmanager/internal/domain"
)

// Store is the narrow record contract the transfer engine consumes. The
// mongo session repository satisfies it; tests use an in-memory fake. Both
// window bounds are UTC day-aligned, [start, end).
type Store interface {
	ListRecords(ctx context.Context, teamID primitive.ObjectID, start, end time.Time) ([]domain.Session, error)
	CreateRecord(ctx context.Context, session *domain.Session) (primitive.ObjectID, error)
	DeleteRecords(ctx context.Context, teamID primitive.ObjectID, start, end time.Time) (int64, error)
}

// ExportVersion tags export documents so a future format change can be
// detected on replay.
const ExportVersion = 1

// ExportRecord is one portable session: store identifiers and timestamps
// stripped, sentinel payloads carried verbatim (they are date-independent).
type ExportRecord struct {
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Date        time.Time          `json:"date"`
	Type        domain.SessionType `json:"type"`
	CreatedBy   string             `json:"createdBy,omitempty"`
}

// ExportDocument is a portable copy of one week, suitable for replaying
// through the ordinary create path at a different week offset.
type ExportDocument struct {
	Version   int            `json:"version"`
	WeekStart string         `json:"weekStart"`
	WeekEnd   string         `json:"weekEnd"`
	Count     int            `json:"count"`
	Records   []ExportRecord `json:"records"`
}

// TransferReport carries the exact outcome of a week transfer. Created may
// be lower than Attempted when the store failed midway; the accompanying
// error says so and the counts are never silently rounded up.
type TransferReport struct {
	DeltaDays int   `json:"deltaDays"`
	Deleted   int64 `json:"deleted"`
	Created   int   `json:"created"`
	Attempted int   `json:"attempted"`
}

var ErrUnsupportedExportVersion = errors.New("unsupported export document version")

// Transfer duplicates, exports and imports whole weeks of records. The
// delete-then-create sequence in DuplicateWeek is best-effort, not
// transactional: the store contract offers no transaction, so concurrent
// writers targeting the same week can interleave.
type Transfer struct {
	store Store
}

func NewTransfer(store Store) *Transfer {
	return &Transfer{store: store}
}

// DuplicateWeek copies every record in the week containing from into the
// week containing to, shifting dates by the whole-day offset between the
// two Mondays (negative offsets work). With overwrite set, the target
// window is bulk-deleted first.
func (t *Transfer) DuplicateWeek(ctx context.Context, teamID, createdBy primitive.ObjectID, from, to time.Time, overwrite bool) (TransferReport, error) {
	fromStart, fromEnd := WeekWindow(from)
	toStart, toEnd := WeekWindow(to)
	report := TransferReport{DeltaDays: deltaDays(fromStart, toStart)}

	if overwrite {
		deleted, err := t.store.DeleteRecords(ctx, teamID, toStart, toEnd)
		report.Deleted = deleted
		if err != nil {
			return report, fmt.Errorf("duplicate week: clearing target window %s: %w", YMD(toStart), err)
		}
	}

	src, err := t.store.ListRecords(ctx, teamID, fromStart, fromEnd)
	if err != nil {
		return report, fmt.Errorf("duplicate week: listing source window %s: %w", YMD(fromStart), err)
	}
	report.Attempted = len(src)

	for _, s := range src {
		dup := domain.Session{
			TeamID:      teamID,
			Date:        s.Date.AddDate(0, 0, report.DeltaDays),
			Type:        s.Type,
			Title:       s.Title,
			Description: s.Description,
			CreatedBy:   pickCreator(s.CreatedBy, createdBy),
		}
		if _, err := t.store.CreateRecord(ctx, &dup); err != nil {
			// partial completion: report exactly how far we got
			return report, fmt.Errorf("duplicate week: created %d of %d records into %s: %w",
				report.Created, report.Attempted, YMD(toStart), err)
		}
		report.Created++
	}
	return report, nil
}

// ExportWeek produces a portable document for the week containing ref.
func (t *Transfer) ExportWeek(ctx context.Context, teamID primitive.ObjectID, ref time.Time) (*ExportDocument, error) {
	start, end := WeekWindow(ref)
	sessions, err := t.store.ListRecords(ctx, teamID, start, end)
	if err != nil {
		return nil, fmt.Errorf("export week %s: %w", YMD(start), err)
	}

	doc := &ExportDocument{
		Version:   ExportVersion,
		WeekStart: YMD(start),
		WeekEnd:   YMD(start.AddDate(0, 0, 6)),
		Count:     len(sessions),
		Records:   make([]ExportRecord, 0, len(sessions)),
	}
	for _, s := range sessions {
		doc.Records = append(doc.Records, ExportRecord{
			Title:       s.Title,
			Description: s.Description,
			Date:        s.Date,
			Type:        s.Type,
			CreatedBy:   s.CreatedBy.Hex(),
		})
	}
	return doc, nil
}

// ImportWeek replays an export document into the week containing to,
// shifting each record by the Monday-to-Monday offset. Grid payloads
// transfer unchanged; the importing actor becomes the creator since the
// exporting club's user IDs mean nothing here.
func (t *Transfer) ImportWeek(ctx context.Context, teamID, createdBy primitive.ObjectID, doc *ExportDocument, to time.Time, overwrite bool) (TransferReport, error) {
	if doc == nil || doc.Version != ExportVersion {
		return TransferReport{}, ErrUnsupportedExportVersion
	}
	docStart, err := ParseYMD(doc.WeekStart)
	if err != nil {
		return TransferReport{}, fmt.Errorf("import week: bad weekStart %q: %w", doc.WeekStart, err)
	}

	toStart, toEnd := WeekWindow(to)
	report := TransferReport{DeltaDays: deltaDays(MondayOf(docStart), toStart), Attempted: len(doc.Records)}

	if overwrite {
		deleted, err := t.store.DeleteRecords(ctx, teamID, toStart, toEnd)
		report.Deleted = deleted
		if err != nil {
			return report, fmt.Errorf("import week: clearing target window %s: %w", YMD(toStart), err)
		}
	}

	for _, r := range doc.Records {
		session := domain.Session{
			TeamID:      teamID,
			Date:        r.Date.AddDate(0, 0, report.DeltaDays),
			Type:        r.Type,
			Title:       r.Title,
			Description: r.Description,
			CreatedBy:   createdBy,
		}
		if _, err := t.store.CreateRecord(ctx, &session); err != nil {
			return report, fmt.Errorf("import week: created %d of %d records into %s: %w",
				report.Created, report.Attempted, YMD(toStart), err)
		}
		report.Created++
	}
	return report, nil
}

// deltaDays is the whole-day offset between two UTC midnights.
func deltaDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// pickCreator keeps the original author when duplicating within the club,
// falling back to the acting user for records with no author.
func pickCreator(original, actor primitive.ObjectID) primitive.ObjectID {
	if original != primitive.NilObjectID {
		return original
	}
	return actor
}
