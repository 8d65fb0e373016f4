package encoding

import (
	"strings"

	"clubmanager/internal/domain"
)

// EncodeDayFlag produces the title/description pair for a day-flag record.
// The description is the bare sentinel for the turn; the title carries the
// flag fields joined by '|' with trailing empty fields omitted, e.g.
// "PARTIDO|Boca Juniors|https://cdn/crest.png" or just "LIBRE".
func EncodeDayFlag(turn domain.Turn, flag domain.DayFlag) (title, description string) {
	description = dayFlagSentinel(turn)

	kind := flag.Kind
	if kind == "" {
		kind = domain.FlagNone
	}
	fields := []string{string(kind)}
	if flag.LogoURL != "" {
		fields = append(fields, flag.Rival, flag.LogoURL)
	} else if flag.Rival != "" {
		fields = append(fields, flag.Rival)
	}
	return strings.Join(fields, "|"), description
}

// DecodeDayFlag parses a day-flag record. ok is false when the description
// does not start with a day-flag sentinel; the record then plays some other
// role. An empty or unrecognized title decodes to a NONE flag, never an
// error.
func DecodeDayFlag(description, title string) (turn domain.Turn, flag domain.DayFlag, ok bool) {
	turn, ok = DayFlagTurn(description)
	if !ok {
		return "", domain.DayFlag{}, false
	}
	return turn, parseDayFlagTitle(title), true
}

// parseDayFlagTitle applies the KIND|rival|logoUrl grammar. Anything that
// is not a known kind collapses to NONE.
func parseDayFlagTitle(title string) domain.DayFlag {
	parts := strings.SplitN(title, "|", 3)
	switch domain.FlagKind(strings.TrimSpace(parts[0])) {
	case domain.FlagLibre:
		return domain.DayFlag{Kind: domain.FlagLibre}
	case domain.FlagPartido:
		flag := domain.DayFlag{Kind: domain.FlagPartido}
		if len(parts) > 1 {
			flag.Rival = parts[1]
		}
		if len(parts) > 2 {
			flag.LogoURL = parts[2]
		}
		return flag
	default:
		return domain.DayFlag{Kind: domain.FlagNone}
	}
}
