package pacing

import "github.com/alexanderramin/paceboard/internal/domain"

// DefaultMinZonePct keeps small zones visible in the zone bar.
const DefaultMinZonePct = 8.0

// ZoneColumn is one zone of the zone bar with the sections it spans.
type ZoneColumn struct {
	Zone        domain.PacingZone
	Sections    []domain.Section
	LessonCount int
}

// ZoneWidth is the rendered width of a zone column, in percent.
type ZoneWidth struct {
	Zone        domain.PacingZone
	Sections    []domain.Section
	LessonCount int
	RawPct      float64
	WidthPct    float64
}

// ZoneColumns groups a result's section summaries by zone, furthest behind
// first. Zones without sections are omitted.
func ZoneColumns(r Result) []ZoneColumn {
	byZone := make(map[domain.PacingZone]*ZoneColumn)
	for _, s := range r.Sections {
		if !s.HasZone {
			continue
		}
		col, ok := byZone[s.Zone]
		if !ok {
			col = &ZoneColumn{Zone: s.Zone}
			byZone[s.Zone] = col
		}
		col.Sections = append(col.Sections, s.Section)
		col.LessonCount += s.LessonCount
	}
	var out []ZoneColumn
	for _, z := range domain.AllZones {
		if col, ok := byZone[z]; ok {
			out = append(out, *col)
		}
	}
	return out
}

// BuildZoneLayout sizes each column by its share of the unit's lessons,
// floors every share at minPct, then renormalizes once so widths sum to 100.
// The single pass can leave a column slightly under minPct after
// renormalization; widths are not iterated to a fixed point.
// totalLessons <= 0 means "sum of the columns"; minPct <= 0 disables the floor.
func BuildZoneLayout(columns []ZoneColumn, totalLessons int, minPct float64) []ZoneWidth {
	if len(columns) == 0 {
		return nil
	}
	if totalLessons <= 0 {
		for _, c := range columns {
			totalLessons += c.LessonCount
		}
	}

	widths := make([]ZoneWidth, len(columns))
	var sum float64
	for i, c := range columns {
		raw := 100.0 / float64(len(columns))
		if totalLessons > 0 {
			raw = float64(c.LessonCount) / float64(totalLessons) * 100
		}
		floored := raw
		if floored < minPct {
			floored = minPct
		}
		widths[i] = ZoneWidth{
			Zone:        c.Zone,
			Sections:    c.Sections,
			LessonCount: c.LessonCount,
			RawPct:      raw,
			WidthPct:    floored,
		}
		sum += floored
	}
	if sum > 0 {
		for i := range widths {
			widths[i].WidthPct = widths[i].WidthPct / sum * 100
		}
	}
	return widths
}
