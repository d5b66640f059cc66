package domain

import (
	"sort"
	"strings"
)

// Section is a named phase of a curriculum unit in its canonical spelling.
// Names that are not part of the canonical order are still representable;
// they are simply unranked.
type Section string

const (
	SectionRampUps        Section = "Ramp Ups"
	SectionA              Section = "A"
	SectionB              Section = "B"
	SectionC              Section = "C"
	SectionD              Section = "D"
	SectionE              Section = "E"
	SectionF              Section = "F"
	SectionUnitAssessment Section = "Unit Assessment"
)

var canonicalSections = []Section{
	SectionRampUps,
	SectionA,
	SectionB,
	SectionC,
	SectionD,
	SectionE,
	SectionF,
	SectionUnitAssessment,
}

// Unit schedules say "Ramp Up"/"Unit Test"; the scope-and-sequence catalog
// says "Ramp Ups"/"Unit Assessment".
var sectionSynonyms = map[string]Section{
	"Ramp Up":   SectionRampUps,
	"Unit Test": SectionUnitAssessment,
}

// CanonicalSections returns a copy of the fixed section order.
func CanonicalSections() []Section {
	out := make([]Section, len(canonicalSections))
	copy(out, canonicalSections)
	return out
}

// NormalizeSection maps an upstream section name to its canonical spelling.
// Unknown names pass through (trimmed) and stay unranked.
func NormalizeSection(name string) Section {
	name = strings.TrimSpace(name)
	if s, ok := sectionSynonyms[name]; ok {
		return s
	}
	return Section(name)
}

// Index returns the position of s in the canonical order, or -1 if unranked.
func (s Section) Index() int {
	for i, c := range canonicalSections {
		if c == s {
			return i
		}
	}
	return -1
}

// Ranked reports whether s is part of the canonical order.
func (s Section) Ranked() bool {
	return s.Index() >= 0
}

// Previous returns the canonical section before s.
func (s Section) Previous() (Section, bool) {
	idx := s.Index()
	if idx <= 0 {
		return "", false
	}
	return canonicalSections[idx-1], true
}

// Next returns the canonical section after s.
func (s Section) Next() (Section, bool) {
	idx := s.Index()
	if idx < 0 || idx >= len(canonicalSections)-1 {
		return "", false
	}
	return canonicalSections[idx+1], true
}

// DisplayName renders lettered sections as "Section A".
func (s Section) DisplayName() string {
	switch s {
	case SectionRampUps, SectionUnitAssessment, "":
		return string(s)
	}
	if s.Ranked() {
		return "Section " + string(s)
	}
	return string(s)
}

// Sequence is the ordered set of ranked sections that exist in one unit.
// Units routinely skip letters, so in-unit neighbours can differ from the
// canonical ones.
type Sequence struct {
	sections []Section
}

// NewSequence builds a Sequence from arbitrary section names. Unranked names
// and duplicates are dropped; the result is in canonical order.
func NewSequence(names ...Section) Sequence {
	seen := make(map[Section]bool, len(names))
	var sections []Section
	for _, n := range names {
		s := NormalizeSection(string(n))
		if !s.Ranked() || seen[s] {
			continue
		}
		seen[s] = true
		sections = append(sections, s)
	}
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Index() < sections[j].Index()
	})
	return Sequence{sections: sections}
}

// FullSequence is the Sequence containing every canonical section.
func FullSequence() Sequence {
	return Sequence{sections: CanonicalSections()}
}

func (q Sequence) Sections() []Section {
	out := make([]Section, len(q.sections))
	copy(out, q.sections)
	return out
}

func (q Sequence) Len() int { return len(q.sections) }

// IndexOf returns the in-unit position of s, or -1.
func (q Sequence) IndexOf(s Section) int {
	for i, c := range q.sections {
		if c == s {
			return i
		}
	}
	return -1
}

func (q Sequence) Contains(s Section) bool {
	return q.IndexOf(s) >= 0
}

// Previous returns the in-unit section before s.
func (q Sequence) Previous(s Section) (Section, bool) {
	idx := q.IndexOf(s)
	if idx <= 0 {
		return "", false
	}
	return q.sections[idx-1], true
}

// Next returns the in-unit section after s.
func (q Sequence) Next(s Section) (Section, bool) {
	idx := q.IndexOf(s)
	if idx < 0 || idx >= len(q.sections)-1 {
		return "", false
	}
	return q.sections[idx+1], true
}
