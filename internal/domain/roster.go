package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var classIDPattern = regexp.MustCompile(`^[0-9A-Za-z-]{2,12}$`)

// Class is a class section (e.g. "802") at a school.
type Class struct {
	ID        string
	School    string
	ScopeTag  string
	CreatedAt time.Time
}

// ValidateID checks that the class section identifier is usable as a key.
func (c *Class) ValidateID() error {
	if c.ID == "" {
		return fmt.Errorf("class section is required (use --class flag)")
	}
	if !classIDPattern.MatchString(c.ID) {
		return fmt.Errorf("class section %q must be 2-12 letters, digits or dashes (e.g. 802)", c.ID)
	}
	return nil
}

type Student struct {
	ID        string
	ClassID   string
	Name      string
	CreatedAt time.Time
}

// DisplayName shortens a full name to first name plus last initial,
// e.g. "Maria J.". Single-word names are returned as-is.
func (s *Student) DisplayName() string {
	parts := strings.Fields(s.Name)
	switch len(parts) {
	case 0:
		return s.ID
	case 1:
		return parts[0]
	}
	last := []rune(parts[len(parts)-1])
	return fmt.Sprintf("%s %c.", parts[0], last[0])
}
