package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/spf13/pflag"
)

// scopeFlags are the --year/--class/--unit flags shared by every command
// that reads one class section's unit.
type scopeFlags struct {
	schoolYear string
	class      string
	unit       int
}

func (f *scopeFlags) register(fs *pflag.FlagSet, app *App) {
	fs.StringVar(&f.schoolYear, "year", app.Config.SchoolYear, "School year, e.g. 2025-2026")
	fs.StringVarP(&f.class, "class", "c", "", "Class section, e.g. 802")
	fs.IntVarP(&f.unit, "unit", "u", 0, "Unit number")
}

// scope validates the flags enough to build a request; the services do the
// rest.
func (f *scopeFlags) scope() (contract.Scope, error) {
	if f.class == "" {
		return contract.Scope{}, fmt.Errorf("--class is required")
	}
	if f.unit == 0 {
		return contract.Scope{}, fmt.Errorf("--unit is required")
	}
	return contract.Scope{SchoolYear: f.schoolYear, ClassSection: f.class, UnitNumber: f.unit}, nil
}

// dateFlag is an optional YYYY-MM-DD flag value.
type dateFlag struct {
	t   time.Time
	set bool
}

var _ pflag.Value = (*dateFlag)(nil)

func (d *dateFlag) String() string {
	if !d.set {
		return ""
	}
	return d.t.Format(domain.DateLayout)
}

func (d *dateFlag) Set(s string) error {
	t, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	d.t, d.set = t, true
	return nil
}

func (d *dateFlag) Type() string { return "date" }

// or returns the flag's date, or fallback when the flag was not given.
func (d *dateFlag) or(fallback time.Time) time.Time {
	if d.set {
		return d.t
	}
	return fallback
}
