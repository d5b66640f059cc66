package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/paceboard/internal/testutil"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeFlags(t *testing.T) {
	app := testApp(t)
	var sf scopeFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	sf.register(fs, app)

	require.NoError(t, fs.Parse([]string{"-c", "802", "-u", "4"}))
	scope, err := sf.scope()
	require.NoError(t, err)
	assert.Equal(t, "2025-2026", scope.SchoolYear, "year defaults to the configured school year")
	assert.Equal(t, "802", scope.ClassSection)
	assert.Equal(t, 4, scope.UnitNumber)
}

func TestScopeFlags_Required(t *testing.T) {
	_, err := (&scopeFlags{unit: 3}).scope()
	assert.EqualError(t, err, "--class is required")

	_, err = (&scopeFlags{class: "802"}).scope()
	assert.EqualError(t, err, "--unit is required")
}

func TestDateFlag(t *testing.T) {
	fallback := testutil.Date(2026, time.March, 1)

	var d dateFlag
	assert.Equal(t, "", d.String())
	assert.Equal(t, fallback, d.or(fallback))

	require.NoError(t, d.Set("2026-01-15"))
	assert.Equal(t, "2026-01-15", d.String())
	assert.Equal(t, testutil.Date(2026, time.January, 15), d.or(fallback))
	assert.Equal(t, "date", d.Type())

	assert.Error(t, d.Set("15/01/2026"))
}
