package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/paceboard/internal/cli/formatter"
	"github.com/alexanderramin/paceboard/internal/contract"
	"github.com/alexanderramin/paceboard/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// boardTab selects what the scrollable body of the board shows.
type boardTab int

const (
	tabZones boardTab = iota
	tabSections
	tabStudents
)

var boardTabNames = []string{"Zones", "Sections", "Students"}

// boardLoadedMsg carries a finished classification.
type boardLoadedMsg struct {
	date time.Time
	resp *contract.PacingResponse
	err  error
}

type boardKeyMap struct {
	PrevDay key.Binding
	NextDay key.Binding
	Today   key.Binding
	Tab     key.Binding
	Zone    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		PrevDay: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "view")),
		Zone:    key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zone")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Today, k.Tab, k.Zone, k.Refresh, k.Quit}
}

// boardModel is the live zone board. It re-classifies the class whenever
// the evaluation date moves.
type boardModel struct {
	pacing PacingUseCase
	scope  contract.Scope
	minPct float64
	today  time.Time

	date    time.Time
	resp    *contract.PacingResponse
	err     error
	loading bool

	tab  boardTab
	zone domain.PacingZone

	keys   boardKeyMap
	vp     viewport.Model
	width  int
	height int
}

func newBoardModel(uc PacingUseCase, scope contract.Scope, today time.Time, minPct float64) boardModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return boardModel{
		pacing:  uc,
		scope:   scope,
		minPct:  minPct,
		today:   domain.DateOf(today),
		date:    domain.DateOf(today),
		loading: true,
		zone:    domain.ZoneOnTrack,
		keys:    defaultBoardKeyMap(),
		vp:      vp,
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.load()
}

func (m boardModel) load() tea.Cmd {
	uc, scope, date, minPct := m.pacing, m.scope, m.date, m.minPct
	return func() tea.Msg {
		req := contract.NewPacingRequest(scope.SchoolYear, scope.ClassSection, scope.UnitNumber)
		req.Now = &date
		req.MinZonePct = minPct
		resp, err := uc.Classify(context.Background(), req)
		return boardLoadedMsg{date: date, resp: resp, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeViewport()
		m.refreshBody()
		return m, nil

	case boardLoadedMsg:
		// A reply for a date the user already moved past is stale.
		if !msg.date.Equal(m.date) {
			return m, nil
		}
		m.loading = false
		m.resp, m.err = msg.resp, msg.err
		m.refreshBody()
		m.vp.GotoTop()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.PrevDay):
		return m.moveTo(m.date.AddDate(0, 0, -1))
	case key.Matches(msg, m.keys.NextDay):
		return m.moveTo(m.date.AddDate(0, 0, 1))
	case key.Matches(msg, m.keys.Today):
		return m.moveTo(m.today)
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.load()
	case key.Matches(msg, m.keys.Tab):
		m.tab = (m.tab + 1) % boardTab(len(boardTabNames))
		m.refreshBody()
		m.vp.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Zone):
		m.zone = (m.zone + 1) % domain.PacingZone(len(domain.AllZones))
		m.tab = tabStudents
		m.refreshBody()
		m.vp.GotoTop()
		return m, nil
	}

	if isOutputScrollKey(msg) {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m boardModel) moveTo(d time.Time) (tea.Model, tea.Cmd) {
	if d.Equal(m.date) {
		return m, nil
	}
	m.date = d
	m.loading = true
	return m, m.load()
}

// chromeHeight is the number of lines above and below the viewport.
const chromeHeight = 6

func (m *boardModel) resizeViewport() {
	m.vp.Width = m.width
	h := m.height - chromeHeight
	if h < 1 {
		h = 1
	}
	m.vp.Height = h
}

func (m *boardModel) refreshBody() {
	m.vp.SetContent(m.body())
}

func (m boardModel) body() string {
	switch {
	case m.err != nil:
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	case m.resp == nil:
		return formatter.Dim("Loading…") + "\n"
	case m.resp.Result.NoScheduleData:
		return formatter.StyleYellow.Render("No schedule data covers this date.") + "\n" +
			formatter.Dim("Move the date with ←/→ or set windows with `paceboard schedule set`.") + "\n" +
			formatter.Warnings(m.resp.Warnings)
	}

	r := m.resp.Result
	var b strings.Builder
	switch m.tab {
	case tabZones:
		b.WriteString(formatter.FormatZoneTable(r))
		if len(r.Completed) > 0 {
			b.WriteString("\n" + formatter.StyleGreen.Render("Finished the unit: ") + strings.Join(r.Completed, ", ") + "\n")
		}
	case tabSections:
		b.WriteString(formatter.FormatSectionSummaries(r.Sections))
	case tabStudents:
		b.WriteString(formatter.FormatZoneStudents(m.resp, m.zone))
	}
	b.WriteString(formatter.Warnings(m.resp.Warnings))
	return b.String()
}

func (m boardModel) View() string {
	var b strings.Builder

	title := formatter.StyleHeader.Render(strings.ToUpper(fmt.Sprintf("paceboard · %s", m.scope)))
	b.WriteString(title + "\n")

	status := formatter.HumanDate(m.date, m.today) + formatter.Dim(" "+m.date.Format(domain.DateLayout))
	if m.loading {
		status += formatter.Dim("  loading…")
	}
	if m.resp != nil && !m.resp.Result.NoScheduleData {
		r := m.resp.Result
		status += formatter.Dim("  expected ") + formatter.StyleGreen.Render(formatter.SectionName(r.Expected, r.ExpectedName))
		if tp := r.TimeProgress; tp != nil {
			status += "  " + formatter.RenderTimeBar(tp.ElapsedDays, tp.TotalDays, 10)
		}
	}
	b.WriteString(status + "\n")

	strip := ""
	if m.resp != nil && len(m.resp.Layout) > 0 {
		w := m.width
		if w <= 0 {
			w = 60
		}
		strip = formatter.RenderZoneStrip(m.resp.Layout, w)
	}
	b.WriteString(strip + "\n")

	b.WriteString(m.tabBar() + "\n")
	b.WriteString(m.vp.View() + "\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m boardModel) tabBar() string {
	parts := make([]string, len(boardTabNames))
	for i, name := range boardTabNames {
		if boardTab(i) == m.tab {
			parts[i] = formatter.StyleHeader.Render("[" + name + "]")
		} else {
			parts[i] = formatter.Dim(" " + name + " ")
		}
	}
	return strings.Join(parts, " ") + "  " + scrollIndicator(m.vp)
}

func (m boardModel) helpLine() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim(" · "))
}
