// Package ui provides the terminal observatory console using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pootle/pootlesastropi/internal/angle"
	"github.com/pootle/pootlesastropi/internal/astro"
	"github.com/pootle/pootlesastropi/internal/sidereal"
	"github.com/pootle/pootlesastropi/internal/version"
)

// Styles for the console
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	aboveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	belowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// TickMsg triggers the once-a-second clock refresh.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the observatory console: a fixed site, its clocks, and a
// tracked target's derived horizon position.
type Model struct {
	site   *astro.EarthLocation
	target *astro.RADec
	clock  *sidereal.Clock

	width, height int
	sexagesimal   bool
	lastErr       error
}

// New creates the console model. target may be nil; the target panel
// then shows a hint instead of a position.
func New(site *astro.EarthLocation, target *astro.RADec, clock *sidereal.Clock) Model {
	return Model{
		site:        site,
		target:      target,
		clock:       clock,
		sexagesimal: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "u":
			m.sexagesimal = !m.sexagesimal
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TickMsg:
		return m, tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pootles astropi console " + version.Version))
	b.WriteString("\n\n")

	b.WriteString(m.sitePanel())
	b.WriteString("\n")
	b.WriteString(m.clockPanel())
	b.WriteString("\n")
	b.WriteString(m.targetPanel())

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("u: toggle units  q: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) sitePanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("SITE"))
	b.WriteString("\n")
	b.WriteString(row("latitude", m.render(m.site.Lat)))
	b.WriteString(row("longitude", m.render(m.site.Lon)))
	return b.String()
}

func (m Model) clockPanel() string {
	now := m.clock.LocalTime()
	var b strings.Builder
	b.WriteString(headerStyle.Render("CLOCKS"))
	b.WriteString("\n")
	b.WriteString(row("local", now.Format("15:04:05")))
	b.WriteString(row("UTC", m.clock.UTC().Format("15:04:05")))
	b.WriteString(row("GMST", fmtHours(sidereal.Greenwich(now)/15)))
	b.WriteString(row("LST", fmtHours(m.clock.Hours())))
	return b.String()
}

func (m Model) targetPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("TARGET"))
	b.WriteString("\n")

	if m.target == nil {
		b.WriteString(labelStyle.Render("  no target (start with -ra/-dec)"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(row("RA", m.render(m.target.RA)))
	b.WriteString(row("DEC", m.render(m.target.Dec)))

	obs, err := astro.ObservedFromCelestial(m.target, m.site, m.clock.Degrees())
	if err != nil {
		b.WriteString(errorStyle.Render("  derive: " + err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(row("altitude", m.render(obs.Alt)))
	b.WriteString(row("azimuth", m.render(obs.Az)))

	if obs.Alt.Degrees() >= 0 {
		b.WriteString("  " + aboveStyle.Render("above horizon") + "\n")
	} else {
		b.WriteString("  " + belowStyle.Render("below horizon") + "\n")
	}
	return b.String()
}

func row(label, val string) string {
	return fmt.Sprintf("  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-10s", label)),
		valueStyle.Render(val))
}

// render formats a value in the current display mode, feeding the
// template from hours for the hour-based kinds and degrees otherwise.
func (m Model) render(v *angle.Value) string {
	src := byte('d')
	if k := v.Kind(); k == angle.RightAscension || k == angle.HourAngle {
		src = 'h'
	}
	mode := byte('s')
	if m.sexagesimal {
		mode = 'x'
	}
	s, err := v.Format(string([]byte{src, mode}) + ";")
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return s
}

func fmtHours(h float64) string {
	hh := int(h)
	mm := int(h*60) % 60
	ss := int(h*3600) % 60
	return fmt.Sprintf("%02d:%02d:%02d", hh, mm, ss)
}
