package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/body"
	"github.com/litescript/ls-orrery/internal/clock"
	"github.com/litescript/ls-orrery/internal/orbit"
)

// EphemerisModel renders a table of live body positions.
type EphemerisModel struct {
	width  int
	height int

	reg      *body.Registry
	clk      clock.Clock
	focusIdx int
}

// NewEphemerisModel creates the ephemeris table view.
func NewEphemerisModel(reg *body.Registry, clk clock.Clock) EphemerisModel {
	return EphemerisModel{reg: reg, clk: clk}
}

// SetSize updates the viewport size.
func (m EphemerisModel) SetSize(width, height int) EphemerisModel {
	m.width = width
	m.height = height
	return m
}

// Refresh is a no-op hook for the periodic tick; positions are computed
// at render time.
func (m EphemerisModel) Refresh() EphemerisModel {
	return m
}

// Update handles input messages.
func (m EphemerisModel) Update(msg tea.Msg) (EphemerisModel, tea.Cmd) {
	names := m.reg.Names()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j":
			if m.focusIdx < len(names)-1 {
				m.focusIdx++
			}
		case "k":
			if m.focusIdx > 0 {
				m.focusIdx--
			}
		case "v":
			if m.focusIdx < len(names) {
				name := names[m.focusIdx]
				m.reg.SetVisible(name, !m.reg.Visible(name))
			}
		case "<", ",":
			if sys, ok := m.clk.(*clock.System); ok {
				sys.Advance(-30 * 24 * time.Hour)
			}
		case ">", ".":
			if sys, ok := m.clk.(*clock.System); ok {
				sys.Advance(30 * 24 * time.Hour)
			}
		}
	}
	return m, nil
}

// View renders the ephemeris table.
func (m EphemerisModel) View() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)

	t := m.clk.Now()

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf(" Ephemeris at %s", t.UTC().Format("2006-01-02 15:04:05 UTC"))))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("   %-10s %-7s %12s %12s %8s %s",
		"Body", "Kind", "Sun dist AU", "Ecl lon", "Radius", "Shown")))
	b.WriteString("\n")

	for i, name := range m.reg.Names() {
		bd, ok := m.reg.Get(name)
		if !ok {
			continue
		}
		pos, err := m.reg.PositionKm(name, t)
		if err != nil {
			continue
		}

		distAU := pos.Norm() / orbit.KmPerAU
		lon := math.Atan2(pos.Y, pos.X) * 180 / math.Pi
		if lon < 0 {
			lon += 360
		}
		shown := "yes"
		if !m.reg.Visible(name) {
			shown = "no"
		}

		line := fmt.Sprintf(" %-10s %-7s %12.4f %11.1f° %8.0f %s",
			name, bd.Kind, distAU, lon, bd.RadiusKm, shown)
		if i == m.focusIdx {
			b.WriteString(focusStyle.Render("▶" + line))
		} else {
			b.WriteString(rowStyle.Render(" " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
