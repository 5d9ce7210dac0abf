// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/body"
	"github.com/litescript/ls-orrery/internal/camera"
	"github.com/litescript/ls-orrery/internal/clock"
	"github.com/litescript/ls-orrery/internal/journey"
	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewOrrery ViewMode = iota
	ViewEphemeris
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time
)

// Options configures the root model.
type Options struct {
	FPS      int
	SkipAnim bool

	// Journey endpoints; empty values keep the defaults.
	From string
	To   string
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	clk *clock.System

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	animTick int
	frameDur time.Duration

	// Sub-models
	orrery    OrreryModel
	ephemeris EphemerisModel
}

// New creates a new root UI model.
func New(reg *body.Registry, clk *clock.System, journeys *journey.Manager, logger *logging.Logger, opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	camCfg := camera.DefaultConfig()
	camCfg.SkipAnimation = opts.SkipAnim

	return Model{
		clk:       clk,
		viewMode:  ViewOrrery,
		frameDur:  time.Second / time.Duration(fps),
		orrery:    NewOrreryModel(reg, clk, journeys, camCfg, logger.Named("orrery"), Route{From: opts.From, To: opts.To}),
		ephemeris: NewEphemerisModel(reg, clk),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		animTickCmd(m.frameDur),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "o":
			m.viewMode = ViewOrrery
		case "2", "e":
			m.viewMode = ViewEphemeris

		case "tab":
			m.viewMode = (m.viewMode + 1) % 2

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes ~7 lines, footer ~2 lines
		contentHeight := msg.Height - 10
		m.orrery = m.orrery.SetSize(msg.Width, contentHeight)
		m.ephemeris = m.ephemeris.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.ephemeris = m.ephemeris.Refresh()

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd(m.frameDur))
		m.animTick++
		m.orrery = m.orrery.Advance()

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewOrrery:
		m.orrery, cmd = m.orrery.Update(msg)
	case ViewEphemeris:
		m.ephemeris, cmd = m.ephemeris.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewOrrery:
		content = m.orrery.View()
	case ViewEphemeris:
		content = m.ephemeris.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	logo := []string{
		` ██╗     ███████╗      ██████╗ ██████╗ ██████╗ ███████╗██████╗ ██╗   ██╗`,
		` ██║     ██╔════╝     ██╔═══██╗██╔══██╗██╔══██╗██╔════╝██╔══██╗╚██╗ ██╔╝`,
		` ██║     ███████╗█████╗██║   ██║██████╔╝██████╔╝█████╗  ██████╔╝ ╚████╔╝ `,
		` ██║     ╚════██║╚════╝██║   ██║██╔══██╗██╔══██╗██╔══╝  ██╔══██╗  ╚██╔╝  `,
		` ███████╗███████║      ╚██████╔╝██║  ██║██║  ██║███████╗██║  ██║   ██║   `,
		` ╚══════╝╚══════╝       ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝   ╚═╝   `,
	}

	var b strings.Builder
	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(logoColor(col, row, len(runes), len(logo))))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf(" Solar System Orrery · v%s", version.Version)))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

// logoColor blends horizontally from deep blue to magenta with a
// vertical fade toward the bottom rows.
func logoColor(col, row, width, height int) string {
	x := float64(col) / float64(width)
	y := float64(row) / float64(height)

	r := 59 + x*(217-59)
	g := 130 + x*(70-130)
	b := 246

	fade := 1.0 - y*0.45
	ri, gi, bi := int(r*fade), int(g*fade), int(float64(b)*fade)
	return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Orrery", "[2] Ephemeris"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return " " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	offset := m.clk.Offset()
	var status string
	if offset == 0 {
		status = dimStyle.Render("time: live")
	} else {
		sign := ""
		if offset > 0 {
			sign = "+"
		}
		status = accentStyle.Render(fmt.Sprintf("time: %s%s from live", sign, offset.Round(time.Hour)))
	}

	var help string
	switch m.viewMode {
	case ViewEphemeris:
		help = dimStyle.Render("j/k: focus | v: visibility | </>: time travel")
	default:
		help = dimStyle.Render("arrows: pan | +/-: zoom | 0: zoom cycle | space: travel | g: target | </>: time travel")
	}

	return " " + status + "  " + dimStyle.Render("|") + "  " + help
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}
