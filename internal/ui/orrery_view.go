package ui

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/body"
	"github.com/litescript/ls-orrery/internal/camera"
	"github.com/litescript/ls-orrery/internal/clock"
	"github.com/litescript/ls-orrery/internal/geom"
	"github.com/litescript/ls-orrery/internal/journey"
	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/scene"
)

// Travel animation tuning. The move delay matches the camera's pre-roll
// and hold so the traveler launches when the camera settles.
const (
	travelAnimDuration = 4 * time.Second
	travelStep         = 25.0
	journeyLength      = 100.0
)

// panYawStep and panPitchStep are the gesture deltas for one arrow key
// press, in radians.
const (
	panYawStep   = 0.09
	panPitchStep = 0.05
	pinchStep    = 1.2
)

// LabelMode controls body label rendering.
type LabelMode int

const (
	LabelNone LabelMode = iota
	LabelTarget
	LabelAll
)

// travelTargets is the default destination cycle for the target key.
var travelTargets = []string{"Moon", "Mars", "Venus", "Jupiter"}

// Route selects the journey endpoints for the orrery view. Empty or
// unknown names fall back to the Earth departure and the default
// destination cycle.
type Route struct {
	From string
	To   string
}

// OrreryModel renders the camera's-eye view of the solar system.
type OrreryModel struct {
	width  int
	height int

	reg      *body.Registry
	clk      *clock.System
	cam      *camera.Controller
	journeys *journey.Manager
	tracker  *journey.Tracker
	log      *logging.Logger

	progress  journey.Progress
	animStart time.Time
	home      string
	targets   []string
	targetIdx int
	labelMode LabelMode

	rocketID string
	cluster  []string

	pose    camera.Pose
	simTime time.Time
}

// NewOrreryModel creates the orrery view over the shared registry and
// journey state.
func NewOrreryModel(reg *body.Registry, clk *clock.System, journeys *journey.Manager, camCfg camera.Config, log *logging.Logger, route Route) OrreryModel {
	cam := camera.New(camCfg)
	tracker := journey.NewTracker(reg, camera.PreRollDuration+camera.HoldDuration, travelAnimDuration)
	cam.SetCollisionResolver(tracker.CollisionResolver(clk.Now))

	m := OrreryModel{
		reg:       reg,
		clk:       clk,
		cam:       cam,
		journeys:  journeys,
		tracker:   tracker,
		log:       log,
		home:      "Earth",
		targets:   append([]string(nil), travelTargets...),
		labelMode: LabelTarget,
		rocketID:  "you",
		cluster:   []string{"you"},
		simTime:   clk.Now(),
	}
	m.applyRoute(route)
	return m
}

// applyRoute points the journey at the requested departure and
// destination bodies. A destination outside the default cycle is
// prepended so the target key still walks the presets afterwards.
func (m *OrreryModel) applyRoute(route Route) {
	if route.From != "" {
		if _, ok := m.reg.Get(route.From); ok {
			m.home = route.From
		} else {
			m.log.Warn("unknown departure body %q, staying on %s", route.From, m.home)
		}
	}
	if route.To == "" || route.To == m.home {
		return
	}
	if _, ok := m.reg.Get(route.To); !ok {
		m.log.Warn("unknown destination body %q, keeping default cycle", route.To)
		return
	}
	for i, name := range m.targets {
		if name == route.To {
			m.targetIdx = i
			return
		}
	}
	m.targets = append([]string{route.To}, m.targets...)
	m.targetIdx = 0
}

// SetSize updates the viewport size.
func (m OrreryModel) SetSize(width, height int) OrreryModel {
	m.width = width
	m.height = height
	return m
}

// Update handles input messages.
func (m OrreryModel) Update(msg tea.Msg) (OrreryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		// Orbit panning: each key press is one short pan gesture, so
		// releases leave a little inertia.
		case "up":
			m.pan(0, panPitchStep)
		case "down":
			m.pan(0, -panPitchStep)
		case "left":
			m.pan(-panYawStep, 0)
		case "right":
			m.pan(panYawStep, 0)

		case "+", "=":
			m.cam.BeginPinch()
			m.cam.UpdatePinch(pinchStep)
			m.cam.EndPinch()
		case "-":
			m.cam.BeginPinch()
			m.cam.UpdatePinch(1 / pinchStep)
			m.cam.EndPinch()
		case "0":
			m.cam.ResetZoom()

		case " ":
			m.advanceJourney()
		case "g":
			m.nextTarget()

		case "<", ",":
			m.clk.Advance(-30 * 24 * time.Hour)
		case ">", ".":
			m.clk.Advance(30 * 24 * time.Hour)

		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		}
	}
	return m, nil
}

func (m *OrreryModel) pan(dYaw, dPitch float64) {
	m.cam.BeginPan()
	m.cam.UpdatePan(dYaw, dPitch)
	m.cam.EndPan()
}

// advanceJourney moves the traveler one step toward the target,
// starting a new journey if none is active.
func (m *OrreryModel) advanceJourney() {
	now := m.clk.Now()
	if !m.progress.Active() || m.progress.Fraction() >= 1 {
		m.progress = journey.Progress{
			StartingLocation: m.home,
			Target:           m.targets[m.targetIdx],
			InitialDistance:  journeyLength,
		}
	} else {
		m.progress.PreviousDistanceTraveled = m.progress.DistanceTraveled
		m.progress.DistanceTraveled = math.Min(journeyLength, m.progress.DistanceTraveled+travelStep)
	}

	if m.journeys.Update(m.progress, now) {
		m.animStart = now
		m.cam.StartScripted(now, m.progress.PreviousFraction(), m.progress.Fraction(), travelAnimDuration)
		m.log.Debug("journey %s at %.0f%%", m.progress.TravelKey(), m.progress.Fraction()*100)
	}
}

// nextTarget abandons the current journey and points at the next
// destination.
func (m *OrreryModel) nextTarget() {
	m.targetIdx = (m.targetIdx + 1) % len(m.targets)
	m.progress = journey.Progress{}
}

// Advance runs one animation frame. Every animation reads the shared
// clock, so time travel moves tweens and orbital positions together.
func (m OrreryModel) Advance() OrreryModel {
	m.simTime = m.clk.Now()

	center := m.centerPoint()
	target := m.targetPoint()
	m.pose = m.cam.Tick(m.simTime, center, target)
	return m
}

// centerPoint is what the camera orbits: the traveler mid-journey,
// otherwise the departure body.
func (m OrreryModel) centerPoint() geom.Vec3 {
	if m.progress.Active() {
		frac := m.tracker.AnimatedFraction(m.progress, m.animStart, m.simTime)
		if pos, err := m.tracker.Position(m.rocketID, m.progress, m.cluster, frac, m.simTime); err == nil {
			return pos
		}
	}
	if pos, err := m.reg.PositionKm(m.home, m.simTime); err == nil {
		return scene.ToUnitsVec(pos)
	}
	return geom.Vec3{}
}

func (m OrreryModel) targetPoint() geom.Vec3 {
	name := m.targets[m.targetIdx]
	if m.progress.Active() {
		name = m.progress.Target
	}
	if pos, err := m.reg.PositionKm(name, m.simTime); err == nil {
		return scene.ToUnitsVec(pos)
	}
	return geom.Vec3{}
}

// View renders the orrery view.
func (m OrreryModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for orrery view"
	}

	canvas := m.buildCanvas()
	hud := m.renderHUD()
	return lipgloss.JoinVertical(lipgloss.Left, canvas, hud)
}

// drawn tracks one rendered glyph for depth sorting and labels.
type drawn struct {
	x, y     int
	depth    float64
	glyph    rune
	name     string
	isTarget bool
}

// buildCanvas projects every visible body and traveler through the
// camera pose onto the character grid.
func (m OrreryModel) buildCanvas() string {
	canvasH := m.height - 4
	if canvasH < 5 {
		canvasH = 5
	}
	canvasW := m.width

	grid := make([][]rune, canvasH)
	for y := range grid {
		grid[y] = make([]rune, canvasW)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	var items []drawn
	targetName := m.targets[m.targetIdx]
	if m.progress.Active() {
		targetName = m.progress.Target
	}

	for _, name := range m.reg.Names() {
		if !m.reg.Visible(name) {
			continue
		}
		b, ok := m.reg.Get(name)
		if !ok {
			continue
		}
		posKm, err := m.reg.PositionKm(name, m.simTime)
		if err != nil {
			continue
		}
		x, y, depth, visible := m.project(scene.ToUnitsVec(posKm), canvasW, canvasH)
		if !visible {
			continue
		}
		items = append(items, drawn{
			x: x, y: y, depth: depth,
			glyph:    bodyGlyph(b),
			name:     name,
			isTarget: name == targetName,
		})
	}

	// Travelers.
	if m.progress.Active() {
		frac := m.tracker.AnimatedFraction(m.progress, m.animStart, m.simTime)
		for _, id := range m.cluster {
			pos, err := m.tracker.Position(id, m.progress, m.cluster, frac, m.simTime)
			if err != nil {
				continue
			}
			x, y, depth, visible := m.project(pos, canvasW, canvasH)
			if !visible {
				continue
			}
			glyph := '△'
			if id == m.rocketID {
				glyph = '▲'
			}
			items = append(items, drawn{x: x, y: y, depth: depth, glyph: glyph, name: id})
		}
	}

	// Far bodies first so near ones overdraw them.
	sort.Slice(items, func(i, j int) bool { return items[i].depth > items[j].depth })
	for _, it := range items {
		grid[it.y][it.x] = it.glyph
	}

	m.renderLabels(grid, canvasW, canvasH, items)
	return renderGrid(grid)
}

// project maps a scene-space point through the camera pose to screen
// cells. Terminal cells are roughly twice as tall as wide, so vertical
// extent is halved.
func (m OrreryModel) project(p geom.Vec3, w, h int) (int, int, float64, bool) {
	forward := m.pose.LookAt.Sub(m.pose.Position).Normalized()
	if forward == (geom.Vec3{}) {
		return 0, 0, 0, false
	}
	right := forward.Cross(m.pose.Up).Normalized()
	up := right.Cross(forward)

	rel := p.Sub(m.pose.Position)
	depth := rel.Dot(forward)
	if depth < 0.05 {
		return 0, 0, 0, false
	}

	focal := float64(h)
	sx := w/2 + int(rel.Dot(right)/depth*focal)
	sy := h/2 - int(rel.Dot(up)/depth*focal*0.5)
	if sx < 0 || sx >= w || sy < 0 || sy >= h {
		return 0, 0, 0, false
	}
	return sx, sy, depth, true
}

func bodyGlyph(b *body.Body) rune {
	switch b.Kind {
	case body.KindStar:
		return '☉'
	case body.KindMoon:
		return '∘'
	default:
		if b.RadiusKm > 4*scene.EarthRadiusKm {
			return '○'
		}
		return '●'
	}
}

func (m OrreryModel) renderLabels(grid [][]rune, width, height int, items []drawn) {
	if m.labelMode == LabelNone {
		return
	}
	for _, it := range items {
		show := m.labelMode == LabelAll || (m.labelMode == LabelTarget && it.isTarget)
		if !show {
			continue
		}
		labelX := it.x + 2
		if it.y < 0 || it.y >= height || labelX >= width {
			continue
		}
		text := it.name
		if it.isTarget {
			text = "◄ " + it.name
		}
		for i, r := range text {
			x := labelX + i
			if x >= width {
				break
			}
			if grid[it.y][x] == ' ' {
				grid[it.y][x] = r
			}
		}
	}
}

func renderGrid(grid [][]rune) string {
	sunStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	planetStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	giantStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	moonStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	rocketStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("249"))

	var b strings.Builder
	for _, row := range grid {
		for _, ch := range row {
			switch ch {
			case ' ':
				b.WriteRune(ch)
			case '☉':
				b.WriteString(sunStyle.Render(string(ch)))
			case '●':
				b.WriteString(planetStyle.Render(string(ch)))
			case '○':
				b.WriteString(giantStyle.Render(string(ch)))
			case '∘':
				b.WriteString(moonStyle.Render(string(ch)))
			case '▲', '△':
				b.WriteString(rocketStyle.Render(string(ch)))
			default:
				b.WriteString(labelStyle.Render(string(ch)))
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func (m OrreryModel) renderHUD() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder

	target := m.targets[m.targetIdx]
	if m.progress.Active() {
		target = m.progress.Target
	}
	b.WriteString(headerStyle.Render("◆ " + target))
	b.WriteString("  ")
	if m.progress.Active() {
		b.WriteString(labelStyle.Render("journey: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.0f%%", m.progress.Fraction()*100)))
		if m.cam.ScriptActive() {
			b.WriteString(dimStyle.Render(fmt.Sprintf(" [%s]", m.cam.ScriptPhase(m.simTime))))
		}
	} else {
		b.WriteString(dimStyle.Render("press space to launch"))
	}
	b.WriteString("\n")

	yaw, pitch, radius := m.cam.State()
	b.WriteString(labelStyle.Render("camera: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("yaw %.0f° pitch %.0f° dist %.1f", yaw*180/math.Pi, pitch*180/math.Pi, radius)))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("date: "))
	b.WriteString(valueStyle.Render(m.simTime.UTC().Format("2006-01-02 15:04")))

	for _, e := range m.journeys.RecentEvents(2) {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%s %s %s→%s", e.Timestamp.Format("15:04:05"), e.Type, e.From, e.To)))
	}

	return b.String()
}
