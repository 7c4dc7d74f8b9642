// Package viz renders the simulation as a live bubbletea program. The
// braille canvas draws the track and bead; the mouse grabs the bead
// and keys drive run/pause, reset, and parameter changes.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/slidesim/internal/sim"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
	historyCap   = 600
	barWidth     = 24

	// canvasStyle padding; mouse coordinates arrive in terminal cells
	// and must be shifted back into canvas space.
	padTop  = 1
	padLeft = 2
)

var (
	canvasStyle   = lipgloss.NewStyle().Padding(1, 2)
	statsStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(46)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	runningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	pausedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	draggingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	potentialBar  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	kineticBar    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	thermalBar    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model is the bubbletea model wrapping the simulation controller.
type Model struct {
	ctrl          *sim.Controller
	canvas        *Canvas
	view          sim.Viewport
	history       []float64
	lastFrame     time.Time
	frictionCoeff float64
	showHelp      bool
}

func NewModel(ctrl *sim.Controller) Model {
	canvas := NewCanvas(canvasWidth, canvasHeight)
	view := sim.Viewport{
		OriginX: float64(canvas.PixelWidth()) / 2,
		OriginY: float64(canvas.PixelHeight() - 8),
		Scale:   0.6,
	}
	ctrl.SetViewport(view)

	coeff := ctrl.Params().Friction
	if coeff == 0 {
		coeff = sim.DefaultFriction
	}

	return Model{
		ctrl:          ctrl,
		canvas:        canvas,
		view:          view,
		history:       make([]float64, 0, historyCap),
		lastFrame:     time.Now(),
		frictionCoeff: coeff,
	}
}

// Run starts the live view and blocks until the user quits.
func Run(ctrl *sim.Controller) error {
	p := tea.NewProgram(NewModel(ctrl), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.ctrl.ToggleRun()
		case "r":
			m.ctrl.Reset()
			m.history = m.history[:0]
		case "f":
			if m.ctrl.Params().Friction > 0 {
				m.ctrl.SetFriction(false, 0)
			} else {
				m.ctrl.SetFriction(true, m.frictionCoeff)
			}
		case "up", "k":
			m.adjustGravity(0.5)
		case "down", "j":
			m.adjustGravity(-0.5)
		case "right", "l":
			m.adjustFriction(0.05)
		case "left", "h":
			m.adjustFriction(-0.05)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		px, py := m.pointerPixels(msg.X, msg.Y)
		switch {
		case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			m.ctrl.Grab(px, py)
		case msg.Action == tea.MouseActionMotion:
			m.ctrl.DragTo(px)
		case msg.Action == tea.MouseActionRelease:
			m.ctrl.Release()
		}
	case TickMsg:
		now := time.Time(msg)
		elapsed := now.Sub(m.lastFrame).Seconds()
		m.lastFrame = now

		m.ctrl.AdvanceFrame(elapsed)

		m.history = append(m.history, m.ctrl.EnergyReport().Total)
		if len(m.history) > historyCap {
			m.history = m.history[1:]
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// pointerPixels converts terminal cell coordinates into canvas
// sub-pixel coordinates, centered on the cell.
func (m Model) pointerPixels(cellX, cellY int) (float64, float64) {
	return float64((cellX-padLeft)*2) + 1, float64((cellY-padTop)*4) + 2
}

func (m *Model) adjustGravity(delta float64) {
	g := m.ctrl.Params().Gravity + delta
	if g < 0 {
		g = 0
	}
	if g > 30 {
		g = 30
	}
	m.ctrl.SetGravity(g)
}

func (m *Model) adjustFriction(delta float64) {
	m.frictionCoeff += delta
	if m.frictionCoeff < 0.05 {
		m.frictionCoeff = 0.05
	}
	if m.ctrl.Params().Friction > 0 {
		m.ctrl.SetFriction(true, m.frictionCoeff)
	}
}

func (m Model) View() string {
	m.drawScene()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("SLIDESIM") + "\n")
	s.WriteString(m.statusLine() + "\n\n")

	state := m.ctrl.MassState()
	report := m.ctrl.EnergyReport()
	params := m.ctrl.Params()

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.ctrl.Time())) + "\n")
	s.WriteString(labelStyle.Render("Position") + valueStyle.Render(fmt.Sprintf("%.1f, %.1f", state.X, state.Y)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2f", state.V)) + "\n")
	s.WriteString(labelStyle.Render("Gravity") + valueStyle.Render(fmt.Sprintf("%.1f", params.Gravity)) + "\n")
	if params.Friction > 0 {
		s.WriteString(labelStyle.Render("Friction") + valueStyle.Render(fmt.Sprintf("%.2f", params.Friction)) + "\n")
	} else {
		s.WriteString(labelStyle.Render("Friction") + valueStyle.Render("off") + "\n")
	}

	s.WriteString("\nENERGY\n")
	pf, kf, tf := report.Fractions()
	s.WriteString(energyBarLine("Potential", report.Potential, pf, potentialBar))
	s.WriteString(energyBarLine("Kinetic", report.Kinetic, kf, kineticBar))
	s.WriteString(energyBarLine("Thermal", report.Thermal, tf, thermalBar))
	s.WriteString(labelStyle.Render("Total") + valueStyle.Render(fmt.Sprintf("%.2f", report.Total)) + "\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(32), asciigraph.Caption("total energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("\n──────────────────────\nSP:Run/Pause R:Reset Q:Quit\nF:Friction ↑↓:Gravity ←→:Drag coeff\nClick the bead to grab it  ?:Help"))
	statsView := statsStyle.Render(s.String())

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

func (m Model) statusLine() string {
	switch m.ctrl.Phase() {
	case sim.PhaseRunning:
		return runningStyle.Render("RUNNING")
	case sim.PhaseDragging:
		return draggingStyle.Render("DRAGGING")
	}
	return pausedStyle.Render("PAUSED")
}

func energyBarLine(name string, value, fraction float64, style lipgloss.Style) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * barWidth)
	bar := style.Render(strings.Repeat("█", filled)) + strings.Repeat("░", barWidth-filled)
	return labelStyle.Render(name) + bar + valueStyle.Render(fmt.Sprintf(" %6.2f", value)) + "\n"
}

// drawScene plots the track across the full canvas width and the bead
// at its current position.
func (m Model) drawScene() {
	m.canvas.Clear()
	tr := m.ctrl.Track()

	for px := 0; px < m.canvas.PixelWidth(); px++ {
		x := m.view.WorldX(float64(px))
		_, sy := m.view.ToScreen(x, tr.Height(x))
		m.canvas.Set(px, int(sy))
	}

	state := m.ctrl.MassState()
	sx, sy := m.view.ToScreen(state.X, state.Y)
	m.canvas.FillCircle(int(sx), int(sy)-2, 2)
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD & MOUSE            ║
╠══════════════════════════════════════╣
║  Space    - Run / pause              ║
║  R        - Reset                    ║
║  F        - Toggle friction          ║
║  Up/K     - Gravity +0.5             ║
║  Down/J   - Gravity -0.5             ║
║  Left/H   - Drag coefficient -0.05   ║
║  Right/L  - Drag coefficient +0.05   ║
║  Click    - Grab the bead, drag it   ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`
