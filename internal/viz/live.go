package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/columnsim/internal/ode"
)

type TickMsg time.Time

const tickInterval = 30 * time.Millisecond

// Live is a bubbletea model that sweeps down the column, integrating one
// grid increment per frame and redrawing the growing normalized profile.
type Live struct {
	sys        ode.System
	integrator ode.Integrator

	c0     float64
	zMax   float64
	dz     float64
	z      float64
	state  ode.State
	values []float64

	running bool
	done    bool
	err     error
}

func NewLive(sys ode.System, integrator ode.Integrator, c0, zMax float64, points int) (Live, error) {
	if points < 2 || zMax <= 0 {
		return Live{}, ode.ErrBadGrid
	}

	l := Live{
		sys:        sys,
		integrator: integrator,
		c0:         c0,
		zMax:       zMax,
		dz:         zMax / float64(points-1),
		running:    true,
	}
	l.reset()
	return l, nil
}

func (l *Live) reset() {
	l.z = 0
	l.state = ode.State{l.c0}
	l.values = []float64{1.0}
	l.done = false
	l.err = nil
}

func (l Live) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (l Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return l, tea.Quit
		case " ":
			l.running = !l.running
		case "r":
			l.reset()
			l.running = true
		}
		return l, nil

	case TickMsg:
		if l.running && !l.done {
			l.step()
		}
		return l, tick()
	}

	return l, nil
}

func (l *Live) step() {
	h := l.dz
	if l.z+h > l.zMax {
		h = l.zMax - l.z
	}

	next := l.integrator.Step(l.sys, l.state, l.z, h)
	if !next.IsValid() {
		l.err = ode.ErrInvalidState
		l.done = true
		return
	}

	l.state = next
	l.z += h

	norm := 0.0
	if l.c0 != 0 {
		norm = l.state[0] / l.c0
	}
	l.values = append(l.values, norm)

	if l.zMax-l.z < 1e-12 {
		l.done = true
	}
}

func (l Live) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("columnsim live"))
	sb.WriteString("\n")

	graph := asciigraph.Plot(l.values,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("%s (plotted as Cg/Cg0)", YLabel)),
	)
	sb.WriteString(graphStyle.Render(graph))
	sb.WriteString("\n")
	sb.WriteString(axisStyle.Render(axisLine(0, l.zMax)))
	sb.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"z", fmt.Sprintf("%.3f m", l.z)},
		{"Cg", fmt.Sprintf("%.6e mg/L", l.state[0])},
		{"Cg/Cg0", fmt.Sprintf("%.6f", l.values[len(l.values)-1])},
		{"removal", fmt.Sprintf("%.4f %%", (1-l.values[len(l.values)-1])*100)},
	}
	for _, r := range rows {
		sb.WriteString(labelStyle.Render(r.label))
		sb.WriteString(valueStyle.Render(r.value))
		sb.WriteString("\n")
	}

	switch {
	case l.err != nil:
		sb.WriteString(helpStyle.Render(fmt.Sprintf("error: %v", l.err)))
	case l.done:
		sb.WriteString(helpStyle.Render("outlet reached · r restart · q quit"))
	case !l.running:
		sb.WriteString(helpStyle.Render("paused · space resume · r reset · q quit"))
	default:
		sb.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	}
	sb.WriteString("\n")

	return sb.String()
}
