// Package display runs the interactive terminal view. A plot is rendered
// once up front, then the program blocks until the user closes the view;
// keys re-render with a different transform in place.
package display

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatjam/direct-rf/internal/array"
	"github.com/tatjam/direct-rf/internal/render"
	"github.com/tatjam/direct-rf/internal/transform"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type viewKind int

const (
	seriesView viewKind = iota
	heatmapView
)

// Model is the bubbletea model for both plot kinds.
type Model struct {
	kind viewKind

	// series inputs
	series  []*array.Array
	labels  []string
	braille bool

	// heatmap input
	matrix  *array.Array
	scale   transform.Scale
	palette int

	shift   bool
	opts    render.Options
	title   string
	content string
	errMsg  string
}

// NewSeries builds an interactive overlaid line-series view.
func NewSeries(series []*array.Array, labels []string, shift bool, braille bool, opts render.Options) (Model, error) {
	for i, s := range series {
		if s.Len() == 0 {
			return Model{}, fmt.Errorf("%w: series %q is empty", array.ErrShape, labels[i])
		}
	}
	m := Model{
		kind:    seriesView,
		series:  series,
		labels:  labels,
		braille: braille,
		shift:   shift,
		opts:    opts,
		title:   strings.Join(labels, "  "),
	}
	if err := m.render(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// NewHeatmap builds an interactive heatmap view.
func NewHeatmap(a *array.Array, label string, shift bool, scale transform.Scale, opts render.Options) (Model, error) {
	m := Model{
		kind:   heatmapView,
		matrix: a,
		scale:  scale,
		shift:  shift,
		opts:   opts,
		title:  label,
	}
	for i, p := range render.Palettes {
		if p.Name == opts.Palette.Name {
			m.palette = i
		}
	}
	if err := m.render(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Run blocks until the user closes the view.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key input; every toggle re-renders from the raw arrays.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "f":
			m.shift = !m.shift
			if !m.rerender() {
				m.shift = !m.shift
			}
		case "b":
			if m.kind == seriesView {
				m.braille = !m.braille
				m.rerender()
			}
		case "s":
			if m.kind == heatmapView {
				prev := m.scale
				m.scale = nextScale(m.scale)
				if !m.rerender() {
					m.scale = prev
				}
			}
		case "t":
			if m.kind == heatmapView {
				m.palette = (m.palette + 1) % len(render.Palettes)
				m.opts.Palette = render.Palettes[m.palette]
				m.rerender()
			}
		}
	case tea.WindowSizeMsg:
		if msg.Width > 20 {
			m.opts.Width = msg.Width - 12
		}
		if msg.Height > 12 {
			m.opts.Height = msg.Height - 8
		}
		m.rerender()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.title) + "\n")
	b.WriteString(statusStyle.Render(m.statusLine()) + "\n\n")
	b.WriteString(m.content)
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	b.WriteString(helpStyle.Render("\n" + m.helpLine()))
	return b.String()
}

func (m Model) statusLine() string {
	shift := "off"
	if m.shift {
		shift = "on"
	}
	if m.kind == heatmapView {
		return fmt.Sprintf("shift: %s  scale: %s  palette: %s", shift, m.scale, m.opts.Palette.Name)
	}
	style := "line"
	if m.braille {
		style = "braille"
	}
	return fmt.Sprintf("shift: %s  style: %s  series: %d", shift, style, len(m.series))
}

func (m Model) helpLine() string {
	if m.kind == heatmapView {
		return "F:Shift S:Scale T:Palette Q:Quit"
	}
	return "F:Shift B:Braille Q:Quit"
}

// rerender swaps in a new plot. On failure the previous plot survives and
// the caller must roll back whatever mode change it attempted, so the
// status line keeps describing what is actually on screen.
func (m *Model) rerender() bool {
	m.errMsg = ""
	if err := m.render(); err != nil {
		m.errMsg = err.Error()
		return false
	}
	return true
}

func (m *Model) render() error {
	switch m.kind {
	case heatmapView:
		a := m.matrix
		if m.shift {
			shifted, err := transform.FFTShift(a, 0)
			if err != nil {
				return err
			}
			a = shifted
		}
		scaled, err := transform.LogMagnitude(a, m.scale)
		if err != nil {
			return err
		}
		out, err := render.Heatmap(scaled, m.opts)
		if err != nil {
			return err
		}
		m.content = out
	default:
		// Zero files still open a view, the way an empty figure opens.
		if len(m.series) == 0 {
			m.content = render.BrailleSeries(nil, m.opts)
			return nil
		}
		data := make([][]float64, len(m.series))
		for i, s := range m.series {
			a := s
			if m.shift {
				shifted, err := transform.FFTShift(a, 0)
				if err != nil {
					return err
				}
				a = shifted
			}
			data[i] = a.Data
		}
		if m.braille {
			m.content = render.BrailleSeries(data, m.opts)
		} else {
			m.content = render.Series(data, m.labels, m.opts)
		}
	}
	return nil
}

func nextScale(s transform.Scale) transform.Scale {
	switch s {
	case transform.ScaleNone:
		return transform.ScaleDB
	case transform.ScaleDB:
		return transform.ScaleLog10
	default:
		return transform.ScaleNone
	}
}
