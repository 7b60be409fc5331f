// Package sliderview draws a slider on a terminal line and feeds it mouse
// input from bubbletea.
package sliderview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/originslider/internal/slider"
)

// Model is a bubbletea component drawing one slider on one terminal line.
// Copies share the underlying slider.
type Model struct {
	id      string
	slider  *slider.Slider
	zones   *zone.Manager
	pending *[]float64

	originX    int
	row        int
	dragging   bool
	showLabels bool
}

// New wraps s. The model takes over the slider's OnChange callback; hosts
// read the reported values with Changed after each Update or SetValue.
func New(id string, s *slider.Slider) Model {
	pending := new([]float64)
	s.OnChange(func(v float64) {
		*pending = append(*pending, v)
	})
	return Model{
		id:      id,
		slider:  s,
		pending: pending,
		row:     -1,
	}
}

// WithZones marks the rendered line with a bubblezone zone named after the
// model ID and uses it for hit-testing.
func (m Model) WithZones(z *zone.Manager) Model {
	m.zones = z
	return m
}

// WithLabels toggles the min/default/max row under the slider.
func (m Model) WithLabels(show bool) Model {
	m.showLabels = show
	return m
}

// ID returns the model identifier.
func (m Model) ID() string { return m.id }

// Slider returns the wrapped slider.
func (m Model) Slider() *slider.Slider { return m.slider }

// Dragging reports whether a drag gesture is in progress.
func (m Model) Dragging() bool { return m.dragging }

// Height returns the number of lines View produces.
func (m Model) Height() int {
	if m.showLabels {
		return 2
	}
	return 1
}

// SetWidth sets the container width in cells.
func (m *Model) SetWidth(width int) {
	m.slider.Resize(float64(width))
}

// SetOrigin sets the screen column of the container's left edge.
func (m *Model) SetOrigin(x int) {
	m.originX = x
}

// SetRow records the screen row of the slider line. It is only used for
// hit-testing when no zone manager is attached.
func (m *Model) SetRow(y int) {
	m.row = y
}

// SetValue is the host writing its bound value into the slider. A value the
// slider writes back is queued for Changed.
func (m *Model) SetValue(v float64) {
	m.slider.SetValue(v)
}

// Changed drains the values the slider reported since the last call, oldest
// first. Hosts call it in the same Update that fed the slider, so bindings
// see every drag position in order.
func (m Model) Changed() []float64 {
	values := *m.pending
	*m.pending = nil
	return values
}

// InBounds reports whether a mouse event lands on the slider line. With a
// zone manager attached it also refreshes the origin from the zone.
func (m *Model) InBounds(msg tea.MouseMsg) bool {
	if m.zones != nil {
		info := m.zones.Get(m.id)
		if info == nil || info.IsZero() || !info.InBounds(msg) {
			return false
		}
		m.originX = info.StartX
		return true
	}
	width := int(m.slider.ContainerWidth())
	return msg.Y == m.row && msg.X >= m.originX && msg.X < m.originX+width
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles the pointer stream. A left press starts a drag, motion while
// dragging moves the thumb, and any release ends the drag.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		return m, nil

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button != tea.MouseButtonLeft {
				return m, nil
			}
			m.dragging = true
			m.drag(msg.X)
		case tea.MouseActionMotion:
			if m.dragging {
				m.drag(msg.X)
			}
		case tea.MouseActionRelease:
			m.dragging = false
		}
	}
	return m, nil
}

// View renders the slider line and, when enabled, the labels row.
func (m Model) View() string {
	line := Render(m.slider.Layout())
	if m.zones != nil {
		line = m.zones.Mark(m.id, line)
	}
	if !m.showLabels {
		return line
	}
	r := m.slider.Range()
	labels := Labels(r.Min, m.slider.Default(), r.Max, int(m.slider.ContainerWidth()))
	return lipgloss.JoinVertical(lipgloss.Left, line, labels)
}

func (m Model) drag(x int) {
	trackOrigin := float64(m.originX) + slider.SidePadding
	m.slider.DragTo(float64(x), trackOrigin)
}
