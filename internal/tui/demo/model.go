// Package demo is the interactive host program: it owns the bound values of
// a scene and keeps every slider on a binding in sync.
package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/originslider/internal/config"
	"github.com/alexisbeaulieu97/originslider/internal/logger"
	"github.com/alexisbeaulieu97/originslider/internal/tui/sliderview"
)

const (
	headerLines = 2

	// sheetMaxWidth caps the container of the sheet slider.
	sheetMaxWidth = 300
)

type entry struct {
	label   string
	binding string
	view    sliderview.Model
	log     *logger.Logger
	sheet   bool
}

// Model is the demo host.
type Model struct {
	title    string
	width    int
	entries  []entry
	bindings map[string]float64
	initial  map[string]float64
	active   int

	sheetOpen bool

	zones *zone.Manager
	keys  keyMap
	help  help.Model
	log   *logger.Logger

	termWidth  int
	termHeight int
	quitting   bool
}

// Option customises a Model.
type Option func(*Model)

// WithZones enables bubblezone hit-testing.
func WithZones(z *zone.Manager) Option {
	return func(m *Model) { m.zones = z }
}

// WithLogger sets the logger used for value changes.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) { m.log = log }
}

// New builds the demo for a validated scene. The first slider is also
// offered as a sheet, a second view on the same binding.
func New(scene *config.Scene, opts ...Option) (Model, error) {
	m := Model{
		title:     scene.Title,
		width:     scene.Width,
		bindings:  make(map[string]float64),
		initial:   make(map[string]float64),
		active:    -1,
		keys:      defaultKeyMap(),
		help:      help.New(),
		log:       logger.Discard(),
		termWidth: 80,
	}
	for _, opt := range opts {
		opt(&m)
	}

	for _, cfg := range scene.Sliders {
		e, err := m.newEntry(scene, cfg, cfg.ID)
		if err != nil {
			return Model{}, err
		}
		if _, ok := m.bindings[e.binding]; !ok {
			m.bindings[e.binding] = cfg.Value
			m.initial[e.binding] = cfg.Value
		}
		m.entries = append(m.entries, e)
	}

	if len(scene.Sliders) > 0 {
		cfg := scene.Sliders[0]
		e, err := m.newEntry(scene, cfg, "sheet:"+cfg.ID)
		if err != nil {
			return Model{}, err
		}
		e.sheet = true
		m.entries = append(m.entries, e)
	}

	m.relayout()
	m.log.WithFields(map[string]any{"sliders": len(scene.Sliders), "bindings": len(m.bindings)}).Info("demo ready")
	return m, nil
}

func (m *Model) newEntry(scene *config.Scene, cfg config.SliderConfig, id string) (entry, error) {
	s, err := cfg.Build(scene.ClampWriteBack)
	if err != nil {
		return entry{}, fmt.Errorf("build slider %s: %w", cfg.ID, err)
	}
	view := sliderview.New(id, s).WithLabels(scene.Labels)
	if m.zones != nil {
		view = view.WithZones(m.zones)
	}
	binding := cfg.BindName()
	return entry{
		label:   cfg.DisplayLabel(),
		binding: binding,
		view:    view,
		log:     m.log.ForSlider(id, binding),
	}, nil
}

// Binding returns the current host value of a binding.
func (m Model) Binding(name string) (float64, bool) {
	v, ok := m.bindings[name]
	return v, ok
}

// SheetOpen reports whether the sheet covers the scene.
func (m Model) SheetOpen() bool {
	return m.sheetOpen
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.sheetOpen && key.Matches(msg, m.keys.Close):
			m.toggleSheet()
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Sheet):
			m.toggleSheet()
		case key.Matches(msg, m.keys.Reset):
			m.reset()
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) toggleSheet() {
	m.sheetOpen = !m.sheetOpen
	m.active = -1
	m.keys.Close.SetEnabled(m.sheetOpen)
	m.log.WithFields(map[string]any{"open": m.sheetOpen}).Debug("sheet toggled")
}

// visible reports whether entry i is on screen: the sheet hides the scene.
func (m Model) visible(i int) bool {
	return m.entries[i].sheet == m.sheetOpen
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.active = -1
		for i := range m.entries {
			if m.visible(i) && m.entries[i].view.InBounds(msg) {
				m.active = i
				break
			}
		}
	}
	if m.active < 0 {
		return m, nil
	}

	var cmd tea.Cmd
	source := m.active
	m.entries[source].view, cmd = m.entries[source].view.Update(msg)
	for _, v := range m.entries[source].view.Changed() {
		m.propagate(source, v, "slider")
	}
	if msg.Action == tea.MouseActionRelease {
		m.active = -1
	}
	return m, cmd
}

// propagate stores a reported value in its binding and pushes it into every
// other slider on the same binding before the next event is handled. Values
// a sibling writes back are propagated in turn.
func (m *Model) propagate(source int, value float64, origin string) {
	binding := m.entries[source].binding
	m.bindings[binding] = value
	m.entries[source].log.Value(origin, value)

	for i := range m.entries {
		if i == source || m.entries[i].binding != binding {
			continue
		}
		view := &m.entries[i].view
		view.SetValue(m.bindings[binding])
		for _, v := range view.Changed() {
			if v != m.bindings[binding] {
				m.propagate(i, v, "write_back")
			}
		}
	}
}

// reset writes the initial scene values back into every binding, the way a
// host changes the bound value without any drag.
func (m *Model) reset() {
	for name, v := range m.initial {
		m.bindings[name] = v
	}
	for i := range m.entries {
		e := &m.entries[i]
		e.view.SetValue(m.bindings[e.binding])
		e.log.Value("reset", m.bindings[e.binding])
		for _, v := range e.view.Changed() {
			if v != m.bindings[e.binding] {
				m.propagate(i, v, "write_back")
			}
		}
	}
}

func (m *Model) containerWidth() int {
	if m.width > 0 {
		return m.width
	}
	return m.termWidth
}

// relayout assigns widths and screen rows; rows mirror the line structure
// produced by View.
func (m *Model) relayout() {
	width := m.containerWidth()
	row := headerLines
	for i := range m.entries {
		view := &m.entries[i].view
		view.SetOrigin(0)
		if m.entries[i].sheet {
			view.SetWidth(min(width, sheetMaxWidth))
			view.SetRow(headerLines + 1)
			continue
		}
		view.SetWidth(width)
		view.SetRow(row + 1)
		row += 1 + view.Height() + 1
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := m.title
	if m.sheetOpen {
		title += " · sheet"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		if !m.visible(i) {
			continue
		}
		style := labelStyle
		if i == m.active {
			style = activeLabelStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s: %.2f", e.label, m.bindings[e.binding])))
		b.WriteString("\n")
		b.WriteString(e.view.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))

	if m.zones != nil {
		return m.zones.Scan(b.String())
	}
	return b.String()
}
