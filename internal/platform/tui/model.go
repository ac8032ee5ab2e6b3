package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crates/internal/config"
	"github.com/vovakirdan/tui-crates/internal/core"
	"github.com/vovakirdan/tui-crates/internal/session"
)

// Options configures the play model.
type Options struct {
	Runtime  core.RuntimeConfig
	Glyphs   config.GlyphsConfig
	CellW    int
	ShowHelp bool
	Theme    Theme
}

// frame caches the last rendered view. It lives behind a pointer so the
// value-receiver model can refresh it.
type frame struct {
	out string
}

// Model is the Bubble Tea model for playing a session.
type Model struct {
	sess   *session.Session
	opts   Options
	keys   KeyMap
	help   help.Model
	screen *core.Screen
	input  *core.InputQueue
	layout Layout
	level  int // level the layout was computed for
	frame  *frame
	err    error
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(sess *session.Session, opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Runtime.ScreenW

	m := Model{
		sess:   sess,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		screen: core.NewScreen(opts.Runtime.ScreenW, screenRows(opts)),
		input:  &core.InputQueue{},
		level:  -1,
		frame:  &frame{},
	}
	m.relayout()
	m.redraw()
	return m
}

// screenRows is the height of the board buffer; the help footer is drawn
// below it.
func screenRows(opts Options) int {
	if opts.ShowHelp {
		return max(1, opts.Runtime.ScreenH-1)
	}
	return opts.Runtime.ScreenH
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the command for the next tick. Quit is applied at once
// so the program stops even when ticks are slow.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.redraw()
		return m, nil
	}

	cmd := m.keys.Command(msg)
	if cmd == core.CommandQuit {
		//nolint:errcheck // Quit never persists anything
		m.sess.Apply(cmd)
		return m, tea.Quit
	}
	m.input.Push(cmd)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, screenRows(m.opts))
	m.help.Width = msg.Width
	m.relayout()
	m.redraw()
	return m, nil
}

// handleTick drains queued commands, then advances the clock.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, cmd := range m.input.Drain() {
		if err := m.sess.Apply(cmd); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if m.sess.Quit() {
			return m, tea.Quit
		}
	}
	m.sess.Tick(now)

	if m.sess.Level() != m.level {
		m.relayout()
	}
	if m.sess.MustDraw() {
		m.redraw()
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// relayout recomputes the board placement from the viewport.
func (m *Model) relayout() {
	v := m.sess.View()
	m.level = m.sess.Level()
	if v.Grid == nil {
		m.layout = Layout{}
		return
	}
	m.layout = ComputeLayout(m.screen.Width(), m.screen.Height(), v.Grid.W, v.Grid.H, m.opts.CellW)
}

func (m *Model) redraw() {
	DrawFrame(m.screen, m.sess.View(), m.opts.Glyphs, m.layout)
	var b strings.Builder
	b.WriteString(RenderScreen(m.screen, m.opts.Theme))
	if m.opts.ShowHelp {
		b.WriteString("\n")
		b.WriteString(m.opts.Theme.Help.Render(m.help.View(m.keys)))
	}
	m.frame.out = b.String()
}

// View returns the last rendered frame.
func (m Model) View() string {
	if m.sess.Quit() {
		return ""
	}
	return m.frame.out
}

// Err returns the fatal error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for sess and blocks until it ends.
// The returned error is either a terminal failure or a fatal session error.
func Run(sess *session.Session, opts Options) error {
	model := NewModel(sess, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
