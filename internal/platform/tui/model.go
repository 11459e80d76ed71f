package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okhmat/birb/internal/game"
	"github.com/okhmat/birb/internal/storage"
)

// Model is the Bubble Tea model running a game session. It translates the
// terminal's message stream into core events, applies them in arrival order,
// and draws the resulting snapshots.
type Model struct {
	session  *game.Session
	state    game.State
	screen   *Screen
	keys     KeyMap
	store    *storage.Store
	saved    bool // run already persisted for the current terminal state
	quitting bool
}

// NewModel creates a model for the given session. store may be nil, in which
// case finished runs are not persisted.
func NewModel(session *game.Session, store *storage.Store, screenW, screenH int) Model {
	return Model{
		session: session,
		state:   session.State(),
		screen:  NewScreen(screenW, screenH),
		keys:    DefaultKeyMap(),
		store:   store,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.state.Config.TickMS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps keyboard input to core events and applies them immediately,
// preserving arrival order relative to ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}

	ev, ok := m.keys.Event(msg)
	if !ok {
		return m, nil
	}

	wasTerminal := m.state.Terminal()
	m.state = m.session.Apply(ev)

	// A restart on a finished run needs the tick loop started again; the
	// terminal tick cancelled it.
	if ev == game.EventRestart {
		m.saved = false
		if wasTerminal {
			return m, tickCmd(m.state.Config.TickMS)
		}
	}
	return m, nil
}

// handleTick advances the simulation one tick. The tick subscription stops
// at a terminal state and resumes on restart.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.state = m.session.Apply(game.EventTick)

	if m.state.Terminal() {
		m.saveRun()
		return m, nil
	}
	return m, tickCmd(m.state.Config.TickMS)
}

// saveRun persists the finished run once. Best effort: the game continues
// whether or not the write succeeds.
func (m *Model) saveRun() {
	if m.store == nil || m.saved {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.RunEntry{
		Score:      m.state.Score,
		LivesLeft:  m.state.Lives,
		Won:        m.state.Won,
		DurationMS: int64(m.state.ElapsedMS),
	})
	m.saved = true
}

// View renders the current snapshot to a styled string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	Draw(m.state, m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given session.
func Run(session *game.Session, store *storage.Store, screenW, screenH int) error {
	model := NewModel(session, store, screenW, screenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
