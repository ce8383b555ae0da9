package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ferlinnnnn/flappy-Game/internal/config"
	"github.com/Ferlinnnnn/flappy-Game/internal/core"
	"github.com/Ferlinnnnn/flappy-Game/internal/game"
	"github.com/Ferlinnnnn/flappy-Game/internal/storage"
)

// Options configure a game session.
type Options struct {
	Config config.GameConfig
	Seed   int64           // 0 means time-based
	FPS    int             // UI tick rate; physics pacing stays inside the game
	Store  *storage.Store  // nil means scores are not persisted
	Audio  game.AudioSink  // nil means silent
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	game   *game.Game
	screen *core.Screen
	store  *storage.Store
	keys   KeyMap
	fps    int

	inputFrame core.InputFrame
	lastTick   time.Time
	hovered    core.Action
	scoreSaved bool
	quitting   bool
}

// NewModel creates the model for the given options.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}

	return Model{
		game:       game.New(opts.Config, opts.Seed, opts.Audio),
		screen:     core.NewScreen(opts.Config.Field.Width, opts.Config.Field.Height),
		store:      opts.Store,
		keys:       DefaultKeyMap(),
		fps:        opts.FPS,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey buffers key actions into the input frame for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKey(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse tracks hover over the buttons and maps clicks to actions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	buttons := m.game.Buttons()

	switch msg.Action {
	case tea.MouseActionMotion:
		m.hovered = game.HitTest(buttons, msg.X, msg.Y)

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			break
		}
		switch action := game.HitTest(buttons, msg.X, msg.Y); action {
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case core.ActionNone:
		default:
			m.inputFrame.Set(action)
		}
	}
	return m, nil
}

// handleTick advances the simulation by the wall time since the last
// tick and schedules the next one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := 0.0
	if !m.lastTick.IsZero() {
		elapsed = float64(now.Sub(m.lastTick).Microseconds()) / 1000.0
	}
	m.lastTick = now

	m.game.Tick(elapsed, m.inputFrame)
	m.inputFrame.Clear()

	// Persist the score once per finished run.
	if m.game.Mode() == game.ModeEnd {
		if !m.scoreSaved {
			if m.store != nil && m.game.Score() > 0 {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveScore(m.game.Score())
			}
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	return m, tickCmd(m.fps)
}

// View renders the playfield and the current screen's buttons.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	DrawButtons(m.screen, m.game.Buttons(), m.hovered)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
