package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/penguin-ski/internal/core"
	"github.com/vovakirdan/penguin-ski/internal/registry"
	"github.com/vovakirdan/penguin-ski/internal/storage"
)

// RunStore is the persistence the game screen needs: record a finished run
// and look up the best one for display.
type RunStore interface {
	SaveRun(r storage.RunResult) (runID string, newBest bool, err error)
	BestRun(level string) (*storage.RunEntry, error)
}

// runStore converts a possibly nil *storage.Store into a RunStore without
// producing a non-nil interface around a nil pointer.
func runStore(s *storage.Store) RunStore {
	if s == nil {
		return nil
	}
	return s
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithHold sets how long a key press counts as held.
func WithHold(d time.Duration) ModelOption {
	return func(m *Model) { m.held = NewHeldKeys(d) }
}

// WithLogger sets the logger for run persistence messages.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock overrides the time source used for key holds.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) { m.now = now }
}

// Model is the Bubble Tea model for one game screen.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      RunStore
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       *HeldKeys
	inputFrame core.InputFrame // Edge-triggered actions since the last tick
	gameState  core.GameState
	lastTick   time.Time
	now        func() time.Time
	logger     *log.Logger
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current game over has been saved
	lastRunID  string
}

// NewModel creates a game screen. store may be nil to play without persistence.
func NewModel(game registry.Game, store RunStore, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		held:       NewHeldKeys(120 * time.Millisecond),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.showBest()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The slope is scaled to the screen, so a resize never restarts the run
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
	case action.Held():
		m.held.Press(action, m.now())
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.Dt()
	if !m.lastTick.IsZero() && t.After(m.lastTick) {
		dt = t.Sub(m.lastTick).Seconds()
	}
	m.lastTick = t

	frame := m.inputFrame.Clone()
	m.held.Apply(&frame, m.now())

	wasOver := m.gameState.GameOver
	var result core.StepResult
	if ds, ok := m.game.(registry.DeltaStepper); ok {
		result = ds.StepDelta(frame, dt)
	} else {
		result = m.game.Step(frame)
	}
	m.gameState = result.State

	switch {
	case wasOver && !m.gameState.GameOver:
		// Restarted from the game over screen
		m.runSaved = false
		m.held.Release()
		m.showBest()
	case m.gameState.GameOver && !m.runSaved:
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Failures are logged and the game goes on.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	st := m.gameState
	runID, newBest, err := m.store.SaveRun(storage.RunResult{
		Level:    m.game.ID(),
		Score:    st.Score,
		Distance: st.Distance,
		Elapsed:  time.Duration(st.Elapsed * float64(time.Second)),
	})
	if err != nil {
		m.logger.Warn("could not save run", "level", m.game.ID(), "error", err)
		return
	}
	m.lastRunID = runID
	m.logger.Info("run saved",
		"level", m.game.ID(),
		"run", runID,
		"score", st.Score,
		"distance", int(st.Distance),
		"new_best", newBest,
	)
	if newBest {
		if b, ok := m.game.(registry.BestRunSetter); ok {
			b.SetBestRun(st.Score, st.Distance)
		}
	}
}

// showBest passes the stored best run to the game, if it displays one.
func (m *Model) showBest() {
	b, ok := m.game.(registry.BestRunSetter)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.BestRun(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load best run", "level", m.game.ID(), "error", err)
		return
	}
	if best != nil {
		b.SetBestRun(best.Score, best.Distance)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".penguinski", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a single game. It returns when the
// player quits or leaves the game over screen; backToMenu reports the latter.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (backToMenu bool, err error) {
	model := NewModel(game, runStore(store), cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
