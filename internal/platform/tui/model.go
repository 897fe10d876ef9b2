package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/takeoff-arcade/internal/config"
	"github.com/vovakirdan/takeoff-arcade/internal/core"
	"github.com/vovakirdan/takeoff-arcade/internal/takeoff"
)

// Options holds optional collaborators for a Model.
type Options struct {
	Assets  takeoff.AssetChecker // Decides image vs fallback; nil draws fallbacks only
	Logger  *log.Logger          // Receives state transitions at debug level
	OnEvent func(takeoff.Event)  // Called for every game event, e.g. to play sounds
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	game      *takeoff.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger
	onEvent   func(takeoff.Event)
	quitting  bool
}

// NewModel creates a new Bubble Tea model running a fresh game in the menu.
func NewModel(cfg config.Config, rt core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	game := takeoff.New(cfg, rt.Seed)
	game.SetAssets(opts.Assets)

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:      game,
		config:    rt,
		keyMapper: NewKeyMapper(),
		help:      h,
		logger:    opts.Logger,
		onEvent:   opts.OnEvent,
	}
	m.screen = core.NewScreen(m.gameArea())
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey applies one key press immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.dispatch(m.game.HandleAction(action))
	}
	return m, nil
}

// handleResize changes only the projection; the world keeps its size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(m.gameArea())
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.dispatch(m.game.Frame())
	return m, tickCmd(m.config.TickRate)
}

// dispatch logs events and forwards them to the event hook.
func (m Model) dispatch(events []takeoff.Event) {
	for _, ev := range events {
		if m.logger != nil {
			m.logger.Debug("game event",
				"event", ev.Kind,
				"mode", ev.Mode,
				"aircraft", ev.Aircraft,
				"hazard", ev.Hazard,
				"elapsed", ev.Elapsed,
				"score", ev.Score,
			)
		}
		if m.onEvent != nil {
			m.onEvent(ev)
		}
	}
}

// gameArea returns the screen size left after the help footer.
func (m Model) gameArea() (int, int) {
	w, h := m.config.ScreenW, m.config.ScreenH
	if h > 2 {
		h--
	}
	return core.Max(w, 1), core.Max(h, 1)
}

// showHelp reports whether there is room for the help footer.
func (m Model) showHelp() bool {
	return m.config.ScreenH > 2
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".takeoff", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.warn("could not create screenshot directory", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("takeoff_%s_%s.txt", m.game.Mode(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.warn("could not save screenshot", err)
		return
	}
	if m.logger != nil {
		m.logger.Info("screenshot saved", "path", path)
	}
}

func (m Model) warn(msg string, err error) {
	if m.logger != nil {
		m.logger.Warn(msg, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.showHelp() {
		out += "\n" + m.help.View(m.keyMapper.Keys())
	}
	return out
}

// Game returns the game driven by this model.
func (m Model) Game() *takeoff.Game {
	return m.game
}

// Run starts the Bubble Tea program in the alternate screen and blocks until the player quits.
func Run(cfg config.Config, rt core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rt, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
