// Package pixel runs the game in an Ebitengine window, or a browser canvas
// when built for js/wasm, at the game's fixed world resolution.
package pixel

import (
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/takeoff-arcade/internal/config"
	"github.com/vovakirdan/takeoff-arcade/internal/core"
	"github.com/vovakirdan/takeoff-arcade/internal/takeoff"
)

// WindowTitle is the desktop window title.
const WindowTitle = "Haneda Takeoff"

// Options configures a Host.
type Options struct {
	Seed    int64
	Assets  fs.FS // Sprite source; nil draws fallback shapes only
	Logger  *log.Logger
	OnEvent func(takeoff.Event)
}

// Host adapts a takeoff.Game to ebiten.Game.
type Host struct {
	game    *takeoff.Game
	cfg     config.Config
	sprites *SpriteCache
	fonts   *Fonts
	logger  *log.Logger
	onEvent func(takeoff.Event)
}

// NewHost creates a host with a fresh game in the menu.
func NewHost(cfg config.Config, opts Options) (*Host, error) {
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}

	sprites := NewSpriteCache(opts.Assets, opts.Logger)
	game := takeoff.New(cfg, opts.Seed)
	game.SetAssets(sprites)

	return &Host{
		game:    game,
		cfg:     cfg,
		sprites: sprites,
		fonts:   fonts,
		logger:  opts.Logger,
		onEvent: opts.OnEvent,
	}, nil
}

// Update applies this tick's key presses, then advances one frame.
func (h *Host) Update() error {
	for _, a := range pressedActions() {
		h.dispatch(h.game.HandleAction(a))
	}
	h.dispatch(h.game.Frame())
	return nil
}

func (h *Host) dispatch(events []takeoff.Event) {
	for _, ev := range events {
		if h.logger != nil {
			h.logger.Debug("game event", "event", ev.Kind, "mode", ev.Mode, "score", ev.Score)
		}
		if h.onEvent != nil {
			h.onEvent(ev)
		}
	}
}

// Draw renders the current mode. Takeoff renders like Playing.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)
	switch h.game.Mode() {
	case takeoff.ModeMenu:
		h.drawMenu(screen)
	case takeoff.ModePlaying, takeoff.ModeTakeoff:
		h.drawPlaying(screen)
	case takeoff.ModeGameOver, takeoff.ModeSuccess:
		h.drawEnd(screen)
	}
}

// Layout keeps the world's logical size; Ebitengine scales it to the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.worldSize()
}

func (h *Host) worldSize() (int, int) {
	return int(h.cfg.World.Width), int(h.cfg.World.Height)
}

// Game returns the underlying game.
func (h *Host) Game() *takeoff.Game {
	return h.game
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, opts Options) error {
	host, err := NewHost(cfg, opts)
	if err != nil {
		return err
	}

	w, h := host.worldSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(core.DefaultConfig().TickRate)

	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("pixel: run: %w", err)
	}
	return nil
}
