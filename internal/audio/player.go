// Package audio plays short synthesized sound cues for game events.
// All sounds are generated with beep streamers, so no sound files are shipped.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/takeoff-arcade/internal/takeoff"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.6
)

// Player mixes cues onto the system speaker. The zero value and a nil
// *Player are silent; every method is safe to call before or without Init.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer(logger *log.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a cue on the mixer.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	s := NewCue(c, sampleRate, p.volume)
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	// The mixer is read on the speaker goroutine.
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayEvent plays the cue for a game event.
func (p *Player) PlayEvent(ev takeoff.Event) {
	c := CueFor(ev.Kind)
	if c == CueNone {
		return
	}
	if p != nil && p.logger != nil {
		p.logger.Debug("sound cue", "cue", c, "event", ev.Kind)
	}
	p.Play(c)
}

// Close silences the mixer and releases the audio device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// CueFor maps a game event to its sound cue.
func CueFor(kind takeoff.EventKind) Cue {
	switch kind {
	case takeoff.EventSelectionChanged:
		return CueBlip
	case takeoff.EventGameStarted:
		return CueEngine
	case takeoff.EventTakeoffArmed:
		return CueRoar
	case takeoff.EventCrashed:
		return CueCrash
	case takeoff.EventTookOff:
		return CueChime
	default:
		return CueNone
	}
}
