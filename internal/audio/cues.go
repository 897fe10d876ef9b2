package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueNone   Cue = iota
	CueBlip       // Menu cursor moved
	CueEngine     // Engines spooling up for a new game
	CueRoar       // Takeoff attempt
	CueCrash      // Hit a hazard
	CueChime      // Takeoff succeeded
)

// Cue durations
const (
	blipDuration   = 40 * time.Millisecond
	engineDuration = 600 * time.Millisecond
	roarDuration   = 900 * time.Millisecond
	crashDuration  = 500 * time.Millisecond
	chimeNote      = 180 * time.Millisecond
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueBlip:
		return "blip"
	case CueEngine:
		return "engine"
	case CueRoar:
		return "roar"
	case CueCrash:
		return "crash"
	case CueChime:
		return "chime"
	default:
		return "none"
	}
}

// NewCue builds the streamer for c at the given sample rate and volume.
// Returns nil for CueNone.
func NewCue(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueBlip:
		s = blip(rate)
	case CueEngine:
		s = engine(rate)
	case CueRoar:
		s = roar(rate)
	case CueCrash:
		s = crash(rate)
	case CueChime:
		s = chime(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}

func blip(rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, 660)
	if err != nil {
		return NewOscillator(660, blipDuration, WaveSine, rate)
	}
	return beep.Take(rate.N(blipDuration), tone)
}

func engine(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(60, 140, engineDuration, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, engineDuration, 150*time.Millisecond, 200*time.Millisecond, rate), 0.4)
}

func roar(rate beep.SampleRate) beep.Streamer {
	body := NewSweep(120, 420, roarDuration, WaveSaw, rate)
	air := NewOscillator(0, roarDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(body, 0.5), newVolume(air, 0.25))
	return NewEnvelope(mixed, roarDuration, 100*time.Millisecond, 400*time.Millisecond, rate)
}

func crash(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, crashDuration, WaveNoise, rate)
	thud := NewSweep(110, 40, crashDuration, WaveSquare, rate)
	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(thud, 0.3))
	return NewEnvelope(mixed, crashDuration, 5*time.Millisecond, 450*time.Millisecond, rate)
}

func chime(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, chimeNote, WaveSine, rate)
		return NewEnvelope(osc, chimeNote, 5*time.Millisecond, 120*time.Millisecond, rate)
	}
	return beep.Seq(note(784), note(988), note(1319))
}
