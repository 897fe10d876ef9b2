package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/takeoff-arcade/internal/takeoff"
)

// drain streams s to completion and returns the number of samples and the peak amplitude.
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v > peak {
					peak = v
				}
				if -v > peak {
					peak = -v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream did not finish within %d samples", limit)
	return total, peak
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(t, osc, rate.N(time.Second))
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, want %d", wave, n, rate.N(100*time.Millisecond))
		}
		if peak > 1.0 {
			t.Errorf("wave %d: peak %f out of range", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestSquareWaveValues(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)
	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1.0 && v != -1.0 {
			t.Errorf("sample %d = %f, want +-1", i, v)
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant 1.0 at phase 0
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	samples := make([][2]float64, 1000)
	n, _ := env.Stream(samples)
	if n != 1000 {
		t.Fatalf("streamed %d samples, want 1000", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", samples[0][0])
	}
	if samples[500][0] != 1 {
		t.Errorf("middle sample = %f, want 1", samples[500][0])
	}
	if samples[999][0] >= samples[950][0] {
		t.Errorf("release did not fade: %f >= %f", samples[999][0], samples[950][0])
	}
}

func TestCuesFinish(t *testing.T) {
	for _, c := range []Cue{CueBlip, CueEngine, CueRoar, CueCrash, CueChime} {
		t.Run(c.String(), func(t *testing.T) {
			s := NewCue(c, sampleRate, 1.0)
			if s == nil {
				t.Fatal("NewCue returned nil")
			}
			n, _ := drain(t, s, sampleRate.N(5*time.Second))
			if n == 0 {
				t.Error("cue produced no samples")
			}
		})
	}
	if NewCue(CueNone, sampleRate, 1.0) != nil {
		t.Error("CueNone should have no streamer")
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		kind takeoff.EventKind
		want Cue
	}{
		{takeoff.EventSelectionChanged, CueBlip},
		{takeoff.EventGameStarted, CueEngine},
		{takeoff.EventTakeoffArmed, CueRoar},
		{takeoff.EventTakeoffAborted, CueNone},
		{takeoff.EventCrashed, CueCrash},
		{takeoff.EventTookOff, CueChime},
		{takeoff.EventReturnedToMenu, CueNone},
	}
	for _, tt := range tests {
		if got := CueFor(tt.kind); got != tt.want {
			t.Errorf("CueFor(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestSilentPlayer(t *testing.T) {
	var nilPlayer *Player
	nilPlayer.PlayEvent(takeoff.Event{Kind: takeoff.EventCrashed})
	nilPlayer.Close()
	if nilPlayer.Enabled() {
		t.Error("nil player should be disabled")
	}

	p := NewPlayer(nil)
	p.PlayEvent(takeoff.Event{Kind: takeoff.EventTookOff})
	p.Close()
	if p.Enabled() {
		t.Error("uninitialized player should be disabled")
	}
}
