// Package audio synthesizes effect sounds for game events and mixes them to the speaker
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/event"
)

// SoundProvider resolves a sound key to a fresh, single-use streamer
// Missing keys return silence, never nil
type SoundProvider interface {
	Sound(key string) beep.Streamer
}

const missingSilence = 10 * time.Millisecond

// recipes are keyed by event type name
var recipes = map[string]recipe{
	event.EventShot.String(): {{
		{freq: 1400, sweep: -6000, wave: WaveSquare, duration: 60 * time.Millisecond, attack: 2 * time.Millisecond, release: 40 * time.Millisecond, gain: 0.25},
	}},
	event.EventHostileDestroyed.String(): {{
		{wave: WaveNoise, duration: 220 * time.Millisecond, attack: 2 * time.Millisecond, release: 180 * time.Millisecond, gain: 0.5},
		{freq: 90, sweep: -150, wave: WaveSine, duration: 220 * time.Millisecond, attack: 2 * time.Millisecond, release: 180 * time.Millisecond, gain: 0.6},
	}},
	event.EventObstacleDestroyed.String(): {{
		{wave: WaveNoise, duration: 160 * time.Millisecond, attack: 2 * time.Millisecond, release: 140 * time.Millisecond, gain: 0.4},
	}},
	event.EventPlayerHit.String(): {{
		{freq: 100, wave: WaveSaw, duration: 150 * time.Millisecond, attack: 5 * time.Millisecond, release: 60 * time.Millisecond, gain: 0.4},
	}},
	event.EventLifeLost.String(): {
		{{freq: 440, sweep: -800, wave: WaveSaw, duration: 300 * time.Millisecond, attack: 5 * time.Millisecond, release: 100 * time.Millisecond, gain: 0.4}},
		{{freq: 110, wave: WaveSaw, duration: 250 * time.Millisecond, attack: 5 * time.Millisecond, release: 200 * time.Millisecond, gain: 0.4}},
	},
	event.EventPickup.String(): {{
		{freq: 880, wave: WaveSine, duration: 180 * time.Millisecond, attack: 3 * time.Millisecond, release: 150 * time.Millisecond, gain: 0.5},
		{freq: 1760, wave: WaveSine, duration: 180 * time.Millisecond, attack: 3 * time.Millisecond, release: 90 * time.Millisecond, gain: 0.2},
	}},
	event.EventPickupRejected.String(): {{
		{freq: 120, wave: WaveSaw, duration: 100 * time.Millisecond, attack: 2 * time.Millisecond, release: 30 * time.Millisecond, gain: 0.3},
	}},
	event.EventDelivery.String(): {
		{{freq: 987.77, wave: WaveSquare, duration: 80 * time.Millisecond, attack: 2 * time.Millisecond, release: 20 * time.Millisecond, gain: 0.3}},
		{{freq: 1318.51, wave: WaveSquare, duration: 200 * time.Millisecond, attack: 2 * time.Millisecond, release: 150 * time.Millisecond, gain: 0.3}},
	},
	event.EventCargoExpired.String(): {{
		{freq: 600, sweep: -1200, wave: WaveSine, duration: 250 * time.Millisecond, attack: 5 * time.Millisecond, release: 200 * time.Millisecond, gain: 0.4},
	}},
	event.EventGrow.String(): {
		{{freq: 523.25, wave: WaveSine, duration: 90 * time.Millisecond, attack: 2 * time.Millisecond, release: 30 * time.Millisecond, gain: 0.4}},
		{{freq: 659.25, wave: WaveSine, duration: 90 * time.Millisecond, attack: 2 * time.Millisecond, release: 30 * time.Millisecond, gain: 0.4}},
		{{freq: 783.99, wave: WaveSine, duration: 160 * time.Millisecond, attack: 2 * time.Millisecond, release: 120 * time.Millisecond, gain: 0.4}},
	},
	event.EventPowerUpStart.String(): {{
		{freq: 300, sweep: 2400, wave: WaveSquare, duration: 300 * time.Millisecond, attack: 5 * time.Millisecond, release: 100 * time.Millisecond, gain: 0.25},
	}},
	event.EventPowerUpExpired.String(): {{
		{freq: 1000, sweep: -2400, wave: WaveSquare, duration: 300 * time.Millisecond, attack: 5 * time.Millisecond, release: 100 * time.Millisecond, gain: 0.2},
	}},
	event.EventBossStarted.String(): {
		{{freq: 55, wave: WaveSaw, duration: 400 * time.Millisecond, attack: 20 * time.Millisecond, release: 100 * time.Millisecond, gain: 0.5}},
		{{freq: 55, wave: WaveSaw, duration: 400 * time.Millisecond, attack: 20 * time.Millisecond, release: 300 * time.Millisecond, gain: 0.5}},
	},
	event.EventBossDefeated.String(): {{
		{wave: WaveNoise, duration: 700 * time.Millisecond, attack: 5 * time.Millisecond, release: 650 * time.Millisecond, gain: 0.6},
		{freq: 60, sweep: -60, wave: WaveSine, duration: 700 * time.Millisecond, attack: 5 * time.Millisecond, release: 650 * time.Millisecond, gain: 0.6},
	}},
	event.EventWaveRefresh.String(): {{
		{freq: 220, sweep: 440, wave: WaveSaw, duration: 350 * time.Millisecond, attack: 20 * time.Millisecond, release: 150 * time.Millisecond, gain: 0.25},
	}},
}

// Synth implements SoundProvider from the built-in recipes
type Synth struct {
	rate   beep.SampleRate
	volume float64
	log    *zap.Logger

	mu     sync.Mutex
	missed map[string]bool
}

func NewSynth(cfg Config, log *zap.Logger) *Synth {
	if log == nil {
		log = zap.NewNop()
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = DefaultConfig().SampleRate
	}
	return &Synth{
		rate:   beep.SampleRate(rate),
		volume: cfg.Volume,
		log:    log.Named("audio"),
		missed: make(map[string]bool),
	}
}

// SampleRate is the rate every produced streamer is generated at
func (s *Synth) SampleRate() beep.SampleRate { return s.rate }

// Has reports whether key has a recipe
func (s *Synth) Has(key string) bool {
	_, ok := recipes[key]
	return ok
}

func (s *Synth) Sound(key string) beep.Streamer {
	r, ok := recipes[key]
	if !ok {
		s.mu.Lock()
		if !s.missed[key] {
			s.missed[key] = true
			s.log.Debug("sound missing, using silence", zap.String("key", key))
		}
		s.mu.Unlock()
		return beep.Silence(s.rate.N(missingSilence))
	}
	return newVolume(r.streamer(s.rate), s.volume)
}
