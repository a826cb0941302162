package audio

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/event"
)

// ErrDisabled is returned by Open when audio is off in config
var ErrDisabled = errors.New("audio disabled")

// maxVoices caps concurrently mixed effects; extra requests are dropped
const maxVoices = 16

// Player mixes effect sounds into one output stream
// Without an open speaker it still mixes, so hosts and tests need no device
type Player struct {
	mu       sync.Mutex
	provider SoundProvider
	mixer    *beep.Mixer
	muted    bool
	output   bool
	log      *zap.Logger

	played  int
	dropped int
}

func NewPlayer(provider SoundProvider, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		provider: provider,
		mixer:    &beep.Mixer{},
		log:      log.Named("audio"),
	}
}

// Open initializes the speaker at rate and starts streaming the mixer into it
func (p *Player) Open(cfg Config, rate beep.SampleRate) error {
	if !cfg.Enabled {
		return ErrDisabled
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.output {
		return nil
	}
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.output = true
	p.log.Info("speaker opened", zap.Int("rate", int(rate)))
	return nil
}

// Close clears pending sounds and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.output {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
		speaker.Close()
		p.output = false
		return
	}
	p.mixer.Clear()
}

// SetMuted drops every sound requested while muted
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play queues the sound for key
func (p *Player) Play(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted {
		return
	}

	p.lockOutput()
	defer p.unlockOutput()
	if p.mixer.Len() >= maxVoices {
		p.dropped++
		return
	}
	p.mixer.Add(p.provider.Sound(key))
	p.played++
}

// HandleEvents plays one sound per distinct event type of a tick
func (p *Player) HandleEvents(events []event.GameEvent) {
	var seen [32]bool
	for _, ev := range events {
		if int(ev.Type) < len(seen) {
			if seen[ev.Type] {
				continue
			}
			seen[ev.Type] = true
		}
		p.Play(ev.Type.String())
	}
}

// Active is the number of sounds still mixing
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lockOutput()
	defer p.unlockOutput()
	return p.mixer.Len()
}

// Stats returns sounds started and dropped at the voice cap
func (p *Player) Stats() (played, dropped int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played, p.dropped
}

// Mix pulls n samples from the mixer; used when no speaker is open
func (p *Player) Mix(n int) [][2]float64 {
	buf := make([][2]float64, n)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lockOutput()
	defer p.unlockOutput()
	p.mixer.Stream(buf)
	return buf
}

func (p *Player) lockOutput() {
	if p.output {
		speaker.Lock()
	}
}

func (p *Player) unlockOutput() {
	if p.output {
		speaker.Unlock()
	}
}
