package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/termsort/logger"
)

const (
	sampleRate = beep.SampleRate(44100)

	// maxVoices caps overlapping tones; fast sorts outrun the tone length
	maxVoices = 4
)

// Player sonifies array accesses through the system speaker
// The speaker streams on its own goroutine, Tone only enqueues
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	started bool
	dropped int
}

// NewPlayer creates a player; volume is clamped to [0, 1]
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: max(0, min(1, volume)),
	}
}

// Start opens the audio device
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Tone plays a short blip pitched by value relative to maximum
func (p *Player) Tone(value, maximum int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	tone := NewTone(Frequency(value, maximum), p.volume, sampleRate)

	speaker.Lock()
	if p.mixer.Len() >= maxVoices {
		p.dropped++
		speaker.Unlock()
		return
	}
	p.mixer.Add(tone)
	speaker.Unlock()
}

// Close silences pending tones and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	logger.Logger.Debug().Int("dropped", p.dropped).Msg("audio closed")
	p.started = false
}
