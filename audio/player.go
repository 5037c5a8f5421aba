// Package audio plays short tones for selection changes through the system speaker
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gridsketch/engine"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/selection"
)

// CueKind names the sound played for a selection change
type CueKind int

const (
	CueNone CueKind = iota
	// CueAdded climbs a pentatonic scale with the cell's position in its set
	CueAdded
	CueRemoved
	// CueNewSet is the first cell of a freshly started set
	CueNewSet
)

// Cue is one sound request
type Cue struct {
	Kind CueKind
	Pos  int
}

// CueFor classifies a selection change
// set and pos locate the cell after the change, size is the length of its set
func CueFor(change selection.Change, set, pos, size int) Cue {
	switch change {
	case selection.Removed:
		return Cue{Kind: CueRemoved}
	case selection.Added, selection.Moved:
		if set > 0 && size == 1 {
			return Cue{Kind: CueNewSet}
		}
		return Cue{Kind: CueAdded, Pos: pos}
	}
	return Cue{}
}

// Sound builds the streamer for a cue, nil for CueNone
func Sound(c Cue, rate beep.SampleRate) (beep.Streamer, error) {
	var (
		s   beep.Streamer
		err error
	)
	switch c.Kind {
	case CueAdded:
		s, err = tone(rate, PositionPitch(c.Pos), parameter.AddedCueDuration)
	case CueRemoved:
		s, err = tone(rate, parameter.RemovedCueFreq, parameter.RemovedCueDuration)
	case CueNewSet:
		var low, high beep.Streamer
		if low, err = tone(rate, parameter.NewSetCueLow, parameter.NewSetCueNoteDuration); err != nil {
			return nil, err
		}
		if high, err = tone(rate, parameter.NewSetCueHigh, parameter.NewSetCueNoteDuration); err != nil {
			return nil, err
		}
		s = beep.Seq(low, high)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return newVolume(s, parameter.CueVolume), nil
}

// Player mixes cues into the speaker
// An uninitialized player is silent and every method is safe to call
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	lastCue     time.Time
	now         func() time.Time
}

// NewPlayer returns a silent player; call Init to open the speaker
func NewPlayer() *Player {
	return &Player{
		rate:  beep.SampleRate(parameter.AudioSampleRate),
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Init opens the speaker, a failure leaves the player silent
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a cue, dropping it when silent or when cues arrive too fast
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || c.Kind == CueNone {
		return
	}
	now := p.now()
	if now.Sub(p.lastCue) < parameter.MinCueGap {
		return
	}
	s, err := Sound(c, p.rate)
	if err != nil {
		log.Printf("audio cue: %v", err)
		return
	}
	p.lastCue = now

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Listener adapts the player to sketch selection events
func (p *Player) Listener(sel func() *selection.Model) engine.Listener {
	return func(change selection.Change, cell, set int) {
		pos, size := 0, 0
		if m := sel(); m != nil && set >= 0 {
			pos, _ = m.Position(cell)
			size = len(m.Set(set))
		}
		p.Play(CueFor(change, set, pos, size))
	}
}

// Close stops all cues and releases the speaker
func (p *Player) Close() {
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
