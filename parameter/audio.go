package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100
	// AudioBufferDuration is the speaker buffer, trading latency for underruns
	AudioBufferDuration = 100 * time.Millisecond
)

// Selection cues
const (
	CueVolume = 0.35

	CueAttack  = 5 * time.Millisecond
	CueRelease = 60 * time.Millisecond

	// AddedCueDuration is the tone length for a cell joining a set
	AddedCueDuration = 120 * time.Millisecond
	// AddedCueBase is the pitch of the first cell in a set, later positions climb a pentatonic scale
	AddedCueBase = 440.0

	RemovedCueDuration = 150 * time.Millisecond
	RemovedCueFreq     = 196.0

	// NewSetCue plays two rising notes
	NewSetCueNoteDuration = 90 * time.Millisecond
	NewSetCueLow          = 523.25
	NewSetCueHigh         = 783.99

	// MinCueGap drops cues that arrive faster than this
	MinCueGap = 30 * time.Millisecond
)

// PentatonicSteps are semitone offsets of the major pentatonic scale within one octave
var PentatonicSteps = [5]int{0, 2, 4, 7, 9}
