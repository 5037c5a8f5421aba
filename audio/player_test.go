package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/selection"
)

const testRate = beep.SampleRate(parameter.AudioSampleRate)

func drain(t *testing.T, s beep.Streamer) (samples int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		samples += n
		if !ok {
			return samples, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name   string
		change selection.Change
		set    int
		pos    int
		size   int
		want   Cue
	}{
		{"First cell of first set", selection.Added, 0, 0, 1, Cue{Kind: CueAdded}},
		{"Third cell", selection.Added, 0, 2, 3, Cue{Kind: CueAdded, Pos: 2}},
		{"Started second set", selection.Added, 1, 0, 1, Cue{Kind: CueNewSet}},
		{"Moved into new set", selection.Moved, 2, 0, 1, Cue{Kind: CueNewSet}},
		{"Moved into longer set", selection.Moved, 1, 3, 4, Cue{Kind: CueAdded, Pos: 3}},
		{"Removed", selection.Removed, -1, 0, 0, Cue{Kind: CueRemoved}},
		{"None", selection.None, 0, 0, 0, Cue{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CueFor(tt.change, tt.set, tt.pos, tt.size); got != tt.want {
				t.Errorf("CueFor = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPositionPitch(t *testing.T) {
	if got := PositionPitch(0); got != parameter.AddedCueBase {
		t.Errorf("pos 0 = %v", got)
	}
	prev := 0.0
	for pos := 0; pos < 10; pos++ {
		f := PositionPitch(pos)
		if f <= prev {
			t.Fatalf("pitch not rising at %d: %v <= %v", pos, f, prev)
		}
		prev = f
	}
	if PositionPitch(10) != PositionPitch(0) {
		t.Error("pitch did not wrap after two octaves")
	}
	if math.Abs(PositionPitch(5)-2*parameter.AddedCueBase) > 1e-9 {
		t.Errorf("pos 5 = %v, want one octave up", PositionPitch(5))
	}
}

func TestSoundLengths(t *testing.T) {
	tests := []struct {
		name string
		cue  Cue
		want int
	}{
		{"Added", Cue{Kind: CueAdded, Pos: 1}, testRate.N(parameter.AddedCueDuration)},
		{"Removed", Cue{Kind: CueRemoved}, testRate.N(parameter.RemovedCueDuration)},
		{"New set", Cue{Kind: CueNewSet}, 2 * testRate.N(parameter.NewSetCueNoteDuration)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Sound(tt.cue, testRate)
			if err != nil {
				t.Fatal(err)
			}
			n, peak := drain(t, s)
			if n != tt.want {
				t.Errorf("samples = %d, want %d", n, tt.want)
			}
			if peak == 0 || peak > parameter.CueVolume+1e-9 {
				t.Errorf("peak = %v, want in (0, %v]", peak, parameter.CueVolume)
			}
		})
	}

	if s, err := Sound(Cue{}, testRate); s != nil || err != nil {
		t.Errorf("CueNone = %v, %v", s, err)
	}
}

func TestEnvelopeFadesEnds(t *testing.T) {
	s, err := tone(testRate, 440, parameter.AddedCueDuration)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([][2]float64, testRate.N(parameter.AddedCueDuration))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d of %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample %v, want silent attack start", buf[0][0])
	}
	if last := math.Abs(buf[n-1][0]); last > 0.05 {
		t.Errorf("last sample %v, want faded", last)
	}
}

func TestSilentPlayerIsSafe(t *testing.T) {
	p := NewPlayer()
	if p.Enabled() {
		t.Fatal("new player enabled before Init")
	}
	sel := selection.New(4)
	listener := p.Listener(func() *selection.Model { return sel })

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("silent player panicked: %v", r)
		}
	}()
	listener(sel.Toggle(1), 1, 0)
	listener(selection.Removed, 1, -1)
	p.Play(Cue{Kind: CueNewSet})
	p.Close()
}
