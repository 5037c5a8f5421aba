package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/gridsketch/watch"
)

func TestDefaultMatchesControlPanel(t *testing.T) {
	cfg := Default()
	if cfg.Columns != 40 || cfg.Rows != 24 {
		t.Errorf("grid = %dx%d, want 40x24", cfg.Columns, cfg.Rows)
	}
	if cfg.CellSizePercent != 3 {
		t.Errorf("cell size = %v, want 3", cfg.CellSizePercent)
	}
	if !cfg.ShowCircle {
		t.Error("circle should be shown by default")
	}
	if cfg.CrosshairOpacityMin != 0.3 || cfg.CrosshairOpacityMax != 1.0 {
		t.Errorf("crosshair opacity = %v..%v", cfg.CrosshairOpacityMin, cfg.CrosshairOpacityMax)
	}
	if cfg.CrosshairAnimationSpeed != 5.0 || cfg.CrosshairSpeedVariation != 0.3 {
		t.Errorf("crosshair speed = %v ±%v", cfg.CrosshairAnimationSpeed, cfg.CrosshairSpeedVariation)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}

	cfg, err = Load("")
	if err != nil || cfg != Default() {
		t.Errorf("empty path: cfg=%+v err=%v", cfg, err)
	}
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	data := "columns: 3\nrows: 2\ncircle_color: {r: 1, g: 2, b: 3}\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Columns != 3 || cfg.Rows != 2 {
		t.Errorf("grid = %dx%d, want 3x2", cfg.Columns, cfg.Rows)
	}
	if cfg.CircleColor != (Color{1, 2, 3}) {
		t.Errorf("circle color = %+v", cfg.CircleColor)
	}
	if cfg.CellSizePercent != 3 {
		t.Errorf("unset field lost its default: %v", cfg.CellSizePercent)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("columns: [not, a, number"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg != Default() {
		t.Error("parse failure should return defaults")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sketch.yaml")
	want := Default()
	want.Columns = 7
	want.ShowCircle = false

	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if err := Save("", want); !errors.Is(err, ErrNoPath) {
		t.Errorf("Save with empty path = %v, want ErrNoPath", err)
	}
}

func TestAdjustClampsToSliderBounds(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(*Config)
		check func(Config) bool
	}{
		{"Columns floor", StepColumns(-1000), func(c Config) bool { return c.Columns == 1 }},
		{"Columns ceiling", StepColumns(1000), func(c Config) bool { return c.Columns == 100 }},
		{"Rows step", StepRows(1), func(c Config) bool { return c.Rows == 25 }},
		{"Cell size ceiling", StepCellSize(100), func(c Config) bool { return c.CellSizePercent == 30 }},
		{"Cell size floor", StepCellSize(-100), func(c Config) bool { return c.CellSizePercent == 1 }},
		{"Speed floor", StepCrosshairSpeed(-10), func(c Config) bool { return c.CrosshairAnimationSpeed == 0 }},
		{"Circle toggle", ToggleCircle(), func(c Config) bool { return !c.ShowCircle }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(Default())
			got := s.Update(tt.fn)
			if !tt.check(got) {
				t.Errorf("unexpected result %+v", got)
			}
			if s.Load() != got {
				t.Error("store did not publish the update")
			}
		})
	}
}

func TestStoreConcurrentUpdates(t *testing.T) {
	s := NewStore(Default())
	s.Update(func(c *Config) { c.Columns = 0 })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(func(c *Config) { c.Columns++ })
		}()
	}
	wg.Wait()

	if got := s.Load().Columns; got != 50 {
		t.Errorf("columns = %d, want 50 (lost updates)", got)
	}
}

func TestWatchReloadsStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sketch.yaml")
	if err := Save(path, Default()); err != nil {
		t.Fatal(err)
	}

	store := NewStore(Default())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, store, watch.WithDebounce(20*time.Millisecond))
	}()

	// Give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	updated := Default()
	updated.Rows = 9
	if err := Save(path, updated); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for store.Load().Rows != 9 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if store.Load().Rows != 9 {
		t.Errorf("store not reloaded, rows = %d", store.Load().Rows)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("watch returned %v", err)
	}
}
