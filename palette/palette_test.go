package palette

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#ffffff", White, false},
		{"#000000", RGB{0, 0, 0}, false},
		{"#ff5f6d", RGB{255, 95, 109}, false},
		{"#fff", White, false},
		{"ffffff", RGB{}, true},
		{"#zzzzzz", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := RGB{10, 20, 30}
	b := RGB{200, 100, 50}
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(t=0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(t=1) = %v, want %v", got, b)
	}
	if got := Lerp(a, b, -3); got != a {
		t.Errorf("Lerp clamps below, got %v", got)
	}

	mid := Lerp(RGB{0, 0, 0}, RGB{200, 100, 50}, 0.5)
	if mid != (RGB{100, 50, 25}) {
		t.Errorf("Lerp midpoint = %v, want {100 50 25}", mid)
	}
}

func TestPaletteAt(t *testing.T) {
	p := Default()
	if len(p) != len(DefaultHex) {
		t.Fatalf("palette size %d, want %d", len(p), len(DefaultHex))
	}
	if p.At(0) != p.At(len(p)) {
		t.Error("At does not wrap at palette size")
	}
	if p.At(-1) != p.At(len(p)-1) {
		t.Error("At does not wrap negative indices")
	}

	var empty Palette
	if empty.At(3) != White {
		t.Error("empty palette should yield white")
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, h := range DefaultHex {
		c, err := ParseHex(h)
		if err != nil {
			t.Fatal(err)
		}
		if c.Hex() != h {
			t.Errorf("Hex() = %s, want %s", c.Hex(), h)
		}
	}
}
