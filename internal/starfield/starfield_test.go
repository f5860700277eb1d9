package starfield

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestGenerateBounds(t *testing.T) {
	opts := DefaultOptions()
	stars := Generate(opts, rand.New(rand.NewPCG(1, 2)))

	if len(stars) != 50 {
		t.Fatalf("len = %d, want 50", len(stars))
	}
	for i, s := range stars {
		if s.Left < 0 || s.Left >= 100 || s.Top < 0 || s.Top >= 100 {
			t.Errorf("star %d position out of range: %+v", i, s)
		}
		if s.Delay < 0 || s.Delay >= opts.MaxDelay {
			t.Errorf("star %d delay out of range: %v", i, s.Delay)
		}
		if s.Opacity < 0 || s.Opacity >= opts.MaxOpacity {
			t.Errorf("star %d opacity out of range: %v", i, s.Opacity)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := Generate(DefaultOptions(), rand.New(rand.NewPCG(7, 7)))
	b := Generate(DefaultOptions(), rand.New(rand.NewPCG(7, 7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("star %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateZero(t *testing.T) {
	if stars := Generate(Options{Count: 0}, nil); stars != nil {
		t.Errorf("expected nil, got %d stars", len(stars))
	}
	if stars := Generate(Options{Count: -3}, nil); stars != nil {
		t.Errorf("expected nil for negative count, got %d stars", len(stars))
	}
}

func TestStyle(t *testing.T) {
	s := Star{Left: 12.5, Top: 50, Delay: 1.5, Opacity: 0.25}
	got := s.Style()
	for _, want := range []string{"left:12.50%", "top:50.00%", "animation-delay:1.50s", "opacity:0.25"} {
		if !strings.Contains(got, want) {
			t.Errorf("Style() = %q, missing %q", got, want)
		}
	}
}
