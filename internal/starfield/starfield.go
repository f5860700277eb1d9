// Package starfield generates the decorative background stars.
package starfield

import (
	"fmt"
	"math/rand/v2"
)

// Star is one twinkling dot. Left and Top are percentages of the viewport,
// Delay is the animation delay in seconds.
type Star struct {
	Left    float64 `json:"left"`
	Top     float64 `json:"top"`
	Delay   float64 `json:"delay"`
	Opacity float64 `json:"opacity"`
}

// Options bounds the randomized attributes.
type Options struct {
	Count      int
	MaxDelay   float64
	MaxOpacity float64
}

// DefaultOptions mirrors the original page: 50 stars, up to 6s delay and
// 0.6 opacity.
func DefaultOptions() Options {
	return Options{Count: 50, MaxDelay: 6, MaxOpacity: 0.6}
}

// Generate returns opts.Count stars drawn from rnd. A nil rnd uses the
// global source.
func Generate(opts Options, rnd *rand.Rand) []Star {
	if opts.Count <= 0 {
		return nil
	}
	float := rand.Float64
	if rnd != nil {
		float = rnd.Float64
	}

	stars := make([]Star, opts.Count)
	for i := range stars {
		stars[i] = Star{
			Left:    float() * 100,
			Top:     float() * 100,
			Delay:   float() * opts.MaxDelay,
			Opacity: float() * opts.MaxOpacity,
		}
	}
	return stars
}

// Style renders the inline CSS of a star.
func (s Star) Style() string {
	return fmt.Sprintf("left:%.2f%%;top:%.2f%%;animation-delay:%.2fs;opacity:%.2f", s.Left, s.Top, s.Delay, s.Opacity)
}
