package todo

import (
	"fmt"
	"math/rand"
	"time"
)

// Rand is a source of uniform draws in [0, 1). *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// globalRand draws from the math/rand package source.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Weights are the base selection probabilities for the priorities that are
// not always shown.
type Weights struct {
	Normal float64 `toml:"normal"`
	Low    float64 `toml:"low"`
	Note   float64 `toml:"note"`
}

// DefaultWeights returns the stock base probabilities.
func DefaultWeights() Weights {
	return Weights{
		Normal: 1.0 / 3.0,
		Low:    1.0 / 5.0,
		Note:   1.0 / 8.0,
	}
}

// Validate checks that every weight is in (0, 1].
func (w Weights) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"normal", w.Normal},
		{"low", w.Low},
		{"note", w.Note},
	}
	for _, c := range checks {
		if c.value <= 0 || c.value > 1 {
			return fmt.Errorf("selection weight %s must be in (0, 1], got %g", c.name, c.value)
		}
	}
	return nil
}

// Selector decides which tasks the selective listing shows. A nil Rand draws
// from math/rand and a nil Now reads the wall clock.
type Selector struct {
	Weights Weights
	Rand    Rand
	Now     func() time.Time
}

// NewSelector returns a selector with the given weights, a time-seeded random
// source, and the wall clock.
func NewSelector(w Weights) *Selector {
	return &Selector{
		Weights: w,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:     time.Now,
	}
}

func (s *Selector) source() Rand {
	if s.Rand == nil {
		return globalRand{}
	}
	return s.Rand
}

func (s *Selector) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Probability returns the chance that Choose selects t right now.
func (s *Selector) Probability(t Task) float64 {
	var base float64
	switch t.EffectivePriority() {
	case Urgent, High:
		return 1.0
	case Normal:
		base = s.Weights.Normal
	case Low:
		base = s.Weights.Low
	case Note:
		base = s.Weights.Note
	}
	return min(1.0, base+Urgency(t.Deadline, s.now()))
}

// Choose flips one weighted coin for t. Repeated calls for the same task are
// independent, so the result is not stable between invocations.
func (s *Selector) Choose(t Task) bool {
	p := s.Probability(t)
	if p >= 1.0 {
		return true
	}
	return s.source().Float64() < p
}
