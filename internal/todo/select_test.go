package todo

import (
	"errors"
	"math"
	"testing"
	"time"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedSelector(r float64) *Selector {
	return &Selector{
		Weights: DefaultWeights(),
		Rand:    fixedRand(r),
		Now:     func() time.Time { return testNow },
	}
}

func TestParseDeadline(t *testing.T) {
	loc := time.FixedZone("test", 2*3600)

	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "2024-03-05", want: time.Date(2024, 3, 5, 0, 0, 0, 0, loc)},
		{input: "2024-03-05 17:30", want: time.Date(2024, 3, 5, 17, 30, 0, 0, loc)},
		{input: "2024-13-05", wantErr: true},
		{input: "tomorrow", wantErr: true},
		{input: "2024-03-05T17:30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDeadlineIn(tt.input, loc)
			if tt.wantErr {
				var de *DeadlineParseError
				if !errors.As(err, &de) {
					t.Fatalf("expected DeadlineParseError, got %v", err)
				}
				if de.Input != tt.input {
					t.Errorf("Input: got %q, want %q", de.Input, tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDeadlineIn failed: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if got.Location() != loc {
				t.Errorf("location: got %v, want %v", got.Location(), loc)
			}
		})
	}
}

func TestUrgency(t *testing.T) {
	at := func(d time.Duration) *time.Time { return TimePtr(testNow.Add(d)) }

	tests := []struct {
		name     string
		deadline *time.Time
		want     float64
	}{
		{"no deadline", nil, 0.0},
		{"overdue", at(-48 * time.Hour), 1.0},
		{"due now", at(0), 1.0},
		{"exactly one week", at(Week), 0.0},
		{"beyond one week", at(Week + time.Minute), 0.0},
		{"half a week", at(Week / 2), 0.5},
		{"one minute away", at(time.Minute), 1.0 - 1.0/Week.Minutes()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Urgency(tt.deadline, testNow)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Urgency: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUrgencyMonotonicAndContinuous(t *testing.T) {
	prev := Urgency(TimePtr(testNow), testNow)
	step := 30 * time.Minute
	maxJump := step.Minutes()/Week.Minutes() + 1e-9
	for d := step; d <= Week+2*step; d += step {
		cur := Urgency(TimePtr(testNow.Add(d)), testNow)
		if cur > prev {
			t.Fatalf("urgency increased at %v: %v > %v", d, cur, prev)
		}
		if prev-cur > maxJump {
			t.Fatalf("urgency jumped at %v: %v -> %v", d, prev, cur)
		}
		if cur < 0 || cur > 1 {
			t.Fatalf("urgency out of range at %v: %v", d, cur)
		}
		prev = cur
	}
}

func TestChooseAlwaysForUrgentAndHigh(t *testing.T) {
	s := fixedSelector(0.999999)
	for _, p := range []Priority{Urgent, High} {
		if !s.Choose(NewTask("x", WithPriority(p))) {
			t.Errorf("%v task was not chosen", p)
		}
	}
}

func TestChooseWithDeterministicRand(t *testing.T) {
	always := fixedSelector(0.0)
	never := fixedSelector(1.0)

	for _, p := range []Priority{Normal, Low, Note} {
		task := NewTask("x", WithPriority(p))
		if !always.Choose(task) {
			t.Errorf("%v: expected selection with rand 0.0", p)
		}
		if never.Choose(task) {
			t.Errorf("%v: expected no selection with rand 1.0", p)
		}
	}
	if !always.Choose(NewTask("no priority")) {
		t.Error("missing priority: expected selection with rand 0.0")
	}
}

func TestChooseOverdueAlwaysSelected(t *testing.T) {
	never := fixedSelector(1.0)
	task := NewTask("late", WithPriority(Note), WithDeadline(testNow.Add(-time.Hour)))
	if !never.Choose(task) {
		t.Error("overdue task should be selected regardless of rand")
	}
}

func TestProbability(t *testing.T) {
	s := fixedSelector(0.5)
	halfWeek := testNow.Add(Week / 2)

	tests := []struct {
		name string
		task Task
		want float64
	}{
		{"urgent", NewTask("x", WithPriority(Urgent)), 1.0},
		{"high", NewTask("x", WithPriority(High)), 1.0},
		{"normal", NewTask("x", WithPriority(Normal)), 1.0 / 3.0},
		{"default is normal", NewTask("x"), 1.0 / 3.0},
		{"low", NewTask("x", WithPriority(Low)), 1.0 / 5.0},
		{"note", NewTask("x", WithPriority(Note)), 1.0 / 8.0},
		{"low half week out", NewTask("x", WithPriority(Low), WithDeadline(halfWeek)), 0.2 + 0.5},
		{"normal capped", NewTask("x", WithDeadline(testNow.Add(time.Hour))), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Probability(tt.task)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Probability: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChooseThreshold(t *testing.T) {
	// A draw just below the probability selects, a draw at it does not.
	task := NewTask("x", WithPriority(Low))
	if !fixedSelector(0.19).Choose(task) {
		t.Error("draw below 0.2 should select a low task")
	}
	if fixedSelector(0.2).Choose(task) {
		t.Error("draw at 0.2 should not select a low task")
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights invalid: %v", err)
	}
	bad := []Weights{
		{Normal: 0, Low: 0.2, Note: 0.1},
		{Normal: 0.3, Low: 1.5, Note: 0.1},
		{Normal: 0.3, Low: 0.2, Note: -1},
	}
	for _, w := range bad {
		if err := w.Validate(); err == nil {
			t.Errorf("expected error for %+v", w)
		}
	}
}

func TestNewSelectorDefaults(t *testing.T) {
	s := NewSelector(DefaultWeights())
	if s.Rand == nil || s.Now == nil {
		t.Fatal("NewSelector should set Rand and Now")
	}
	if v := s.Rand.Float64(); v < 0 || v >= 1 {
		t.Errorf("Rand out of range: %v", v)
	}
}

func TestZeroSelectorDoesNotPanic(t *testing.T) {
	s := &Selector{Weights: DefaultWeights()}
	normal := NewTask("maybe")
	for i := 0; i < 100; i++ {
		s.Choose(normal)
	}
	if !s.Choose(NewTask("now", WithPriority(Urgent))) {
		t.Error("urgent tasks are always selected")
	}

	never := &Selector{Weights: Weights{Normal: math.SmallestNonzeroFloat64, Low: 0.2, Note: 0.1}}
	hits := 0
	for i := 0; i < 100; i++ {
		if never.Choose(normal) {
			hits++
		}
	}
	if hits != 0 {
		t.Errorf("near-zero weight selected %d of 100 draws", hits)
	}
}
