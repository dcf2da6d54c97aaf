package todo

import (
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		token   string
		want    Priority
		wantErr bool
	}{
		{token: "urgent", want: Urgent},
		{token: "HIGH", want: High},
		{token: "Normal", want: Normal},
		{token: "low", want: Low},
		{token: " note ", want: Note},
		{token: "critical", wantErr: true},
		{token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParsePriority(tt.token)
			if tt.wantErr {
				var pe *InvalidPriorityError
				if !errors.As(err, &pe) {
					t.Fatalf("ParsePriority(%q) error = %v, want InvalidPriorityError", tt.token, err)
				}
				if pe.Token != tt.token {
					t.Errorf("Token: got %q, want %q", pe.Token, tt.token)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePriority(%q) failed: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q): got %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestPriorityTextRoundTrip(t *testing.T) {
	for _, p := range Priorities {
		text, err := p.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", p, err)
		}
		var back Priority
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s) failed: %v", text, err)
		}
		if back != p {
			t.Errorf("round trip: got %v, want %v", back, p)
		}
	}

	if _, err := Priority(0).MarshalText(); err == nil {
		t.Error("expected error marshaling zero priority")
	}
}

func TestTaskJSONNullFields(t *testing.T) {
	data, err := json.Marshal(NewTask("plain"))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"description":"plain","priority":null,"deadline":null}`
	if string(data) != want {
		t.Errorf("json: got %s, want %s", data, want)
	}

	var task Task
	if err := json.Unmarshal([]byte(`{"description":"x","priority":"urgent"}`), &task); err != nil {
		t.Fatal(err)
	}
	if task.EffectivePriority() != Urgent {
		t.Errorf("priority: got %v, want urgent", task.EffectivePriority())
	}
}

func TestCompare(t *testing.T) {
	urgentB := NewTask("b", WithPriority(Urgent))
	normalA := NewTask("a", WithPriority(Normal))
	defaultA := NewTask("a")
	defaultB := NewTask("b")
	lowA := NewTask("a", WithPriority(Low))
	noteA := NewTask("a", WithPriority(Note))

	tests := []struct {
		name string
		a, b Task
		want int // sign only
	}{
		{"urgent before normal", urgentB, normalA, -1},
		{"missing priority ties with normal on description", defaultA, normalA, 0},
		{"description breaks tie", defaultA, defaultB, -1},
		{"normal before low", defaultB, lowA, -1},
		{"low before note", lowA, noteA, -1},
		{"note after urgent", noteA, urgentB, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sign(Compare(tt.a, tt.b))
			if got != tt.want {
				t.Errorf("Compare: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompareIgnoresDeadline(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	soon := NewTask("b", WithDeadline(now))
	later := NewTask("a")
	if Compare(later, soon) >= 0 {
		t.Error("deadline should not move a task ahead in static order")
	}
}

func TestTaskEqual(t *testing.T) {
	d := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sameInstant := d.In(time.FixedZone("plus1", 3600))

	a := NewTask("x", WithPriority(Low), WithDeadline(d))
	b := NewTask("x", WithPriority(Low), WithDeadline(sameInstant))
	if !a.Equal(b) {
		t.Error("tasks with the same instant in different zones should be equal")
	}
	if a.Equal(NewTask("x", WithPriority(Low))) {
		t.Error("task with deadline should differ from one without")
	}
	if a.Equal(NewTask("x", WithDeadline(d))) {
		t.Error("explicit priority should differ from missing priority")
	}
}

func TestPatchApply(t *testing.T) {
	d := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	orig := NewTask("write report", WithPriority(Normal), WithDeadline(d))

	t.Run("empty patch is identity", func(t *testing.T) {
		p := Patch{}
		if !p.IsEmpty() {
			t.Fatal("expected empty patch")
		}
		if got := p.Apply(orig); !got.Equal(orig) {
			t.Errorf("got %+v, want %+v", got, orig)
		}
	})

	t.Run("priority only", func(t *testing.T) {
		got := Patch{Priority: PriorityPtr(Urgent)}.Apply(orig)
		if got.EffectivePriority() != Urgent {
			t.Errorf("priority: got %v, want urgent", got.EffectivePriority())
		}
		if got.Description != orig.Description {
			t.Errorf("description changed: %q", got.Description)
		}
		if got.Deadline == nil || !got.Deadline.Equal(d) {
			t.Errorf("deadline changed: %v", got.Deadline)
		}
	})

	t.Run("does not alias the patch", func(t *testing.T) {
		pr := Low
		got := Patch{Priority: &pr}.Apply(orig)
		pr = Note
		if got.EffectivePriority() != Low {
			t.Errorf("priority aliased patch value: got %v", got.EffectivePriority())
		}
	})

	t.Run("description and deadline", func(t *testing.T) {
		desc := "send report"
		nd := d.Add(time.Hour)
		got := Patch{Description: &desc, Deadline: &nd}.Apply(orig)
		if got.Description != desc || !got.Deadline.Equal(nd) {
			t.Errorf("got %+v", got)
		}
		if got.EffectivePriority() != Normal {
			t.Errorf("priority changed: %v", got.EffectivePriority())
		}
	})
}

func TestSortOrderProperty(t *testing.T) {
	tasks := []Task{
		NewTask("zeta", WithPriority(Note)),
		NewTask("beta"),
		NewTask("alpha", WithPriority(Normal)),
		NewTask("fix bug", WithPriority(Urgent)),
		NewTask("gamma", WithPriority(Low)),
		NewTask("omega", WithPriority(High)),
	}
	sort.SliceStable(tasks, func(i, j int) bool { return Compare(tasks[i], tasks[j]) < 0 })

	want := []string{"fix bug", "omega", "alpha", "beta", "gamma", "zeta"}
	for i, w := range want {
		if tasks[i].Description != w {
			t.Errorf("tasks[%d]: got %q, want %q", i, tasks[i].Description, w)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
