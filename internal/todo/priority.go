package todo

import "strings"

// Priority ranks how pressing a task is. Lower values are more urgent.
type Priority int

const (
	Urgent Priority = iota + 1
	High
	Normal
	Low
	Note
)

// Priorities lists every priority from most to least urgent.
var Priorities = []Priority{Urgent, High, Normal, Low, Note}

var priorityNames = map[Priority]string{
	Urgent: "Urgent",
	High:   "High",
	Normal: "Normal",
	Low:    "Low",
	Note:   "Note",
}

// ParsePriority parses a case-insensitive priority token.
func ParsePriority(token string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "urgent":
		return Urgent, nil
	case "high":
		return High, nil
	case "normal":
		return Normal, nil
	case "low":
		return Low, nil
	case "note":
		return Note, nil
	default:
		return 0, &InvalidPriorityError{Token: token}
	}
}

// Valid reports whether p is one of the defined priorities.
func (p Priority) Valid() bool {
	return p >= Urgent && p <= Note
}

// String returns the lowercase token accepted by ParsePriority.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return strings.ToLower(name)
	}
	return "invalid"
}

// MarshalText writes the capitalized name used in task files.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &InvalidPriorityError{Token: p.String()}
	}
	return []byte(priorityNames[p]), nil
}

// UnmarshalText accepts any casing of a priority name.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// PriorityPtr returns a pointer to p, for optional fields.
func PriorityPtr(p Priority) *Priority {
	return &p
}
