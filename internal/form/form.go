// Package form collects raw field values, validates them against a
// configurable rule set, and on success hands the typed values to the store.
// Validation failures never reach the store and leave all inputs untouched.
package form

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names shared by rules, intake, and the TUI's error line.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPeople      = "people"
)

// Rule constrains one named field. Zero-valued length bounds and nil numeric
// bounds mean unchecked. Numeric bounds are inclusive on both ends.
type Rule struct {
	Field     string
	Required  bool
	MinLength int
	MaxLength int
	Min       *int
	Max       *int
}

// IntPtr is a convenience for building numeric bounds in rule literals.
func IntPtr(n int) *int { return &n }

// DefaultRules is the board's standard rule set. The people bounds come from
// configuration.
func DefaultRules(minPeople, maxPeople int) []Rule {
	return []Rule{
		{Field: FieldTitle, Required: true, MinLength: 2, MaxLength: 80},
		{Field: FieldDescription, Required: true, MinLength: 5},
		{Field: FieldPeople, Required: true, Min: IntPtr(minPeople), Max: IntPtr(maxPeople)},
	}
}

// Validate trims each value and checks every rule against it. The first
// unmet constraint is reported as a field-naming error; nil means all rules
// passed.
func Validate(values map[string]string, rules []Rule) error {
	for _, r := range rules {
		v := strings.TrimSpace(values[r.Field])

		if r.Required && v == "" {
			return fmt.Errorf("%s: required", r.Field)
		}
		if v == "" {
			continue
		}
		if r.MinLength > 0 && len(v) < r.MinLength {
			return fmt.Errorf("%s: must be at least %d characters", r.Field, r.MinLength)
		}
		if r.MaxLength > 0 && len(v) > r.MaxLength {
			return fmt.Errorf("%s: must be at most %d characters", r.Field, r.MaxLength)
		}
		if r.Min == nil && r.Max == nil {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: not a number: %s", r.Field, v)
		}
		if r.Min != nil && n < *r.Min {
			return fmt.Errorf("%s: must be at least %d", r.Field, *r.Min)
		}
		if r.Max != nil && n > *r.Max {
			return fmt.Errorf("%s: must be at most %d", r.Field, *r.Max)
		}
	}
	return nil
}

// Creator is the one store operation intake needs. *store.Store satisfies it.
type Creator interface {
	Create(title, description string, people int) string
}

// Intake validates submitted field values and creates the project on success.
type Intake struct {
	creator Creator
	rules   []Rule
}

func NewIntake(c Creator, rules []Rule) *Intake {
	return &Intake{creator: c, rules: rules}
}

// Submit runs the rule set over the three raw values. On success it calls
// the store with the trimmed, typed values and returns the new project's id;
// on failure it returns the validation error and the store is never reached.
func (in *Intake) Submit(title, description, people string) (string, error) {
	values := map[string]string{
		FieldTitle:       title,
		FieldDescription: description,
		FieldPeople:      people,
	}
	if err := Validate(values, in.rules); err != nil {
		return "", err
	}
	n, err := strconv.Atoi(strings.TrimSpace(people))
	if err != nil {
		return "", fmt.Errorf("%s: not a number: %s", FieldPeople, people)
	}
	id := in.creator.Create(strings.TrimSpace(title), strings.TrimSpace(description), n)
	return id, nil
}
