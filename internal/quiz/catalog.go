package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCatalog is returned when a step list violates the catalog rules.
var ErrInvalidCatalog = errors.New("invalid quiz catalog")

// Step is a single quiz question.
type Step struct {
	ID       int
	Question string
	Options  []string
}

// Catalog is an ordered, validated list of steps with ids 1..N.
type Catalog struct {
	steps []Step
}

// NewCatalog validates steps and returns a Catalog.
// Returns a combined error describing every problem found.
func NewCatalog(steps []Step) (Catalog, error) {
	if err := validateSteps(steps); err != nil {
		return Catalog{}, err
	}
	cp := make([]Step, len(steps))
	for i, s := range steps {
		cp[i] = Step{
			ID:       s.ID,
			Question: s.Question,
			Options:  append([]string(nil), s.Options...),
		}
	}
	return Catalog{steps: cp}, nil
}

// MustCatalog is like NewCatalog but panics on invalid input.
func MustCatalog(steps []Step) Catalog {
	c, err := NewCatalog(steps)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of steps.
func (c Catalog) Len() int {
	return len(c.steps)
}

// Last returns the id of the final step, or 0 for an empty catalog.
func (c Catalog) Last() int {
	if len(c.steps) == 0 {
		return 0
	}
	return c.steps[len(c.steps)-1].ID
}

// Step returns the step with the given id.
func (c Catalog) Step(id int) (Step, bool) {
	if id < 1 || id > len(c.steps) {
		return Step{}, false
	}
	return c.steps[id-1], true
}

// Steps returns a copy of all steps in order.
func (c Catalog) Steps() []Step {
	out := make([]Step, len(c.steps))
	copy(out, c.steps)
	return out
}

func validateSteps(steps []Step) error {
	if len(steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidCatalog)
	}

	var errs []string
	for i, s := range steps {
		if want := i + 1; s.ID != want {
			errs = append(errs, fmt.Sprintf("step at position %d has id %d, want %d", i+1, s.ID, want))
		}
		if strings.TrimSpace(s.Question) == "" {
			errs = append(errs, fmt.Sprintf("step %d has an empty question", s.ID))
		}
		if len(s.Options) == 0 {
			errs = append(errs, fmt.Sprintf("step %d has no options", s.ID))
		}
		for j, opt := range s.Options {
			if opt == "" {
				errs = append(errs, fmt.Sprintf("step %d option %d is empty", s.ID, j+1))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(errs, "; "))
	}
	return nil
}
