package config

import (
	"fmt"

	"github.com/gnolang/rxgen/pattern"
)

// Failure is a sample that a named pattern classified wrongly.
type Failure struct {
	Pattern string
	Sample  string
	// Want is true for an accept sample, false for a reject sample.
	Want bool
	// Pos is the first rejected position for failed accept samples, or -1
	// when the sample length did not match.
	Pos int
}

func (f Failure) String() string {
	if f.Want {
		if f.Pos < 0 {
			return fmt.Sprintf("%s: %q rejected: length differs from pattern", f.Pattern, f.Sample)
		}
		return fmt.Sprintf("%s: %q rejected at position %d", f.Pattern, f.Sample, f.Pos)
	}
	return fmt.Sprintf("%s: %q accepted but listed under reject", f.Pattern, f.Sample)
}

// Check matches each accept and reject sample of np against its pattern.
func Check(np NamedPattern) ([]Failure, error) {
	spec, err := pattern.Parse(np.Pattern)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", np.Name, err)
	}

	var failures []Failure
	for _, s := range np.Accept {
		if pos, ok := pattern.Mismatch(spec, s); !ok {
			failures = append(failures, Failure{Pattern: np.Name, Sample: s, Want: true, Pos: pos})
		}
	}
	for _, s := range np.Reject {
		if spec.Match(s) {
			failures = append(failures, Failure{Pattern: np.Name, Sample: s, Want: false, Pos: -1})
		}
	}
	return failures, nil
}

// CheckAll runs Check over every named pattern in c.
func (c Config) CheckAll() ([]Failure, error) {
	var all []Failure
	for _, np := range c.Patterns {
		f, err := Check(np)
		if err != nil {
			return nil, err
		}
		all = append(all, f...)
	}
	return all, nil
}
