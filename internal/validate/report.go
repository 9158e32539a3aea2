// Package validate checks an input directory for structural and
// referential problems the build assumes away.
package validate

import (
	"fmt"
	"io"
	"sort"

	"github.com/rotisserie/eris"
)

// Check names.
const (
	CheckExists      = "exists"
	CheckHeaders     = "headers"
	CheckParse       = "parse"
	CheckRecord      = "record"
	CheckReferences  = "references"
	CheckAnswers     = "answers"
	CheckWeights     = "weights"
	CheckRegions     = "regions"
	CheckBoundingBox = "bbox"
)

// Violation is one failed check against one input file.
type Violation struct {
	File    string `json:"file"`
	Check   string `json:"check"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s [%s] %s", v.File, v.Check, v.Message)
}

// Report collects the violations of a validation run.
type Report struct {
	Violations []Violation `json:"violations"`
}

// OK reports whether no check failed.
func (r *Report) OK() bool { return len(r.Violations) == 0 }

// Err returns a summary error when the report has violations.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return eris.Errorf("validate: %d violation(s)", len(r.Violations))
}

// Checks returns the distinct check names that failed, sorted.
func (r *Report) Checks() []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range r.Violations {
		if !seen[v.Check] {
			seen[v.Check] = true
			out = append(out, v.Check)
		}
	}
	sort.Strings(out)
	return out
}

// WriteTo prints one violation per line.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, v := range r.Violations {
		n, err := fmt.Fprintln(w, v.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (r *Report) addf(file, check, format string, args ...any) {
	r.Violations = append(r.Violations, Violation{
		File:    file,
		Check:   check,
		Message: fmt.Sprintf(format, args...),
	})
}
