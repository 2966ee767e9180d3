package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ricardomestre7/restauris-2.0-app/internal/catalog"
)

// ValidationError describes why an answer map cannot be submitted. It is
// caller-correctable; nothing is computed or persisted when it is returned.
type ValidationError struct {
	Missing    []string `json:"missing,omitempty"`
	OutOfRange []string `json:"out_of_range,omitempty"`
	Unknown    []string `json:"unknown,omitempty"`
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("%d unanswered question(s): %s", len(e.Missing), strings.Join(e.Missing, ", ")))
	}
	if len(e.OutOfRange) > 0 {
		parts = append(parts, fmt.Sprintf("answers outside %d-%d: %s", catalog.MinAnswer, catalog.MaxAnswer, strings.Join(e.OutOfRange, ", ")))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, fmt.Sprintf("unknown question(s): %s", strings.Join(e.Unknown, ", ")))
	}
	return "incomplete questionnaire: " + strings.Join(parts, "; ")
}

// Validate checks that answers covers every catalog question with a value in
// range and names no question outside the catalog.
func Validate(c *catalog.Catalog, answers Answers) error {
	verr := &ValidationError{}

	for _, q := range c.All() {
		v, ok := answers[q.ID]
		if !ok {
			verr.Missing = append(verr.Missing, q.ID)
			continue
		}
		if v < catalog.MinAnswer || v > catalog.MaxAnswer {
			verr.OutOfRange = append(verr.OutOfRange, q.ID)
		}
	}
	for id := range answers {
		if _, ok := c.Lookup(id); !ok {
			verr.Unknown = append(verr.Unknown, id)
		}
	}
	sort.Strings(verr.Unknown)

	if len(verr.Missing) == 0 && len(verr.OutOfRange) == 0 && len(verr.Unknown) == 0 {
		return nil
	}
	return verr
}
