package validation

import "github.com/weirdoworks/warband-bot/internal/rulebook"

// Severity separates findings that block a save from findings that only
// inform. Callers branch on severity, never on category.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Category is the validation level a finding came from, ordered from
// "cannot reason about the data" to "data is well-formed but breaks a game
// rule".
type Category string

const (
	CategoryStructure Category = "structure"
	CategoryType      Category = "type"
	CategoryReference Category = "reference"
	CategoryBusiness  Category = "business"
)

// ValidationError is a single finding. Field is a dotted path with
// array-index notation (weirdos[2].attributes.firepower) so a UI can
// correlate the finding to a specific control.
type ValidationError struct {
	Field       string        `json:"field"`
	Message     string        `json:"message"`
	Code        rulebook.Code `json:"code"`
	Category    Category      `json:"category"`
	Severity    Severity      `json:"severity"`
	Suggestions []string      `json:"suggestions,omitempty"`
}

// Result is the flat outcome of a validation pass. Validation never returns
// a Go error for user input; it always returns a complete Result so a UI can
// render every problem at once.
type Result struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
}

// ComprehensiveResult buckets findings per validation level.
type ComprehensiveResult struct {
	Valid      bool              `json:"valid"`
	Structure  []ValidationError `json:"structure"`
	Types      []ValidationError `json:"types"`
	References []ValidationError `json:"references"`
	Rules      []ValidationError `json:"rules"`
	Warnings   []ValidationError `json:"warnings"`
}

// ErrorCount returns the number of blocking findings across all levels.
func (r *ComprehensiveResult) ErrorCount() int {
	return len(r.Structure) + len(r.Types) + len(r.References) + len(r.Rules)
}

func newResult(errors, warnings []ValidationError) *Result {
	return &Result{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}
