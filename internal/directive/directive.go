// Package directive parses review status directives out of source code
// comment text.
package directive

import (
	"regexp"
	"sort"
	"strings"
)

// Status is the review status a directive assigns to a diagnostic.
type Status string

// Valid review statuses.
const (
	FalsePositive Status = "false_positive"
	Intentional   Status = "intentional"
	Confirmed     Status = "confirmed"
)

// WildcardChecker matches every checker name.
const WildcardChecker = "all"

// MissingMessage is stored when the author gave no explanation.
const MissingMessage = "WARNING! source code comment is missing"

// Markers are the recognized directive keywords, in matching order.
var Markers = []string{
	"codechecker_suppress",
	"codechecker_false_positive",
	"codechecker_intentional",
	"codechecker_confirmed",
}

// markerStatus maps each marker keyword to exactly one status.
var markerStatus = map[string]Status{
	"codechecker_suppress":       FalsePositive,
	"codechecker_false_positive": FalsePositive,
	"codechecker_intentional":    Intentional,
	"codechecker_confirmed":      Confirmed,
}

// Directive is one parsed review status annotation.
type Directive struct {
	Status   Status   `json:"status"`
	Checkers []string `json:"checkers"` // sorted, deduplicated; never empty
	Message  string   `json:"message"`
}

// HasChecker reports whether the directive names the given checker.
func (d Directive) HasChecker(name string) bool {
	for _, c := range d.Checkers {
		if c == name {
			return true
		}
	}

	return false
}

// IsWildcard reports whether the directive applies to every checker.
func (d Directive) IsWildcard() bool {
	return len(d.Checkers) == 1 && d.Checkers[0] == WildcardChecker
}

// IsSuppressing reports whether a status hides the diagnostic from default
// reporting. Confirmed means acknowledged but still reported.
func IsSuppressing(s Status) bool {
	return s == FalsePositive || s == Intentional
}

// HasMarker reports whether the line contains any directive keyword.
func HasMarker(line string) bool {
	for _, m := range Markers {
		if strings.Contains(line, m) {
			return true
		}
	}

	return false
}

// pattern matches a whitespace-collapsed directive:
//
//	<marker> [checker1, checker2] free text message
var pattern = regexp.MustCompile(
	`^\s*(?P<status>` + strings.Join(Markers, "|") + `)` +
		`\s*\[\s*(?P<checkers>.*)\s*\]\s*(?P<message>.*)$`)

// Parse parses the whitespace-collapsed text of one comment block.
// It returns false when the text does not match the directive grammar;
// a marker with missing or malformed brackets is not a directive.
func Parse(text string) (Directive, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return Directive{}, false
	}

	var (
		marker   = m[pattern.SubexpIndex("status")]
		checkers = m[pattern.SubexpIndex("checkers")]
		message  = m[pattern.SubexpIndex("message")]
	)

	names := parseCheckers(checkers)
	if len(names) == 0 {
		// Empty brackets name no checker at all.
		return Directive{}, false
	}

	d := Directive{
		Status:   markerStatus[marker],
		Checkers: names,
		Message:  strings.TrimSpace(message),
	}
	if d.Message == "" {
		d.Message = MissingMessage
	}

	return d, true
}

// parseCheckers splits the bracket contents into a deduplicated, sorted
// name list. The single name "all" is the wildcard sentinel.
func parseCheckers(s string) []string {
	s = strings.TrimSpace(s)
	if s == WildcardChecker {
		return []string{WildcardChecker}
	}

	seen := make(map[string]bool)

	var names []string

	for _, tok := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}) {
		if tok == "" || seen[tok] {
			continue
		}

		seen[tok] = true
		names = append(names, tok)
	}

	sort.Strings(names)

	return names
}

// FilterByChecker selects the directives relevant to one checker from a
// scan result, iterated nearest-to-bug-line first. Explicit matches always
// win; the first-seen wildcard directive is returned only when no directive
// names the checker explicitly.
func FilterByChecker(directives []Directive, checker string) []Directive {
	var (
		explicit []Directive
		wildcard *Directive
	)

	for i, d := range directives {
		if d.IsWildcard() && wildcard == nil && len(explicit) == 0 {
			wildcard = &directives[i]
		}

		if d.HasChecker(checker) {
			explicit = append(explicit, d)
		}
	}

	if len(explicit) > 0 {
		return explicit
	}

	if wildcard != nil {
		return []Directive{*wildcard}
	}

	return nil
}
