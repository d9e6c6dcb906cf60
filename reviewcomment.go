// Package reviewcomment extracts review status directives from source code
// comments.
//
// A directive is an annotation such as
//
//	// codechecker_suppress [core.DivideZero] division guarded above
//
// placed on the line(s) directly above a reported diagnostic. It assigns a
// review status (false positive, intentional, or confirmed) to that
// diagnostic for one or more checkers, or for all of them.
package reviewcomment

import (
	"go.uber.org/zap"

	"github.com/dkovacs/reviewcomment/internal/directive"
	"github.com/dkovacs/reviewcomment/internal/scanner"
)

// Status is the review status a directive assigns to a diagnostic.
type Status = directive.Status

// Valid review statuses.
const (
	FalsePositive = directive.FalsePositive
	Intentional   = directive.Intentional
	Confirmed     = directive.Confirmed
)

// Directive is one parsed review status annotation.
type Directive = directive.Directive

// LineReader supplies 1-indexed source lines; see scanner.LineReader.
type LineReader = scanner.LineReader

// IsSuppressing reports whether a status hides the diagnostic from default
// reporting.
func IsSuppressing(s Status) bool {
	return directive.IsSuppressing(s)
}

// Handler scans one source file for review status comments. Each query is
// independent; the Handler keeps no state between calls beyond whatever
// caching its LineReader does.
type Handler struct {
	file    string
	scanner *scanner.Scanner
}

// NewHandler returns a Handler for one source file. A nil logger disables
// logging.
func NewHandler(file string, r LineReader, log *zap.SugaredLogger) *Handler {
	return &Handler{
		file:    file,
		scanner: scanner.New(r, log),
	}
}

// ScanLine returns the directives that apply to bugLine, nearest comment
// block first.
func (h *Handler) ScanLine(bugLine int) ([]Directive, error) {
	return h.scanner.Scan(h.file, bugLine)
}

// FilterByChecker returns the directives that apply to bugLine and are
// relevant to the named checker. Directives naming the checker explicitly
// win over an "all" wildcard; matching is exact, with no prefix or
// hierarchy semantics.
func (h *Handler) FilterByChecker(bugLine int, checker string) ([]Directive, error) {
	directives, err := h.ScanLine(bugLine)
	if err != nil {
		return nil, err
	}

	return directive.FilterByChecker(directives, checker), nil
}

// HasDirectives reports whether any directive applies to bugLine.
func (h *Handler) HasDirectives(bugLine int) (bool, error) {
	directives, err := h.ScanLine(bugLine)
	if err != nil {
		return false, err
	}

	return len(directives) > 0, nil
}
