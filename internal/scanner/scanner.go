package scanner

import (
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/dkovacs/reviewcomment/internal/directive"
)

// commentPrefix is the only recognized comment syntax.
const commentPrefix = "//"

// LineReader supplies the literal text of one source line, without its
// line terminator. Lines are 1-indexed; the scanner never requests a line
// below 1, but may request a line past end-of-file when the caller passes
// an inconsistent bug line.
type LineReader interface {
	GetLine(file string, line int) (string, error)
}

// state of the backward scan.
type state int

const (
	betweenBlocks state = iota // accumulator empty, waiting for comment lines
	collecting                 // inside a comment run, no marker seen yet
)

// Scanner walks comment lines backward from a bug line and parses each
// marker-closed block into a directive.
type Scanner struct {
	reader LineReader
	log    *zap.SugaredLogger
}

// New returns a Scanner reading lines through r. A nil logger disables
// logging.
func New(r LineReader, log *zap.SugaredLogger) *Scanner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Scanner{reader: r, log: log}
}

// Scan returns the directives that apply to bugLine in file, nearest block
// first. Scanning starts at the line above bugLine and moves upward while
// lines are comments; each block is closed by the first marker-bearing
// line. A malformed block logs a warning and yields no directive; a
// non-comment line ends the scan. Line reader failures are returned
// unmodified.
func (s *Scanner) Scan(file string, bugLine int) ([]directive.Directive, error) {
	s.log.Debugf("checking for review status comments in %q at line %d", file, bugLine)

	cursor := bugLine - 1
	if cursor < 1 {
		// No line above the first can hold a comment.
		return nil, nil
	}

	var (
		out   []directive.Directive
		block []string // raw lines, accumulated bottom-to-top
		st    = betweenBlocks
	)

	for cursor >= 1 {
		line, err := s.reader.GetLine(file, cursor)
		if err != nil {
			return nil, err
		}

		if !isComment(line) {
			break
		}

		block = append(block, strings.TrimSpace(line))
		st = collecting

		if directive.HasMarker(line) {
			// The marker closes the block; restore file order.
			slices.Reverse(block)

			if d, ok := directive.Parse(collapse(block)); ok {
				out = append(out, d)
			} else {
				s.log.Warnf("misspelled review status comment in %s@%d: %s",
					filepath.Base(file), cursor, strings.Join(block, " "))
			}

			block = nil
			st = betweenBlocks
		}

		cursor--
	}

	if st == collecting {
		// A comment run that never reached a marker yields nothing.
		s.log.Debugf("discarding %d unterminated comment line(s) above %s:%d",
			len(block), filepath.Base(file), bugLine)
	}

	return out, nil
}

// isComment reports whether the line is a // comment.
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), commentPrefix)
}

// collapse joins a block top-to-bottom, strips every comment prefix, and
// collapses whitespace runs to single spaces.
func collapse(block []string) string {
	joined := strings.ReplaceAll(strings.Join(block, " "), commentPrefix, " ")

	return strings.Join(strings.Fields(joined), " ")
}
