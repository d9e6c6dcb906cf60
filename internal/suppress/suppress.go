// Package suppress defines the suppression store contract and an in-memory
// implementation of it.
package suppress

import (
	"github.com/dkovacs/reviewcomment/internal/directive"
)

// Bug identifies one suppressed diagnostic.
type Bug struct {
	ID   string
	File string
}

// Handler is the capability set a suppression backend must provide. The
// comment-parsing core never calls it; callers feed parsed directives into
// an implementation of their choice.
type Handler interface {
	// Store records a suppression for the bug.
	Store(bugID, fileName, comment string, status directive.Status) error

	// Remove drops a previously stored suppression.
	Remove(bugID, fileName string) error

	// IsSuppressed reports whether the bug has a stored suppression.
	IsSuppressed(bug Bug) bool

	// File returns the configured suppression file location.
	File() string

	// SetFile configures the suppression file location.
	SetFile(path string)
}

// entry is one stored suppression.
type entry struct {
	Comment string
	Status  directive.Status
}

// Memory is a Handler that keeps suppressions in process memory only.
// Nothing is persisted; the zero value is not usable, construct with
// NewMemory.
type Memory struct {
	file    string
	entries map[Bug]entry
}

var _ Handler = (*Memory)(nil)

// NewMemory returns an empty in-memory suppression store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[Bug]entry)}
}

// Store implements Handler.
func (m *Memory) Store(bugID, fileName, comment string, status directive.Status) error {
	m.entries[Bug{ID: bugID, File: fileName}] = entry{Comment: comment, Status: status}

	return nil
}

// Remove implements Handler.
func (m *Memory) Remove(bugID, fileName string) error {
	delete(m.entries, Bug{ID: bugID, File: fileName})

	return nil
}

// IsSuppressed implements Handler.
func (m *Memory) IsSuppressed(bug Bug) bool {
	e, ok := m.entries[bug]

	return ok && directive.IsSuppressing(e.Status)
}

// File implements Handler.
func (m *Memory) File() string {
	return m.file
}

// SetFile implements Handler.
func (m *Memory) SetFile(path string) {
	m.file = path
}

// Len returns the number of stored suppressions.
func (m *Memory) Len() int {
	return len(m.entries)
}
