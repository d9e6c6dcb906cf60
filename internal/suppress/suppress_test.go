package suppress

import (
	"testing"

	"github.com/dkovacs/reviewcomment/internal/directive"
)

func TestMemoryStoreAndQuery(t *testing.T) {
	m := NewMemory()
	bug := Bug{ID: "deadbeef", File: "a.cpp"}

	if m.IsSuppressed(bug) {
		t.Error("empty store reported a suppression")
	}

	if err := m.Store(bug.ID, bug.File, "known issue", directive.FalsePositive); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	if !m.IsSuppressed(bug) {
		t.Error("stored false positive not reported as suppressed")
	}

	// Same bug id in another file is a different bug.
	if m.IsSuppressed(Bug{ID: "deadbeef", File: "b.cpp"}) {
		t.Error("suppression leaked across files")
	}

	if err := m.Remove(bug.ID, bug.File); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if m.IsSuppressed(bug) {
		t.Error("removed suppression still reported")
	}
}

func TestMemoryConfirmedIsNotSuppressing(t *testing.T) {
	m := NewMemory()
	bug := Bug{ID: "cafe", File: "a.cpp"}

	if err := m.Store(bug.ID, bug.File, "acknowledged", directive.Confirmed); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	if m.IsSuppressed(bug) {
		t.Error("confirmed status must still be reported")
	}

	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestMemorySuppressFile(t *testing.T) {
	m := NewMemory()
	if m.File() != "" {
		t.Errorf("File() = %q, want empty", m.File())
	}

	m.SetFile("/tmp/suppress.list")

	if m.File() != "/tmp/suppress.list" {
		t.Errorf("File() = %q, want %q", m.File(), "/tmp/suppress.list")
	}
}
