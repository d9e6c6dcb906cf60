package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/dkovacs/reviewcomment/internal/suppress"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "src.cpp")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	return path
}

func TestRunCheckSuppressed(t *testing.T) {
	path := writeSource(t,
		"// codechecker_suppress [core.DivideZero] known issue\n"+
			"int x = 1 / 0;\n")

	store := suppress.NewMemory()
	logger := zap.NewNop().Sugar()

	verdict, err := runCheck(path, 2, "core.DivideZero", store, logger)
	if err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}

	if !verdict.Suppressed {
		t.Error("Suppressed = false, want true")
	}

	if len(verdict.Directives) != 1 {
		t.Fatalf("got %d directives, want 1", len(verdict.Directives))
	}

	if verdict.Directives[0].Message != "known issue" {
		t.Errorf("Message = %q, want %q", verdict.Directives[0].Message, "known issue")
	}

	if store.Len() != 1 {
		t.Errorf("store.Len() = %d, want 1", store.Len())
	}
}

func TestRunCheckConfirmedStillReported(t *testing.T) {
	path := writeSource(t,
		"// codechecker_confirmed [all] acknowledged\n"+
			"int x = 1 / 0;\n")

	store := suppress.NewMemory()
	logger := zap.NewNop().Sugar()

	verdict, err := runCheck(path, 2, "core.DivideZero", store, logger)
	if err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}

	if verdict.Suppressed {
		t.Error("Suppressed = true, want false for confirmed status")
	}

	if len(verdict.Directives) != 1 {
		t.Errorf("got %d directives, want 1", len(verdict.Directives))
	}
}

func TestRunCheckNoDirective(t *testing.T) {
	path := writeSource(t,
		"int y = 0;\n"+
			"int x = 1 / 0;\n")

	store := suppress.NewMemory()
	logger := zap.NewNop().Sugar()

	verdict, err := runCheck(path, 2, "core.DivideZero", store, logger)
	if err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}

	if verdict.Suppressed {
		t.Error("Suppressed = true, want false with no directives")
	}

	if len(verdict.Directives) != 0 {
		t.Errorf("got %d directives, want 0", len(verdict.Directives))
	}
}
