package reviewcomment

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

type stringReader struct {
	lines []string
}

func newStringReader(src string) *stringReader {
	return &stringReader{lines: strings.Split(src, "\n")}
}

func (r *stringReader) GetLine(file string, line int) (string, error) {
	if line < 1 || line > len(r.lines) {
		return "", fmt.Errorf("%s: line %d out of range", file, line)
	}

	return r.lines[line-1], nil
}

const sample = `// codechecker_confirmed [all] seen it
// codechecker_suppress [core.DivideZero] known issue
int x = 1 / 0;
int y = 0;
// codechecker_intentional [deadcode.DeadStores] keep
// the assignment for documentation
int z = y;
`

func newSampleHandler() *Handler {
	return NewHandler("sample.cpp", newStringReader(sample), nil)
}

func TestHandlerScanLine(t *testing.T) {
	h := newSampleHandler()

	got, err := h.ScanLine(3)
	if err != nil {
		t.Fatalf("ScanLine() error = %v", err)
	}

	want := []Directive{
		{Status: FalsePositive, Checkers: []string{"core.DivideZero"}, Message: "known issue"},
		{Status: Confirmed, Checkers: []string{"all"}, Message: "seen it"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScanLine() = %+v, want %+v", got, want)
	}
}

func TestHandlerScanLineMultiLineBlock(t *testing.T) {
	h := newSampleHandler()

	got, err := h.ScanLine(7)
	if err != nil {
		t.Fatalf("ScanLine() error = %v", err)
	}

	want := []Directive{
		{Status: Intentional, Checkers: []string{"deadcode.DeadStores"}, Message: "keep the assignment for documentation"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScanLine() = %+v, want %+v", got, want)
	}
}

func TestHandlerFilterByChecker(t *testing.T) {
	h := newSampleHandler()

	tests := []struct {
		checker string
		want    []Directive
	}{
		{
			checker: "core.DivideZero",
			want: []Directive{
				{Status: FalsePositive, Checkers: []string{"core.DivideZero"}, Message: "known issue"},
			},
		},
		{
			checker: "unrelated.Checker",
			want: []Directive{
				{Status: Confirmed, Checkers: []string{"all"}, Message: "seen it"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.checker, func(t *testing.T) {
			got, err := h.FilterByChecker(3, tt.checker)
			if err != nil {
				t.Fatalf("FilterByChecker() error = %v", err)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterByChecker() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHandlerHasDirectives(t *testing.T) {
	h := newSampleHandler()

	tests := []struct {
		line int
		want bool
	}{
		{3, true},
		{4, false}, // directly below code, not a comment
		{7, true},
		{1, false}, // nothing above the first line
	}

	for _, tt := range tests {
		got, err := h.HasDirectives(tt.line)
		if err != nil {
			t.Fatalf("HasDirectives(%d) error = %v", tt.line, err)
		}

		if got != tt.want {
			t.Errorf("HasDirectives(%d) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIsSuppressing(t *testing.T) {
	if !IsSuppressing(FalsePositive) || !IsSuppressing(Intentional) {
		t.Error("false_positive and intentional must suppress")
	}

	if IsSuppressing(Confirmed) {
		t.Error("confirmed must not suppress")
	}
}
