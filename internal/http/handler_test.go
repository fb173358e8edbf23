package http

import (
	"testing"

	"github.com/google/uuid"
)

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" pending, assigned ,,in_progress ")
	want := []string{"pending", "assigned", "in_progress"}
	if len(got) != len(want) {
		t.Fatalf("splitCSV returned %d parts, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("part %d: %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseUUIDPtr(t *testing.T) {
	id := uuid.New()
	got, err := parseUUIDPtr(" " + id.String() + " ")
	if err != nil {
		t.Fatalf("parseUUIDPtr: %v", err)
	}
	if got == nil || *got != id {
		t.Fatalf("parseUUIDPtr mismatch: %v", got)
	}

	got, err = parseUUIDPtr("")
	if err != nil || got != nil {
		t.Fatalf("empty input should yield nil, got %v, %v", got, err)
	}

	if _, err := parseUUIDPtr("not-a-uuid"); err == nil {
		t.Fatalf("expected an error for a malformed id")
	}
}
