package stamp

import (
	"context"
	"regexp"
	"testing"
	"time"
)

var idPattern = regexp.MustCompile(`^BK-[0-9A-Z]+-[0-9A-Z]{8}$`)

func TestGetIDFormat(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := New(func() time.Time { return fixed })

	id, err := g.GetID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !idPattern.MatchString(id) {
		t.Fatalf("unexpected id format %q", id)
	}
}

func TestGetIDUniqueWithinSameMillisecond(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := New(func() time.Time { return fixed })

	seen := make(map[string]bool, 10000)

	for i := 0; i < 10000; i++ {
		id, err := g.GetID(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if seen[id] {
			t.Fatalf("duplicate id %q after %d ids", id, i)
		}

		seen[id] = true
	}
}

func TestFallback(t *testing.T) {
	got := Fallback(time.UnixMilli(36 * 36))
	if got != "BK-100" {
		t.Fatalf("unexpected fallback id %q", got)
	}
}
