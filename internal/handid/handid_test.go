package handid

import (
	"testing"

	"github.com/lox/holdem/internal/randutil"
)

func TestNewProducesValidIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New()
		if err := Validate(id); err != nil {
			t.Fatalf("invalid ID %q: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("duplicate ID %q", id)
		}
		seen[id] = true
	}
}

func TestNewWithRandSource(t *testing.T) {
	t.Parallel()

	id := NewWithRandSource(randutil.New(42))
	if err := Validate(id); err != nil {
		t.Fatalf("invalid ID %q: %v", id, err)
	}
}

func TestValidateRejectsBadIDs(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"", "short", "zzzzzzzzzzzzzzzzzzzzzzzzzz", "0123456789abcdefghjkmnpqr!"} {
		if err := Validate(id); err == nil {
			t.Errorf("Validate(%q) should fail", id)
		}
	}
}
