package idgen

import (
	"strings"
	"testing"
)

func TestNanoID_Length(t *testing.T) {
	// WHAT: NanoID produces IDs of exactly the requested length.
	// WHY: Run IDs are embedded in fixed-width log fields.
	for _, length := range []int{8, 12, 16, 24} {
		gen := NanoID(length)
		id := gen()
		if len(id) != length {
			t.Fatalf("NanoID(%d): got length %d", length, len(id))
		}
	}
}

func TestNanoID_Alphabet(t *testing.T) {
	// WHAT: NanoID only emits lowercase base-36 characters.
	// WHY: IDs must stay URL- and grep-safe.
	gen := NanoID(100)
	id := gen()
	for _, c := range id {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'z')) {
			t.Fatalf("NanoID: unexpected character %q in %q", c, id)
		}
	}
}

func TestNanoID_Uniqueness(t *testing.T) {
	// WHAT: Consecutive NanoIDs do not collide.
	// WHY: Colliding run IDs would merge unrelated runs in logs.
	gen := NanoID(12)
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := gen()
		if _, ok := seen[id]; ok {
			t.Fatalf("NanoID: duplicate at iteration %d: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestUUIDv7_Format(t *testing.T) {
	// WHAT: UUIDv7 emits canonical 8-4-4-4-12 UUID strings.
	// WHY: Downstream stores key on the canonical textual form.
	gen := UUIDv7()
	id := gen()
	parts := strings.Split(id, "-")
	if len(parts) != 5 {
		t.Fatalf("UUIDv7: expected 5 parts, got %d in %q", len(parts), id)
	}
	if len(id) != 36 {
		t.Fatalf("UUIDv7: expected length 36, got %d", len(id))
	}
}

func TestPrefixed(t *testing.T) {
	// WHAT: Prefixed prepends the prefix to every generated ID.
	// WHY: Type-scoped IDs ("run_") make log lines self-describing.
	gen := Prefixed("run_", NanoID(8))
	id := gen()
	if !strings.HasPrefix(id, "run_") {
		t.Fatalf("Prefixed: %q lacks prefix", id)
	}
	if len(id) != len("run_")+8 {
		t.Fatalf("Prefixed: unexpected length %d", len(id))
	}
}
