// Package idgen provides pluggable identifier generation for scrape runs.
//
// Run identifiers tie together the log lines of one Run call across the
// session, page and extraction layers. The strategy is a startup-time
// decision: short NanoIDs for log correlation, UUIDv7 where results are
// stored downstream and need time-sortable keys.
package idgen

import (
	"crypto/rand"

	"github.com/google/uuid"
)

// Generator produces unique string identifiers.
type Generator func() string

// Default is the generator used when callers have no preference: a short
// base-36 ID, readable in log output.
var Default = NanoID(12)

// New produces one identifier with the Default generator.
func New() string {
	return Default()
}

// NanoID returns a Generator producing base-36 IDs of the given length.
// Short, URL-safe, and cheap; collision space is plenty for per-process
// run correlation.
func NanoID(length int) Generator {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	return func() string {
		buf := make([]byte, length)
		if _, err := rand.Read(buf); err != nil {
			panic("idgen: crypto/rand failed: " + err.Error())
		}
		out := make([]byte, length)
		for i, b := range buf {
			out[i] = alphabet[int(b)%len(alphabet)]
		}
		return string(out)
	}
}

// UUIDv7 returns a Generator producing RFC 9562 UUID v7 strings:
// time-sortable and globally unique.
func UUIDv7() Generator {
	return func() string {
		return uuid.Must(uuid.NewV7()).String()
	}
}

// Prefixed wraps a Generator and prepends a fixed prefix to every ID, for
// type-scoped identifiers such as "run_".
func Prefixed(prefix string, gen Generator) Generator {
	return func() string {
		return prefix + gen()
	}
}
