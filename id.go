// id.go - Identifier minting for schema entries.
// SPDX-License-Identifier: GPL-3.0-or-later

package getopt

import "github.com/google/uuid"

// Identifier is a handle minted by an [IDGenerator]. Equality is
// identity: two Identifiers are equal iff they were minted for the
// same entry.
type Identifier uint64

// IDGenerator mints [Identifier] values for a [Registry]. The default
// generator used by [NewRegistry] is [NewSequentialIDGen], a plain
// counter matching the reference implementation. [NewRandomIDGen] is
// an alternative for callers running more than one [Registry]
// concurrently who want identifiers that never collide across them.
type IDGenerator interface {
	// NextID returns the next [Identifier] and advances the generator.
	NextID() Identifier
	// Reset rewinds the generator so the next call to NextID returns id.
	Reset(id Identifier)
}

// SequentialIDGen is the default, not-thread-safe [IDGenerator].
type SequentialIDGen struct {
	next Identifier
}

var _ IDGenerator = (*SequentialIDGen)(nil)

// NewSequentialIDGen returns a counter-based [IDGenerator] starting at 0.
func NewSequentialIDGen() *SequentialIDGen {
	return &SequentialIDGen{}
}

// NextID implements [IDGenerator].
func (g *SequentialIDGen) NextID() Identifier {
	id := g.next
	g.next++
	return id
}

// Reset implements [IDGenerator].
func (g *SequentialIDGen) Reset(id Identifier) {
	g.next = id
}

// RandomIDGen is an [IDGenerator] backed by [uuid.New], for callers
// that build more than one [Registry] and do not want their entry
// identifiers to collide across registries (e.g. when identifiers are
// exported to an external system keyed globally).
type RandomIDGen struct{}

var _ IDGenerator = (*RandomIDGen)(nil)

// NewRandomIDGen returns a uuid-backed [IDGenerator].
func NewRandomIDGen() *RandomIDGen {
	return &RandomIDGen{}
}

// NextID implements [IDGenerator]. It derives a 64-bit handle from the
// low 8 bytes of a fresh random UUID.
func (g *RandomIDGen) NextID() Identifier {
	u := uuid.New()
	var v uint64
	for _, b := range u[8:] {
		v = v<<8 | uint64(b)
	}
	return Identifier(v)
}

// Reset implements [IDGenerator]. RandomIDGen identifiers are not
// sequential, so Reset is a no-op kept only to satisfy the interface.
func (g *RandomIDGen) Reset(Identifier) {}
