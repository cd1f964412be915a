// Package uuid wraps google/uuid behind an interface so IDs can be fixed in tests
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator generates random (v4) UUIDs
type GoogleUUIDGenerator struct{}

// New returns a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// StaticGenerator hands out a fixed sequence of IDs, then falls back to random ones
type StaticGenerator struct {
	IDs  []string
	next int
}

// New returns the next configured ID
func (g *StaticGenerator) New() string {
	if g.next < len(g.IDs) {
		id := g.IDs[g.next]
		g.next++
		return id
	}
	return uuid.New().String()
}
