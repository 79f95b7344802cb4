package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	PrefixAvailability = "avail"
	PrefixBooking      = "booking"
)

type Generator interface {
	NewID(prefix string) string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() Generator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// SequenceGenerator yields prefix-1, prefix-2, ... and is meant for tests and fixtures.
type SequenceGenerator struct {
	next atomic.Int64
}

func NewSequenceGenerator(start int64) *SequenceGenerator {
	g := &SequenceGenerator{}
	g.next.Store(start)
	return g
}

func (g *SequenceGenerator) NewID(prefix string) string {
	n := g.next.Add(1) - 1
	return fmt.Sprintf("%s-%d", prefix, n)
}
