package entity

import "sync/atomic"

// IDGenerator returns a fresh container id on every call.
type IDGenerator func() ContainerID

// IDSequence hands out monotonically increasing container ids starting at 1.
type IDSequence struct {
	last atomic.Uint64
}

// Next returns the next id.
func (s *IDSequence) Next() ContainerID {
	return ContainerID(s.last.Add(1))
}

// Generator adapts the sequence to IDGenerator.
func (s *IDSequence) Generator() IDGenerator {
	return s.Next
}
