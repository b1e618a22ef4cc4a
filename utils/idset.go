package utils

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is wrapped by IDSet.Add when an id repeats.
var ErrDuplicateID = errors.New("duplicate id")

// ErrEmptyID is wrapped by IDSet.Add for a blank id.
var ErrEmptyID = errors.New("empty id")

// IDSet tracks the ids of one collection while it is validated.
// It is not safe for concurrent use.
type IDSet struct {
	kind string
	seen map[string]int
}

// NewIDSet creates an empty set; kind names the collection in errors,
// e.g. "listing" or "request".
func NewIDSet(kind string) *IDSet {
	return &IDSet{kind: kind, seen: make(map[string]int)}
}

// Add records the id found at position pos. It fails if the id is empty or
// was already recorded, naming both positions.
func (s *IDSet) Add(id string, pos int) error {
	if id == "" {
		return fmt.Errorf("%s #%d has %w", s.kind, pos, ErrEmptyID)
	}
	if first, ok := s.seen[id]; ok {
		return fmt.Errorf("%w: %s %q at #%d and #%d", ErrDuplicateID, s.kind, id, first, pos)
	}
	s.seen[id] = pos
	return nil
}
