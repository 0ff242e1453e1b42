package model

import "strconv"

// Sequence hands out fallback numbers for files whose names carry none.
//
// A Sequence belongs to one batch run. Create it where the run starts and
// pass it to every Parse call of that run.
type Sequence struct {
	next int
}

// NewSequence returns a Sequence whose first value is start.
func NewSequence(start int) *Sequence {
	return &Sequence{next: start}
}

// Next returns the current value and advances the counter.
func (s *Sequence) Next() string {
	n := s.next
	s.next++
	return strconv.Itoa(n)
}

// Peek returns the value the next call to Next will return.
func (s *Sequence) Peek() int {
	return s.next
}
