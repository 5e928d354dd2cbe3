package ui

import "sync/atomic"

// requestSeq issues monotonically increasing tickets. Only the holder of
// the latest ticket may apply its response.
type requestSeq struct {
	n atomic.Uint64
}

func (s *requestSeq) next() uint64 {
	return s.n.Add(1)
}

func (s *requestSeq) current(ticket uint64) bool {
	return s.n.Load() == ticket
}

// latest returns the most recently issued ticket without issuing a new one.
func (s *requestSeq) latest() uint64 {
	return s.n.Load()
}
