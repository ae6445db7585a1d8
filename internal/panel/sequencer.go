package panel

import "sync/atomic"

// sequencer tags requests so that only the latest response is applied.
type sequencer struct {
	n atomic.Uint64
}

func (s *sequencer) next() uint64 {
	return s.n.Add(1)
}

func (s *sequencer) isLatest(token uint64) bool {
	return s.n.Load() == token
}
