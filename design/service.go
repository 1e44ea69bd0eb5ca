package design

import (
	"sync/atomic"

	"github.com/katalvlaran/phantomkit/sample"
)

// Service holds the current Designer snapshot. Reload builds a complete
// new snapshot and publishes it with a single atomic store; readers never
// observe a partially built index.
type Service struct {
	cur  atomic.Pointer[Designer]
	opts []Option
}

// NewService wraps d (may be nil). opts are reused by Reload.
func NewService(d *Designer, opts ...Option) *Service {
	s := &Service{opts: opts}
	if d != nil {
		s.cur.Store(d)
	}

	return s
}

// Current returns the live snapshot, or nil before the first load.
func (s *Service) Current() *Designer { return s.cur.Load() }

// Swap publishes d and returns the previous snapshot.
func (s *Service) Swap(d *Designer) *Designer { return s.cur.Swap(d) }

// Reload validates samples into a new snapshot and swaps it in. On error
// the current snapshot stays in place.
func (s *Service) Reload(samples []sample.Sample, storeOpts ...sample.Option) (*Designer, error) {
	d, err := FromSamples(samples, storeOpts, s.opts...)
	if err != nil {
		return nil, err
	}
	s.cur.Store(d)

	return d, nil
}

// Design delegates to the current snapshot.
func (s *Service) Design(target float64) (Outcome, error) {
	d := s.cur.Load()
	if d == nil {
		return Outcome{}, ErrNoDesigner
	}

	return d.Design(target)
}

// DesignFamily delegates to the current snapshot.
func (s *Service) DesignFamily(f sample.Family, target float64) (Outcome, error) {
	d := s.cur.Load()
	if d == nil {
		return Outcome{}, ErrNoDesigner
	}

	return d.DesignFamily(f, target)
}
