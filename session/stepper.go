package session

import (
	"context"

	"github.com/katalvlaran/gridpath/astar"
)

// Stepper drives a TriggerSearch run one step at a time. The run lives on its
// own goroutine and hands control back after every step over unbuffered
// channels, so exactly one side touches the board at any moment: whenever a
// Stepper method returns, the run is parked (or finished) and the caller may
// read the grid freely.
//
// The Controller must not be edited until Done reports true.
type Stepper struct {
	steps  chan struct{}
	resume chan struct{}
	done   chan struct{}
	cancel context.CancelFunc

	parked   bool
	finished bool
	count    int

	result *astar.Result
	err    error
}

// StepSearch starts a run and returns once it is parked on its first step.
// Returns ErrInvalidPlacement, starting nothing, unless Start and End are placed.
func (c *Controller) StepSearch(ctx context.Context) (*Stepper, error) {
	if c.start == nil || c.end == nil {
		return nil, ErrInvalidPlacement
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Stepper{
		steps:  make(chan struct{}),
		resume: make(chan struct{}),
		done:   make(chan struct{}),
		cancel: cancel,
	}
	go func() {
		defer close(s.done)
		s.result, s.err = c.TriggerSearch(ctx, func() {
			s.steps <- struct{}{}
			<-s.resume
		})
	}()
	s.wait()

	return s, nil
}

// Step lets the run take up to n more steps. It reports true once the run
// has finished.
func (s *Stepper) Step(n int) bool {
	for i := 0; i < n && !s.finished; i++ {
		s.release()
		s.wait()
	}
	return s.finished
}

// Close cancels the run and waits for it to return. Safe to call more than
// once and after the run has finished.
func (s *Stepper) Close() {
	s.cancel()
	for !s.finished {
		s.release()
		s.wait()
	}
}

// Done reports whether the run has returned.
func (s *Stepper) Done() bool { return s.finished }

// Steps returns how many steps the caller has observed so far.
func (s *Stepper) Steps() int { return s.count }

// Result returns what TriggerSearch returned. Both are nil until Done.
func (s *Stepper) Result() (*astar.Result, error) {
	if !s.finished {
		return nil, nil
	}
	return s.result, s.err
}

func (s *Stepper) release() {
	if s.parked {
		s.parked = false
		s.resume <- struct{}{}
	}
}

func (s *Stepper) wait() {
	select {
	case <-s.steps:
		s.parked = true
		s.count++
	case <-s.done:
		s.finished = true
		s.cancel()
	}
}
