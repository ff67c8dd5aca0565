package stopwatch

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// Limit is where the display stops counting.
const Limit = 99 * time.Minute

// Stopwatch counts whole seconds of play. One goroutine drives Tick (usually
// through Run) while another starts, stops and reads it.
type Stopwatch struct {
	seconds atomic.Int64
	running atomic.Bool
}

func (s *Stopwatch) Start() { s.running.Store(true) }

func (s *Stopwatch) Stop() { s.running.Store(false) }

func (s *Stopwatch) Reset() {
	s.running.Store(false)
	s.seconds.Store(0)
}

func (s *Stopwatch) Running() bool { return s.running.Load() }

func (s *Stopwatch) Elapsed() time.Duration {
	return time.Duration(s.seconds.Load()) * time.Second
}

// Tick adds one second if the stopwatch is running. Once Limit is reached
// the stopwatch stops itself.
func (s *Stopwatch) Tick() bool {
	if !s.running.Load() {
		return false
	}
	if s.Elapsed() >= Limit {
		s.Stop()
		return false
	}
	s.seconds.Add(1)
	return true
}

func (s *Stopwatch) String() string {
	return Format(s.Elapsed())
}

// Run ticks once per interval until ctx is done.
func (s *Stopwatch) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Format renders d as MM:SS.
func Format(d time.Duration) string {
	seconds := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
