package stopwatch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "00:00", Format(0))
	assert.Equal(t, "00:09", Format(9*time.Second))
	assert.Equal(t, "01:05", Format(65*time.Second))
	assert.Equal(t, "99:00", Format(Limit))
	assert.Equal(t, "00:01", Format(1500*time.Millisecond))
}

func TestTick(t *testing.T) {
	var s Stopwatch
	assert.False(t, s.Tick())
	assert.Equal(t, "00:00", s.String())

	s.Start()
	for range 61 {
		assert.True(t, s.Tick())
	}
	assert.Equal(t, "01:01", s.String())

	s.Stop()
	assert.False(t, s.Tick())
	assert.Equal(t, 61*time.Second, s.Elapsed())

	s.Reset()
	assert.False(t, s.Running())
	assert.Equal(t, time.Duration(0), s.Elapsed())
}

func TestTickStopsAtLimit(t *testing.T) {
	var s Stopwatch
	s.Start()
	for s.Tick() {
	}
	assert.Equal(t, Limit, s.Elapsed())
	assert.False(t, s.Running())
	assert.Equal(t, "99:00", s.String())
}

func TestRun(t *testing.T) {
	var s Stopwatch
	s.Start()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, time.Millisecond) }()

	assert.Eventually(t, func() bool {
		return s.Elapsed() >= 3*time.Second
	}, time.Second, time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
