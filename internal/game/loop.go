package game

import (
	"context"
	"log"
	"time"
)

// DefaultTickInterval is the nominal time between simulation ticks.
const DefaultTickInterval = time.Second

// Loop drives World.Advance at a fixed cadence. Each tick measures the time
// the advance consumed and sleeps only the remainder of the interval; a tick
// that overruns the interval starts the next one immediately, without
// queueing a backlog.
type Loop struct {
	world    *World
	interval time.Duration
}

// NewLoop builds a scheduler for the world. A non-positive interval falls
// back to DefaultTickInterval.
func NewLoop(world *World, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Loop{world: world, interval: interval}
}

// Run advances the world until the context is cancelled. It is meant to be
// started once as a background goroutine.
func (l *Loop) Run(ctx context.Context) {
	log.Printf("game loop started (tick %v)", l.interval)
	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("game loop stopped: %v", ctx.Err())
			return
		case <-timer.C:
		}

		start := time.Now()
		l.world.Advance()

		remaining := l.interval - time.Since(start)
		if remaining < 0 {
			remaining = 0
		}
		timer.Reset(remaining)
	}
}
