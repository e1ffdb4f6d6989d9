package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopDefaultsInterval(t *testing.T) {
	w, _, _ := twoRoomWorld()
	l := NewLoop(w, 0)
	assert.Equal(t, DefaultTickInterval, l.interval)
}

func TestLoopAdvancesWorldUntilCancelled(t *testing.T) {
	w, _, trail := twoRoomWorld()
	trail.AddSpawnRule(spawnTemplate("a rat"), 1)

	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop(w, 5*time.Millisecond)
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(trail.Mobs()) == 1 },
		time.Second, time.Millisecond, "loop never advanced the world")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after cancellation")
	}
}
