package browser

import (
	"context"
	"math/rand"
	"time"
)

// RandomDelay waits for a random duration between min and max milliseconds,
// returning early with ctx.Err() if ctx is done first
func RandomDelay(ctx context.Context, min, max int) error {
	duration := min
	if max > min {
		duration = rand.Intn(max-min+1) + min
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Duration(duration) * time.Millisecond):
		return nil
	}
}
