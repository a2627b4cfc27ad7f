package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClockSleep(t *testing.T) {
	clock := RealClock{}

	err := clock.Sleep(context.Background(), time.Millisecond)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = clock.Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}
