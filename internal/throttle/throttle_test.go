package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	floor   = 100 * time.Millisecond
	ceiling = time.Second
)

func TestThrottle_FailuresNeverDecreaseInterval(t *testing.T) {
	th := New(floor, ceiling)

	prev := th.MinInterval()
	for i := 0; i < 10; i++ {
		th.AdjustFailure()
		cur := th.MinInterval()
		assert.GreaterOrEqual(t, cur, prev)
		assert.LessOrEqual(t, cur, ceiling)
		prev = cur
	}
	assert.Equal(t, ceiling, th.MinInterval(), "repeated failures should saturate at the ceiling")
}

func TestThrottle_SuccessesNeverIncreaseInterval(t *testing.T) {
	th := New(floor, ceiling)

	// Push the interval up first.
	for i := 0; i < 6; i++ {
		th.AdjustFailure()
	}

	prev := th.MinInterval()
	for i := 0; i < 50; i++ {
		th.AdjustSuccess()
		cur := th.MinInterval()
		assert.LessOrEqual(t, cur, prev)
		assert.GreaterOrEqual(t, cur, floor)
		prev = cur
	}
	assert.Equal(t, floor, th.MinInterval(), "sustained success should converge to the floor")
}

func TestThrottle_SuccessAfterFailureDoesNotEaseImmediately(t *testing.T) {
	th := New(floor, ceiling)

	th.AdjustFailure()
	backedOff := th.MinInterval()
	require.Greater(t, backedOff, floor)

	// First success after a failure only clears the flag.
	th.AdjustSuccess()
	assert.Equal(t, backedOff, th.MinInterval())

	// The next one eases.
	th.AdjustSuccess()
	assert.Less(t, th.MinInterval(), backedOff)
}

func TestThrottle_QuotaBacksOffHarder(t *testing.T) {
	plain := New(floor, ceiling)
	quota := New(floor, ceiling)

	plain.AdjustFailure()
	quota.AdjustQuota()

	assert.Greater(t, quota.MinInterval(), plain.MinInterval())
}

func TestThrottle_WaitSpacesRequests(t *testing.T) {
	th := New(floor, ceiling)

	now := time.Now()
	th.now = func() time.Time { return now }

	var slept []time.Duration
	th.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	// First request goes through without delay.
	require.NoError(t, th.Wait(context.Background()))
	assert.Empty(t, slept)

	// Immediate second request must wait out the full interval.
	require.NoError(t, th.Wait(context.Background()))
	require.Len(t, slept, 1)
	assert.Equal(t, floor, slept[0])

	// After the interval has elapsed no sleep is needed.
	now = now.Add(2 * floor)
	require.NoError(t, th.Wait(context.Background()))
	assert.Len(t, slept, 1)
}

func TestThrottle_WaitHonorsContext(t *testing.T) {
	th := New(500*time.Millisecond, ceiling)

	require.NoError(t, th.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := th.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
