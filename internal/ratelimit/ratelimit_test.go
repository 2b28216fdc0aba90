package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_Burst(t *testing.T) {
	krl := New(1, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, krl.Allow("ip-1"), "request %d within burst", i)
	}
	assert.False(t, krl.Allow("ip-1"))
}

func TestAllow_IndependentKeys(t *testing.T) {
	krl := New(1, 1)

	assert.True(t, krl.Allow("ip-1"))
	assert.False(t, krl.Allow("ip-1"))

	// Exhausting one key doesn't affect another.
	assert.True(t, krl.Allow("ip-2"))
}

func TestWait_RespectsContext(t *testing.T) {
	krl := New(0.01, 1)
	require.True(t, krl.Allow("ip-1"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := krl.Wait(ctx, "ip-1")
	assert.Error(t, err)
}

func TestAllow_Refills(t *testing.T) {
	krl := New(100, 1)
	require.True(t, krl.Allow("ip-1"))
	require.False(t, krl.Allow("ip-1"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, krl.Allow("ip-1"))
}
