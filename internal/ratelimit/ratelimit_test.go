package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/mrz1836/gfshare/internal/ratelimit"
)

func TestAllowRespectsBurst(t *testing.T) {
	t.Parallel()

	l := ratelimit.New(rate.Limit(1), 2)
	assert.True(t, l.Allow("k"))
	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))
}

func TestKeysAreIndependent(t *testing.T) {
	t.Parallel()

	l := ratelimit.New(rate.Limit(1), 1)
	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
	assert.False(t, l.Allow("a"))
}

func TestWaitReturnsOnContextCancel(t *testing.T) {
	t.Parallel()

	l := ratelimit.New(rate.Limit(0.001), 1)
	require.True(t, l.Allow("slow"))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := l.Wait(ctx, "slow")
	require.Error(t, err)
}
