package crawler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter_PerHost(t *testing.T) {
	hl := NewHostLimiter(1, 1)
	ctx := context.Background()

	require.NoError(t, hl.WaitURL(ctx, "https://www.linkedin.com/jobs/search"))
	// a different host has its own bucket
	require.NoError(t, hl.WaitURL(ctx, "https://example.test/"))

	// same host again must wait for a token
	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	assert.Error(t, hl.WaitURL(short, "https://www.linkedin.com/jobs/view/1"))
}

func TestHostLimiter_Disabled(t *testing.T) {
	hl := NewHostLimiter(0, 0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 100; i++ {
		require.NoError(t, hl.WaitURL(ctx, "https://www.linkedin.com/"))
	}
}

func TestRequestQueue_DrainsWhenIdle(t *testing.T) {
	q := newRequestQueue()
	q.push(NewRequest(KindSearch, "seed"))

	req, ok := q.next()
	require.True(t, ok)
	assert.Equal(t, "seed", req.URL)

	q.done(NewRequest(KindJobListing, "a"))
	req, ok = q.next()
	require.True(t, ok)
	assert.Equal(t, KindJobListing, req.Kind)

	q.done()
	_, ok = q.next()
	assert.False(t, ok)
}
