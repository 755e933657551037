package broadcast_test

import (
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/storefind"
	"github.com/fwojciec/storefind/broadcast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func state(query string) storefind.FilterState {
	return storefind.FilterState{
		Category: storefind.CategoryAll,
		SortBy:   storefind.SortDefault,
		Query:    query,
		IssuedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

// receive returns the next pending state without blocking.
func receive(t *testing.T, sub *broadcast.Subscription) (storefind.FilterState, bool) {
	t.Helper()
	select {
	case s, ok := <-sub.C():
		return s, ok
	default:
		t.Fatal("no state pending")
		return storefind.FilterState{}, false
	}
}

func assertEmpty(t *testing.T, sub *broadcast.Subscription) {
	t.Helper()
	select {
	case s, ok := <-sub.C():
		t.Fatalf("unexpected receive: %+v (open=%v)", s, ok)
	default:
	}
}

func TestHub_Publish(t *testing.T) {
	t.Parallel()

	t.Run("delivers to every subscriber", func(t *testing.T) {
		t.Parallel()

		hub := broadcast.NewHub()
		a := hub.Subscribe()
		b := hub.Subscribe()

		hub.Publish(state("lego"))

		got, ok := receive(t, a)
		require.True(t, ok)
		assert.Equal(t, "lego", got.Query)
		got, ok = receive(t, b)
		require.True(t, ok)
		assert.Equal(t, "lego", got.Query)
	})

	t.Run("keeps only the newest undelivered state", func(t *testing.T) {
		t.Parallel()

		hub := broadcast.NewHub()
		sub := hub.Subscribe()

		hub.Publish(state("first"))
		hub.Publish(state("second"))
		hub.Publish(state("third"))

		got, ok := receive(t, sub)
		require.True(t, ok)
		assert.Equal(t, "third", got.Query)
		assertEmpty(t, sub)
	})

	t.Run("replays last state to late subscribers", func(t *testing.T) {
		t.Parallel()

		hub := broadcast.NewHub()
		hub.Publish(state("sofa"))

		sub := hub.Subscribe()

		got, ok := receive(t, sub)
		require.True(t, ok)
		assert.Equal(t, "sofa", got.Query)

		last, ok := hub.Last()
		require.True(t, ok)
		assert.Equal(t, "sofa", last.Query)
	})

	t.Run("new subscriber without history receives nothing", func(t *testing.T) {
		t.Parallel()

		hub := broadcast.NewHub()
		sub := hub.Subscribe()

		assertEmpty(t, sub)
		_, ok := hub.Last()
		assert.False(t, ok)
	})

	t.Run("concurrent publishers never block", func(t *testing.T) {
		t.Parallel()

		hub := broadcast.NewHub()
		sub := hub.Subscribe()

		var wg sync.WaitGroup
		for n := 0; n < 32; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				hub.Publish(state("x"))
			}()
		}
		wg.Wait()

		got, ok := receive(t, sub)
		require.True(t, ok)
		assert.Equal(t, "x", got.Query)
		assertEmpty(t, sub)
	})
}

func TestSubscription_Close(t *testing.T) {
	t.Parallel()

	t.Run("delivers pending state then closes", func(t *testing.T) {
		t.Parallel()

		hub := broadcast.NewHub()
		sub := hub.Subscribe()
		hub.Publish(state("lamp"))

		sub.Close()
		sub.Close()

		got, ok := receive(t, sub)
		require.True(t, ok)
		assert.Equal(t, "lamp", got.Query)
		_, ok = receive(t, sub)
		assert.False(t, ok)
		assert.Equal(t, 0, hub.Len())
	})

	t.Run("stops receiving after close", func(t *testing.T) {
		t.Parallel()

		hub := broadcast.NewHub()
		sub := hub.Subscribe()
		other := hub.Subscribe()
		sub.Close()

		hub.Publish(state("mug"))

		_, ok := receive(t, sub)
		assert.False(t, ok)
		got, ok := receive(t, other)
		require.True(t, ok)
		assert.Equal(t, "mug", got.Query)
		assert.Equal(t, 1, hub.Len())
	})
}

func TestHub_Close(t *testing.T) {
	t.Parallel()

	hub := broadcast.NewHub()
	sub := hub.Subscribe()

	hub.Close()
	hub.Publish(state("ignored"))

	_, ok := receive(t, sub)
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Len())

	late := hub.Subscribe()
	_, ok = receive(t, late)
	assert.False(t, ok)

	sub.Close()
	hub.Close()
}
