//go:build unit

package sessionstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"miccheck-web/internal/domain/booking"
	"miccheck-web/internal/domain/spot"
	"miccheck-web/internal/infra/sessionstore"
	"miccheck-web/internal/pkg/clock"
	"miccheck-web/internal/pkg/config"
	"miccheck-web/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 2, 14, 18, 0, 0, 0, time.UTC)

func newStore(t *testing.T, ttl time.Duration) (*sessionstore.Store, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(baseTime)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return sessionstore.NewStore(config.SessionConfig{TTL: ttl}, clk, logger), clk
}

func sampleForm() *booking.Form {
	return booking.NewForm([]spot.Spot{
		{ID: 1, ShowID: 1, ShowDate: "2026-02-14", Time: "19:30:00", Price: "150.00"},
		{ID: 2, ShowID: 1, ShowDate: "2026-02-14", Time: "19:40:00", Price: "150.00"},
	})
}

func TestStore_GetPut(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown session", func(t *testing.T) {
		store, _ := newStore(t, time.Hour)
		_, err := store.Get(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrSessionNotFound))
	})

	t.Run("nil form rejected", func(t *testing.T) {
		store, _ := newStore(t, time.Hour)
		assert.Error(t, store.Put(ctx, uuid.New(), nil))
		assert.Zero(t, store.Len())
	})

	t.Run("returns a clone", func(t *testing.T) {
		store, _ := newStore(t, time.Hour)
		id := uuid.New()
		require.NoError(t, store.Put(ctx, id, sampleForm()))

		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		require.NoError(t, got.Toggle(1))

		again, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, again.SelectedCount(), "mutating a returned form must not reach the store")
	})
}

func TestStore_TTL(t *testing.T) {
	ctx := context.Background()

	t.Run("access extends the lifetime", func(t *testing.T) {
		store, clk := newStore(t, time.Hour)
		id := uuid.New()
		require.NoError(t, store.Put(ctx, id, sampleForm()))

		clk.Add(50 * time.Minute)
		_, err := store.Get(ctx, id)
		require.NoError(t, err)

		clk.Add(50 * time.Minute)
		_, err = store.Get(ctx, id)
		assert.NoError(t, err)
	})

	t.Run("idle session expires", func(t *testing.T) {
		store, clk := newStore(t, time.Hour)
		id := uuid.New()
		require.NoError(t, store.Put(ctx, id, sampleForm()))

		clk.Add(61 * time.Minute)
		_, err := store.Get(ctx, id)
		assert.True(t, errs.Is(err, errs.ErrSessionExpired))

		_, err = store.Get(ctx, id)
		assert.True(t, errs.Is(err, errs.ErrSessionNotFound), "expired entry is dropped")
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		store, clk := newStore(t, 0)
		id := uuid.New()
		require.NoError(t, store.Put(ctx, id, sampleForm()))

		clk.Add(30 * 24 * time.Hour)
		_, err := store.Get(ctx, id)
		assert.NoError(t, err)
	})
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies changes", func(t *testing.T) {
		store, _ := newStore(t, time.Hour)
		id := uuid.New()
		require.NoError(t, store.Put(ctx, id, sampleForm()))

		got, err := store.Update(ctx, id, func(f *booking.Form) error {
			return f.Toggle(2)
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, got.Selection().IDs())

		stored, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, stored.Selection().IDs())
	})

	t.Run("keeps changes when fn fails", func(t *testing.T) {
		store, _ := newStore(t, time.Hour)
		id := uuid.New()
		require.NoError(t, store.Put(ctx, id, sampleForm()))

		_, err := store.Update(ctx, id, func(f *booking.Form) error {
			_, err := f.BuildRequest()
			return err
		})
		require.Error(t, err)

		stored, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, booking.MsgSelectAtLeastOne, stored.SubmitError())
	})

	t.Run("missing session", func(t *testing.T) {
		store, _ := newStore(t, time.Hour)
		called := false
		_, err := store.Update(ctx, uuid.New(), func(*booking.Form) error {
			called = true
			return nil
		})
		assert.True(t, errs.Is(err, errs.ErrSessionNotFound))
		assert.False(t, called)
	})
}

func TestStore_EvictExpired(t *testing.T) {
	ctx := context.Background()
	store, clk := newStore(t, time.Hour)

	stale, fresh := uuid.New(), uuid.New()
	require.NoError(t, store.Put(ctx, stale, sampleForm()))
	clk.Add(45 * time.Minute)
	require.NoError(t, store.Put(ctx, fresh, sampleForm()))
	clk.Add(30 * time.Minute)

	assert.Equal(t, 1, store.EvictExpired())
	assert.Equal(t, 1, store.Len())

	_, err := store.Get(ctx, fresh)
	assert.NoError(t, err)

	store.Delete(ctx, fresh)
	assert.Zero(t, store.Len())
}

func TestStore_RunJanitorStopsWithContext(t *testing.T) {
	store, _ := newStore(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		store.RunJanitor(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}
