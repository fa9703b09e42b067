package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"omsbridge/internal/cache"
	"omsbridge/mocks"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (s *memStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", s.getErr
	}
	val, ok := s.data[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return val, nil
}

func (s *memStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

func TestTransporterCache_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("miss_populates_then_hit", func(t *testing.T) {
		inner := new(mocks.MockTransporterRegistry)
		inner.On("Resolve", mock.Anything, "TRANSP1").Return(true, nil).Once()

		store := newMemStore()
		reg := cache.NewTransporterCache(inner, store, time.Minute)

		ok, err := reg.Resolve(ctx, "TRANSP1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "1", store.data["transporter:TRANSP1"])

		// second call served from cache; the Once() above enforces it
		ok, err = reg.Resolve(ctx, "TRANSP1")
		require.NoError(t, err)
		assert.True(t, ok)
		inner.AssertExpectations(t)
	})

	t.Run("negative_verdicts_cached_too", func(t *testing.T) {
		inner := new(mocks.MockTransporterRegistry)
		inner.On("Resolve", mock.Anything, "GHOST").Return(false, nil).Once()

		store := newMemStore()
		reg := cache.NewTransporterCache(inner, store, time.Minute)

		ok, err := reg.Resolve(ctx, "GHOST")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = reg.Resolve(ctx, "GHOST")
		require.NoError(t, err)
		assert.False(t, ok)
		inner.AssertExpectations(t)
	})

	t.Run("store_failure_degrades_to_direct_lookup", func(t *testing.T) {
		inner := new(mocks.MockTransporterRegistry)
		inner.On("Resolve", mock.Anything, "TRANSP1").Return(true, nil)

		store := newMemStore()
		store.getErr = errors.New("redis down")
		store.setErr = errors.New("redis down")
		reg := cache.NewTransporterCache(inner, store, time.Minute)

		ok, err := reg.Resolve(ctx, "TRANSP1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("inner_failure_propagates", func(t *testing.T) {
		inner := new(mocks.MockTransporterRegistry)
		inner.On("Resolve", mock.Anything, "TRANSP1").Return(false, errors.New("db down"))

		reg := cache.NewTransporterCache(inner, newMemStore(), time.Minute)

		_, err := reg.Resolve(ctx, "TRANSP1")
		assert.Error(t, err)
	})
}
