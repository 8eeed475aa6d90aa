package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/drinkspot-pos/pkg/store"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		s := store.NewMemoryStore()

		_, err := s.Get(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		t.Parallel()

		s := store.NewMemoryStore()

		require.NoError(t, s.Set(ctx, store.KeyCart, []byte(`{"lines":[]}`)))

		got, err := s.Get(ctx, store.KeyCart)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"lines":[]}`), got)
	})

	t.Run("overwrite", func(t *testing.T) {
		t.Parallel()

		s := store.NewMemoryStore()

		require.NoError(t, s.Set(ctx, "k", []byte("one")))
		require.NoError(t, s.Set(ctx, "k", []byte("two")))

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("two"), got)
	})

	t.Run("returned value is a copy", func(t *testing.T) {
		t.Parallel()

		s := store.NewMemoryStore()
		require.NoError(t, s.Set(ctx, "k", []byte("abc")))

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		got[0] = 'x'

		again, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})
}
