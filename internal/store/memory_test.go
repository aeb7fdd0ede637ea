package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/serroba/tiny-go/internal/shortener"
	"github.com/serroba/tiny-go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Save(t *testing.T) {
	t.Run("saves url successfully", func(t *testing.T) {
		s := store.NewMemoryStore()

		err := s.Save(context.Background(), &shortener.ShortURL{Code: "abc123", OriginalURL: "https://example.com"})

		require.NoError(t, err)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("overwrites existing url", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Save(context.Background(), &shortener.ShortURL{Code: "abc123", OriginalURL: "https://example.com"})

		err := s.Save(context.Background(), &shortener.ShortURL{Code: "abc123", OriginalURL: "https://other.com"})
		require.NoError(t, err)

		got, _ := s.GetByCode(context.Background(), "abc123")
		assert.Equal(t, "https://other.com", got.OriginalURL)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("does not keep caller's pointer", func(t *testing.T) {
		s := store.NewMemoryStore()
		shortURL := &shortener.ShortURL{Code: "abc123", OriginalURL: "https://example.com"}
		_ = s.Save(context.Background(), shortURL)

		shortURL.OriginalURL = "https://mutated.com"

		got, _ := s.GetByCode(context.Background(), "abc123")
		assert.Equal(t, "https://example.com", got.OriginalURL)
	})
}

func TestMemoryStore_GetByCode(t *testing.T) {
	t.Run("returns url when found", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Save(context.Background(), &shortener.ShortURL{Code: "abc123", OriginalURL: "https://example.com"})

		got, err := s.GetByCode(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got.OriginalURL)
	})

	t.Run("returns ErrNotFound when code does not exist", func(t *testing.T) {
		s := store.NewMemoryStore()

		got, err := s.GetByCode(context.Background(), "notfound")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("returned entry is a copy", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Save(context.Background(), &shortener.ShortURL{Code: "abc123", OriginalURL: "https://example.com"})

		got, _ := s.GetByCode(context.Background(), "abc123")
		got.OriginalURL = "https://mutated.com"

		again, _ := s.GetByCode(context.Background(), "abc123")
		assert.Equal(t, "https://example.com", again.OriginalURL)
	})
}

func TestMemoryStore_Concurrent(t *testing.T) {
	const n = 200

	s := store.NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup

	for i := range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			url := fmt.Sprintf("https://example.com/%d", i)
			_ = s.Save(ctx, &shortener.ShortURL{Code: shortener.DeriveCode(url), OriginalURL: url})
		}()
	}

	wg.Wait()
	require.Equal(t, n, s.Len())

	got := make([]string, n)

	for i := range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			url := fmt.Sprintf("https://example.com/%d", i)

			entry, err := s.GetByCode(ctx, shortener.DeriveCode(url))
			if err == nil {
				got[i] = entry.OriginalURL
			}
		}()
	}

	wg.Wait()

	for i := range n {
		assert.Equal(t, fmt.Sprintf("https://example.com/%d", i), got[i])
	}
}

func TestMemoryStore_ConcurrentReadWriteSameCode(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	values := map[string]bool{"https://a.com": true, "https://b.com": true}

	_ = s.Save(ctx, &shortener.ShortURL{Code: "k", OriginalURL: "https://a.com"})

	var wg sync.WaitGroup

	for i := range 100 {
		wg.Add(2)

		go func() {
			defer wg.Done()

			url := "https://a.com"
			if i%2 == 0 {
				url = "https://b.com"
			}

			_ = s.Save(ctx, &shortener.ShortURL{Code: "k", OriginalURL: url})
		}()

		go func() {
			defer wg.Done()

			entry, err := s.GetByCode(ctx, "k")
			if assert.NoError(t, err) {
				assert.True(t, values[entry.OriginalURL], entry.OriginalURL)
			}
		}()
	}

	wg.Wait()
}

func TestMemoryStore_Ping(t *testing.T) {
	s := store.NewMemoryStore()

	assert.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, s.Shutdown())
}
