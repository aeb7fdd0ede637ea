package shortener

import (
	"context"
	"time"
)

// CodeDeriver computes the short code for a URL.
type CodeDeriver func(url string) Code

// Service binds a CodeDeriver to a Repository.
type Service struct {
	store      Repository
	deriveCode CodeDeriver
	now        func() time.Time
}

// NewService creates a shortener service backed by the given repository.
func NewService(store Repository, deriver CodeDeriver) *Service {
	return &Service{
		store:      store,
		deriveCode: deriver,
		now:        time.Now,
	}
}

// Shorten derives the code for url and stores the mapping, replacing any
// URL previously stored under the same code.
func (s *Service) Shorten(ctx context.Context, url string) (*ShortURL, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shortURL := &ShortURL{
		Code:        s.deriveCode(url),
		OriginalURL: url,
		CreatedAt:   s.now(),
	}

	if err := s.store.Save(ctx, shortURL); err != nil {
		return nil, err
	}

	return shortURL, nil
}

// Resolve returns the short URL stored for code, or ErrNotFound.
func (s *Service) Resolve(ctx context.Context, code Code) (*ShortURL, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.store.GetByCode(ctx, code)
}
