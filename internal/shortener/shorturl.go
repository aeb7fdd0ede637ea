package shortener

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no short URL exists for a code.
var ErrNotFound = errors.New("short url not found")

// Code represents a short URL code.
type Code string

// ShortURL represents a shortened URL entity.
type ShortURL struct {
	Code        Code
	OriginalURL string
	CreatedAt   time.Time
}

// Repository defines the storage operations the shortener needs.
// Save inserts the mapping or overwrites the URL already stored for the code.
type Repository interface {
	Save(ctx context.Context, shortURL *ShortURL) error
	GetByCode(ctx context.Context, code Code) (*ShortURL, error)
}
