package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/tiny-go/internal/shortener"
	"go.uber.org/zap"
)

// Shortener is the core the handlers bind to HTTP.
type Shortener interface {
	Shorten(ctx context.Context, url string) (*shortener.ShortURL, error)
	Resolve(ctx context.Context, code shortener.Code) (*shortener.ShortURL, error)
}

// URLHandler handles URL shortening operations.
type URLHandler struct {
	shortener      Shortener
	strictNotFound bool
	logger         *zap.Logger
}

// NewURLHandler creates a new URL handler. When strictNotFound is set,
// resolving an unknown code returns 404 instead of an empty 200.
func NewURLHandler(s Shortener, strictNotFound bool, logger *zap.Logger) *URLHandler {
	return &URLHandler{
		shortener:      s,
		strictNotFound: strictNotFound,
		logger:         logger,
	}
}

func (h *URLHandler) CreateShortURL(ctx context.Context, req *CreateShortURLRequest) (*CreateShortURLResponse, error) {
	shortURL, err := h.shortener.Shorten(ctx, req.Body.URL)
	if err != nil {
		if isTimeout(err) {
			return nil, h.timeoutError(ctx, err)
		}

		h.logger.Error("failed to save url",
			zap.String("request_id", RequestMetaFromContext(ctx).RequestID),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to save url")
	}

	h.logger.Debug("short url created",
		zap.String("request_id", RequestMetaFromContext(ctx).RequestID),
		zap.String("code", string(shortURL.Code)),
		zap.String("url", shortURL.OriginalURL),
	)

	resp := &CreateShortURLResponse{}
	resp.Headers.Location = resolvePath(shortURL.Code)
	resp.Headers.ContentType = "text/plain; charset=utf-8"
	resp.Body = []byte(shortURL.Code)

	return resp, nil
}

func (h *URLHandler) ResolveShortURL(ctx context.Context, req *ResolveShortURLRequest) (*ResolveShortURLResponse, error) {
	outcome, err := h.resolve(ctx, shortener.Code(req.Code))
	if err != nil {
		return nil, err
	}

	return outcome.response(), nil
}

func (h *URLHandler) resolve(ctx context.Context, code shortener.Code) (resolveOutcome, error) {
	shortURL, err := h.shortener.Resolve(ctx, code)
	if err == nil {
		return redirectOutcome{location: shortURL.OriginalURL}, nil
	}

	if isTimeout(err) {
		return nil, h.timeoutError(ctx, err)
	}

	if !errors.Is(err, shortener.ErrNotFound) {
		h.logger.Error("failed to get url",
			zap.String("request_id", RequestMetaFromContext(ctx).RequestID),
			zap.String("code", string(code)),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to get url")
	}

	h.logger.Debug("short url not found",
		zap.String("request_id", RequestMetaFromContext(ctx).RequestID),
		zap.String("code", string(code)),
	)

	if h.strictNotFound {
		return nil, huma.Error404NotFound("short url not found")
	}

	return emptyOutcome{}, nil
}

// isTimeout reports whether the request context ended before the store was reached.
func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func (h *URLHandler) timeoutError(ctx context.Context, err error) error {
	h.logger.Warn("request timed out",
		zap.String("request_id", RequestMetaFromContext(ctx).RequestID),
		zap.Error(err),
	)

	return huma.NewError(http.StatusRequestTimeout, "request timed out")
}

func resolvePath(code shortener.Code) string {
	return BasePath + "?" + url.Values{"url": {string(code)}}.Encode()
}
