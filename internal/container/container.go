package container

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/samber/do"
	"github.com/serroba/tiny-go/internal/handlers"
	"github.com/serroba/tiny-go/internal/health"
	"github.com/serroba/tiny-go/internal/logging"
	"github.com/serroba/tiny-go/internal/middleware"
	"github.com/serroba/tiny-go/internal/shortener"
	"github.com/serroba/tiny-go/internal/store"
	"go.uber.org/zap"
)

type Options struct {
	Host            string `default:"127.0.0.1" help:"Host to listen on"                                    short:"H"`
	Port            int    `default:"3000"      help:"Port to listen on"                                    short:"p"`
	RequestTimeout  int    `default:"10"        help:"Request timeout in seconds"                           short:"t"`
	HeaderTimeout   int    `default:"10"        help:"Timeout for reading request headers in seconds"`
	ShutdownTimeout int    `default:"30"        help:"Graceful shutdown timeout in seconds"`
	LogLevel        string `default:"debug"     help:"Log level (debug, info, warn, error)"                 short:"l"`
	LogFormat       string `default:"console"   help:"Log format (console or json)"                         short:"f"`
	StrictNotFound  bool   `default:"false"     help:"Return 404 instead of an empty 200 for unknown codes"`
}

// LoggerPackage provides the application logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		opts := do.MustInvoke[*Options](i)

		return logging.New(opts.LogLevel, opts.LogFormat)
	})
}

// StorePackage provides the process-wide link store. It is the only shared
// mutable state and is handed to consumers through the injector.
func StorePackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*store.MemoryStore, error) {
		return store.NewMemoryStore(), nil
	})
}

// ShortenerPackage provides the shortener service bound to the link store.
func ShortenerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*shortener.Service, error) {
		memStore := do.MustInvoke[*store.MemoryStore](i)

		return shortener.NewService(memStore, shortener.DeriveCode), nil
	})
}

// HTTPPackage provides the chi router and the huma API with all routes registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*chi.Mux, error) {
		opts := do.MustInvoke[*Options](i)

		router := chi.NewMux()
		router.Use(chimiddleware.Recoverer)
		router.Use(chimiddleware.Timeout(time.Duration(opts.RequestTimeout) * time.Second))

		return router, nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		router := do.MustInvoke[*chi.Mux](i)
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		api := humachi.New(router, huma.DefaultConfig("Tiny URL", "1.0.0"))
		api.UseMiddleware(middleware.RequestMeta(api))
		api.UseMiddleware(middleware.AccessLog(logger))

		svc := do.MustInvoke[*shortener.Service](i)
		handlers.RegisterRoutes(api, handlers.NewURLHandler(svc, opts.StrictNotFound, logger))

		memStore := do.MustInvoke[*store.MemoryStore](i)
		health.RegisterRoutes(api, health.NewHandler(memStore))

		return api, nil
	})
}

// Register wires every package the server needs.
func Register(injector *do.Injector, options *Options) {
	do.ProvideValue(injector, options)
	LoggerPackage(injector)
	StorePackage(injector)
	ShortenerPackage(injector)
	HTTPPackage(injector)
}
