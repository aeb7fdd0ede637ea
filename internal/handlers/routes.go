package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// BasePath is the single logical path serving both create and resolve.
const BasePath = "/api/v1/tiny"

// RegisterRoutes registers the URL shortener routes.
func RegisterRoutes(api huma.API, urlHandler *URLHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-short-url",
		Method:        http.MethodPost,
		Path:          BasePath,
		Summary:       "Create short URL",
		Description:   "Derives the short code for a URL and stores the mapping. A later URL with the same code replaces it.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusCreated,
	}, urlHandler.CreateShortURL)

	huma.Register(api, huma.Operation{
		OperationID: "resolve-short-url",
		Method:      http.MethodGet,
		Path:        BasePath,
		Summary:     "Resolve short URL",
		Description: "Temporarily redirects to the URL stored for the code. Unknown codes return an empty 200 unless strict not-found is enabled.",
		Tags:        []string{"URLs"},
	}, urlHandler.ResolveShortURL)
}
