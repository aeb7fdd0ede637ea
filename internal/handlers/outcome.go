package handlers

import "net/http"

// resolveOutcome is what a resolve request produced. Each variant maps to
// exactly one transport response.
type resolveOutcome interface {
	response() *ResolveShortURLResponse
}

// redirectOutcome sends the caller to the stored URL. The redirect is
// temporary because the code may later be overwritten.
type redirectOutcome struct {
	location string
}

func (o redirectOutcome) response() *ResolveShortURLResponse {
	resp := &ResolveShortURLResponse{Status: http.StatusTemporaryRedirect}
	resp.Headers.Location = o.location

	return resp
}

// emptyOutcome is returned for unknown codes when strict not-found is off.
type emptyOutcome struct{}

func (emptyOutcome) response() *ResolveShortURLResponse {
	return &ResolveShortURLResponse{Status: http.StatusOK}
}
