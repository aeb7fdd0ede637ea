package handlers

// CreateShortURLRequest is the request body for creating a short URL.
type CreateShortURLRequest struct {
	Body struct {
		_   struct{} `additionalProperties:"true" json:"-"`
		URL string   `doc:"The URL to shorten, stored verbatim" example:"http://whalar.com" json:"url"`
	}
}

// CreateShortURLResponse carries the created short code as plain text.
type CreateShortURLResponse struct {
	Headers struct {
		Location    string `doc:"Where the short code resolves" header:"Location"`
		ContentType string `header:"Content-Type"`
	}
	Body []byte
}

// ResolveShortURLRequest is the request for resolving a short code.
type ResolveShortURLRequest struct {
	Code string `doc:"The short code" example:"0fe5e13014" query:"url" required:"true"`
}

// ResolveShortURLResponse is either a temporary redirect or an empty success.
type ResolveShortURLResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}
