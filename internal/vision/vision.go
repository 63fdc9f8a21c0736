package vision

import "context"

// Request is a single vision-model query: a fixed prompt plus an image staged
// on disk for the duration of the request. Model overrides the provider's
// default when set.
type Request struct {
	Prompt    string
	Model     string
	ImagePath string
	MIMEType  string
}

// Querier answers one prompt about one image and returns the raw model text.
// Implementations read the staged file themselves and must respect ctx
// cancellation. An empty response with a nil error means the model returned
// nothing; the caller decides how to surface that.
type Querier interface {
	Query(ctx context.Context, req Request) (string, error)
}
