package domain

import (
	"context"
	"net/url"
)

// CollectionRepository provides access to remote resource collections
type CollectionRepository interface {
	// FetchCollection fetches one page of a collection.
	// query carries optional filter parameters (e.g., search=<name>).
	// Errors wrap ErrRequestFailed or ErrSchemaMismatch.
	FetchCollection(ctx context.Context, kind ResourceKind, query url.Values) ([]Displayable, error)
}
