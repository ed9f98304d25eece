// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

import "context"

// Source defines the contract every site adapter implements.
//
// Adapters are stateless between calls: each operation performs its own
// sequential requests and returns.
type Source interface {
	// Name returns the display name of the site.
	Name() string

	// ID returns the unique identifier of the source.
	ID() string

	// Lang returns the content language of the site (e.g. "ru").
	Lang() string

	// Types returns the media types the site serves.
	Types() []TvType

	// MainPages returns the homepage sections the adapter can list.
	MainPages() []MainPageRequest

	// Homepage lists one page of a homepage section.
	Homepage(ctx context.Context, page int, request MainPageRequest) (*HomePage, error)

	// Search executes a query against the site.
	Search(ctx context.Context, query string) ([]*SearchResult, error)

	// Load fetches the detail page behind a listing URL, including its episodes.
	Load(ctx context.Context, url string) (*Detail, error)

	// LoadLinks resolves episode data into playable links.
	// Links and subtitles are emitted synchronously, in source order.
	LoadLinks(ctx context.Context, data string, isCasting bool, onSubtitle func(*Subtitle), onLink func(*ExtractorLink)) (bool, error)
}
