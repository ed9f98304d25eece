package source

// MainPageRequest identifies one homepage section.
// Data is the opaque key the adapter sends upstream, Name is what users see.
type MainPageRequest struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

func (r MainPageRequest) String() string {
	return r.Name
}

// SearchResult is a listing item: one title shown on a homepage section or search page.
type SearchResult struct {
	// Name is the display title.
	Name string `json:"name" jsonschema:"description=Display title of the listing item."`
	// URL is the absolute link to the detail page.
	URL string `json:"url" jsonschema:"description=Absolute URL of the detail page."`
	// Poster is the absolute poster image URL, if any.
	Poster string `json:"poster,omitempty" jsonschema:"description=Absolute poster URL."`
	Type   TvType `json:"type"`
	// Dubbed is set when the site only serves voiced releases.
	Dubbed bool `json:"dubbed"`

	// SourceID is the ID of the source that produced the item.
	SourceID string `json:"source_id,omitempty"`
}

func (r *SearchResult) String() string {
	return r.Name
}

// HomePage is one page of a homepage section.
type HomePage struct {
	Name    string          `json:"name"`
	Items   []*SearchResult `json:"items"`
	HasNext bool            `json:"has_next"`
}

// NewHomePage wraps listing items into a page. A non-empty page is assumed to have a successor.
func NewHomePage(name string, items []*SearchResult) *HomePage {
	if items == nil {
		items = []*SearchResult{}
	}
	return &HomePage{
		Name:    name,
		Items:   items,
		HasNext: len(items) > 0,
	}
}
