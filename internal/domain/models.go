package domain

// Item is a single catalog entry. Items are immutable once the catalog is built.
type Item struct {
	ID           string
	Title        string
	Category     string
	ThumbnailRef string // raw asset reference, may be empty
	ImageRef     string // raw asset reference, may be empty
	Views        int
	Likes        int

	// Resolved when the catalog is constructed, never at render time
	Thumbnail Asset
	Image     Asset
}

// HasImage reports whether the item carries a real image rather than a placeholder
func (i Item) HasImage() bool {
	return !i.Image.Placeholder
}

// Asset is the terminal stand-in for an image: a colored swatch with a label
type Asset struct {
	Name        string // base file name of the source asset ("" for placeholder)
	Label       string // short text drawn inside the swatch
	Color       string // lipgloss color for the swatch
	Placeholder bool
}

// Span is a contiguous run of a title tagged as matched or unmatched
type Span struct {
	Text    string
	Matched bool
}
