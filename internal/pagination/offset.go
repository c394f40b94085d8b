// Package pagination holds the page arithmetic shared by the list
// endpoints: offset pages for posts and cursor pages for comments.
package pagination

// PostPageSize is the fixed page size of the post list.
const PostPageSize = 20

// OffsetPage describes a 1-based page over a counted collection.
type OffsetPage struct {
	Page int
	Size int
}

// NewOffsetPage clamps page to a minimum of 1. Pages past the end of
// the collection are valid and simply select nothing.
func NewOffsetPage(page, size int) OffsetPage {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = PostPageSize
	}
	return OffsetPage{Page: page, Size: size}
}

// Offset is the number of leading rows to skip.
func (p OffsetPage) Offset() int {
	return (p.Page - 1) * p.Size
}

// TotalPages is ceil(totalCount / size).
func (p OffsetPage) TotalPages(totalCount int) int {
	if totalCount <= 0 {
		return 0
	}
	return (totalCount + p.Size - 1) / p.Size
}
