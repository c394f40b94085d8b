package pagination

// CommentPageSize is the fixed page size of the comment list.
const CommentPageSize = 10

// CursorPage describes a seek-based page: the query resumes
// immediately after the row named by Cursor in the established order,
// so inserts before the cursor cannot shift the page.
type CursorPage struct {
	Cursor string
	Take   int
}

// NewCursorPage builds a cursor page. An empty cursor selects the
// first page.
func NewCursorPage(cursor string, take int) CursorPage {
	if take < 1 {
		take = CommentPageSize
	}
	return CursorPage{Cursor: cursor, Take: take}
}

// HasCursor reports whether the page resumes after a prior row.
func (p CursorPage) HasCursor() bool {
	return p.Cursor != ""
}

// NextCursor returns the id of the last returned row when the page
// came back full, meaning more rows may follow. It returns "" when the
// sequence is exhausted.
func (p CursorPage) NextCursor(returnedIDs []string) string {
	if len(returnedIDs) != p.Take {
		return ""
	}
	return returnedIDs[len(returnedIDs)-1]
}
