package pagination

import (
	"fmt"
	"testing"
)

func TestCursorPageNextCursor(t *testing.T) {
	page := NewCursorPage("", CommentPageSize)

	full := make([]string, CommentPageSize)
	for i := range full {
		full[i] = fmt.Sprintf("comment-%d", i)
	}
	if got := page.NextCursor(full); got != "comment-9" {
		t.Fatalf("nextCursor = %q, want last id of a full page", got)
	}

	partial := full[:5]
	if got := page.NextCursor(partial); got != "" {
		t.Fatalf("nextCursor = %q, want empty for a short page", got)
	}

	if got := page.NextCursor(nil); got != "" {
		t.Fatalf("nextCursor = %q, want empty for no rows", got)
	}
}

func TestNewCursorPageDefaults(t *testing.T) {
	page := NewCursorPage("abc", 0)
	if page.Take != CommentPageSize {
		t.Fatalf("take = %d, want default %d", page.Take, CommentPageSize)
	}
	if !page.HasCursor() {
		t.Fatal("expected HasCursor for a non-empty cursor")
	}
	if NewCursorPage("", 10).HasCursor() {
		t.Fatal("expected no cursor for an empty cursor")
	}
}
