package services

import (
	"context"
	"testing"

	"github.com/hanbit-board/apiserver/internal/pagination"
	"github.com/hanbit-board/apiserver/types"
)

func TestPostListPageMath(t *testing.T) {
	posts := newFakePostRepo()
	posts.total = 25
	posts.list = make([]types.Post, 5)
	service := NewPostService(posts)

	returned, total, totalPages, err := service.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if posts.lastOffset != pagination.PostPageSize || posts.lastLimit != pagination.PostPageSize {
		t.Fatalf("query used offset %d limit %d, want %d and %d",
			posts.lastOffset, posts.lastLimit, pagination.PostPageSize, pagination.PostPageSize)
	}
	if total != 25 || totalPages != 2 {
		t.Fatalf("total = %d totalPages = %d, want 25 and 2", total, totalPages)
	}
	if len(returned) != 5 {
		t.Fatalf("expected 5 posts on the last page, got %d", len(returned))
	}
}

func TestPostListClampsPage(t *testing.T) {
	posts := newFakePostRepo()
	service := NewPostService(posts)

	if _, _, _, err := service.List(context.Background(), 0); err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if posts.lastOffset != 0 {
		t.Fatalf("page 0 should clamp to offset 0, got %d", posts.lastOffset)
	}
}

func TestPostCreateSetsAuthor(t *testing.T) {
	posts := newFakePostRepo()
	service := NewPostService(posts)

	post, err := service.Create(context.Background(), "alice@example.com", "제목", "본문입니다")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.AuthorID != "alice@example.com" {
		t.Fatalf("authorId = %q, want alice@example.com", post.AuthorID)
	}
	if post.ID == "" {
		t.Fatal("expected an id to be assigned")
	}
}
