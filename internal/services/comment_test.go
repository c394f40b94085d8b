package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hanbit-board/apiserver/internal/pagination"
	"github.com/hanbit-board/apiserver/internal/store"
	"github.com/hanbit-board/apiserver/types"
)

func TestMayDeleteComment(t *testing.T) {
	tests := []struct {
		name          string
		actor         string
		commentAuthor string
		postAuthor    string
		want          bool
	}{
		{"comment author", "alice@example.com", "alice@example.com", "bob@example.com", true},
		{"post author", "bob@example.com", "alice@example.com", "bob@example.com", true},
		{"author of both", "alice@example.com", "alice@example.com", "alice@example.com", true},
		{"third party", "carol@example.com", "alice@example.com", "bob@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MayDeleteComment(tt.actor, tt.commentAuthor, tt.postAuthor); got != tt.want {
				t.Fatalf("MayDeleteComment = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateCommentRequiresPost(t *testing.T) {
	comments := newFakeCommentRepo()
	posts := newFakePostRepo()
	service := NewCommentService(comments, posts)

	_, err := service.Create(context.Background(), "alice@example.com", "missing-post", "첫 댓글입니다")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(comments.comments) != 0 {
		t.Fatal("expected no comment to be created")
	}
}

func TestCreateComment(t *testing.T) {
	comments := newFakeCommentRepo()
	posts := newFakePostRepo(types.Post{ID: "post-1", AuthorID: "bob@example.com"})
	service := NewCommentService(comments, posts)

	comment, err := service.Create(context.Background(), "alice@example.com", "post-1", "첫 댓글입니다")
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if comment.PostID != "post-1" || comment.AuthorID != "alice@example.com" {
		t.Fatalf("unexpected comment %+v", comment)
	}
}

func TestListCommentsNextCursor(t *testing.T) {
	comments := newFakeCommentRepo()
	posts := newFakePostRepo(types.Post{ID: "post-1"})
	service := NewCommentService(comments, posts)

	// Full page: the next cursor names the last returned row.
	for i := 0; i < pagination.CommentPageSize; i++ {
		comments.listed = append(comments.listed, types.Comment{ID: fmt.Sprintf("comment-%d", i)})
	}
	returned, nextCursor, err := service.List(context.Background(), "post-1", "")
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(returned) != pagination.CommentPageSize {
		t.Fatalf("expected a full page, got %d", len(returned))
	}
	if nextCursor != "comment-9" {
		t.Fatalf("nextCursor = %q, want comment-9", nextCursor)
	}

	// Short page: the sequence is exhausted.
	comments.listed = comments.listed[:5]
	returned, nextCursor, err = service.List(context.Background(), "post-1", "comment-9")
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(returned) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(returned))
	}
	if nextCursor != "" {
		t.Fatalf("nextCursor = %q, want empty", nextCursor)
	}
}

func TestListCommentsRequiresPost(t *testing.T) {
	service := NewCommentService(newFakeCommentRepo(), newFakePostRepo())

	_, _, err := service.List(context.Background(), "missing-post", "")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCommentAuthorization(t *testing.T) {
	tests := []struct {
		name        string
		actor       string
		wantErr     error
		wantDeleted bool
	}{
		{"comment author may delete", "alice@example.com", nil, true},
		{"post author may delete", "bob@example.com", nil, true},
		{"third party is forbidden", "carol@example.com", ErrForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := newFakeCommentRepo()
			comments.comments["comment-1"] = types.Comment{
				ID:       "comment-1",
				AuthorID: "alice@example.com",
				PostID:   "post-1",
			}
			comments.postAuthors["post-1"] = "bob@example.com"
			service := NewCommentService(comments, newFakePostRepo())

			err := service.Delete(context.Background(), tt.actor, "comment-1")
			if tt.wantErr == nil && err != nil {
				t.Fatalf("delete: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if deleted := len(comments.deleted) == 1; deleted != tt.wantDeleted {
				t.Fatalf("deleted = %v, want %v", deleted, tt.wantDeleted)
			}
		})
	}
}

func TestDeleteCommentMissing(t *testing.T) {
	service := NewCommentService(newFakeCommentRepo(), newFakePostRepo())

	err := service.Delete(context.Background(), "alice@example.com", "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
