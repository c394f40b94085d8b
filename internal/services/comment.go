package services

import (
	"context"
	"fmt"

	"github.com/hanbit-board/apiserver/internal/pagination"
	"github.com/hanbit-board/apiserver/types"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment types.Comment) (types.Comment, error)
	ListAfter(ctx context.Context, postID, cursor string, limit int) ([]types.Comment, error)
	GetWithPostAuthor(ctx context.Context, id string) (types.Comment, string, error)
	Delete(ctx context.Context, id string) error
}

// CommentService encapsulates comment use-cases.
type CommentService struct {
	comments CommentRepository
	posts    PostRepository
}

func NewCommentService(comments CommentRepository, posts PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// Create attaches a comment to a post. The parent post must exist;
// store.ErrNotFound propagates when it does not.
func (s *CommentService) Create(ctx context.Context, authorID, postID, content string) (types.Comment, error) {
	post, err := s.posts.Get(ctx, postID)
	if err != nil {
		return types.Comment{}, err
	}

	comment, err := s.comments.Create(ctx, types.Comment{
		Content:  content,
		AuthorID: authorID,
		PostID:   post.ID,
	})
	if err != nil {
		return types.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// List returns one cursor page of a post's comments, newest first,
// along with the cursor for the next page ("" when exhausted).
func (s *CommentService) List(ctx context.Context, postID, cursor string) ([]types.Comment, string, error) {
	if _, err := s.posts.Get(ctx, postID); err != nil {
		return nil, "", err
	}

	page := pagination.NewCursorPage(cursor, pagination.CommentPageSize)
	comments, err := s.comments.ListAfter(ctx, postID, page.Cursor, page.Take)
	if err != nil {
		return nil, "", err
	}

	ids := make([]string, len(comments))
	for i, comment := range comments {
		ids[i] = comment.ID
	}
	return comments, page.NextCursor(ids), nil
}

// Delete removes a comment if the actor owns it or owns the parent
// post. Returns store.ErrNotFound for a missing comment and
// ErrForbidden for anyone else.
func (s *CommentService) Delete(ctx context.Context, actorID, commentID string) error {
	comment, postAuthorID, err := s.comments.GetWithPostAuthor(ctx, commentID)
	if err != nil {
		return err
	}

	if !MayDeleteComment(actorID, comment.AuthorID, postAuthorID) {
		return ErrForbidden
	}

	return s.comments.Delete(ctx, commentID)
}

// MayDeleteComment reports whether the actor may delete a comment:
// the comment's author always may, and so may the author of the post
// the comment is attached to.
func MayDeleteComment(actorID, commentAuthorID, postAuthorID string) bool {
	return actorID == commentAuthorID || actorID == postAuthorID
}
