package services

import (
	"context"

	"github.com/hanbit-board/apiserver/internal/pagination"
	"github.com/hanbit-board/apiserver/types"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post types.Post) (types.Post, error)
	List(ctx context.Context, offset, limit int) ([]types.Post, int, error)
	Get(ctx context.Context, id string) (types.Post, error)
}

// PostService encapsulates post use-cases.
type PostService struct {
	repo PostRepository
}

func NewPostService(repo PostRepository) *PostService {
	return &PostService{repo: repo}
}

func (s *PostService) Create(ctx context.Context, authorID, title, content string) (types.Post, error) {
	return s.repo.Create(ctx, types.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	})
}

// List returns one fixed-size page of posts, newest first. Pages past
// the end come back empty rather than failing.
func (s *PostService) List(ctx context.Context, page int) ([]types.Post, int, int, error) {
	offsetPage := pagination.NewOffsetPage(page, pagination.PostPageSize)
	posts, total, err := s.repo.List(ctx, offsetPage.Offset(), offsetPage.Size)
	if err != nil {
		return nil, 0, 0, err
	}
	return posts, total, offsetPage.TotalPages(total), nil
}

func (s *PostService) Get(ctx context.Context, id string) (types.Post, error) {
	return s.repo.Get(ctx, id)
}
