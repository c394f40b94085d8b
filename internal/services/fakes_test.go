package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hanbit-board/apiserver/internal/mq"
	"github.com/hanbit-board/apiserver/internal/store"
	"github.com/hanbit-board/apiserver/types"
)

type fakeAccountRepo struct {
	users     map[string]types.User
	createErr error
	updates   []types.User
}

func newFakeAccountRepo(users ...types.User) *fakeAccountRepo {
	repo := &fakeAccountRepo{users: make(map[string]types.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id string) (types.User, error) {
	user, ok := r.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (r *fakeAccountRepo) Create(_ context.Context, user types.User) (types.User, error) {
	if r.createErr != nil {
		return types.User{}, r.createErr
	}
	if _, exists := r.users[user.ID]; exists {
		return types.User{}, store.ErrDuplicate
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeAccountRepo) Update(_ context.Context, user types.User) (types.User, error) {
	if _, exists := r.users[user.ID]; !exists {
		return types.User{}, store.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	r.updates = append(r.updates, user)
	return user, nil
}

type fakeLoginRepo struct {
	appended  []types.LoginRecord
	appendErr error
	recent    []types.LoginRecord
	counts    []types.LoginCount
	lastStart time.Time
	lastEnd   time.Time
}

func (r *fakeLoginRepo) Append(_ context.Context, record types.LoginRecord) (types.LoginRecord, error) {
	if r.appendErr != nil {
		return types.LoginRecord{}, r.appendErr
	}
	record.ID = fmt.Sprintf("record-%d", len(r.appended)+1)
	r.appended = append(r.appended, record)
	return record, nil
}

func (r *fakeLoginRepo) Recent(_ context.Context, userID string, limit int) ([]types.LoginRecord, error) {
	if len(r.recent) > limit {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

func (r *fakeLoginRepo) CountByUser(_ context.Context, start, end time.Time, _ int) ([]types.LoginCount, error) {
	r.lastStart = start
	r.lastEnd = end
	return r.counts, nil
}

type fakePublisher struct {
	events     []mq.LoginEvent
	publishErr error
}

func (p *fakePublisher) PublishLogin(_ context.Context, event mq.LoginEvent) (string, error) {
	if p.publishErr != nil {
		return "", p.publishErr
	}
	p.events = append(p.events, event)
	return fmt.Sprintf("message-%d", len(p.events)), nil
}

type fakePostRepo struct {
	posts      map[string]types.Post
	list       []types.Post
	total      int
	lastOffset int
	lastLimit  int
}

func newFakePostRepo(posts ...types.Post) *fakePostRepo {
	repo := &fakePostRepo{posts: make(map[string]types.Post)}
	for _, post := range posts {
		repo.posts[post.ID] = post
	}
	return repo
}

func (r *fakePostRepo) Create(_ context.Context, post types.Post) (types.Post, error) {
	post.ID = fmt.Sprintf("post-%d", len(r.posts)+1)
	post.CreatedAt = time.Now()
	r.posts[post.ID] = post
	return post, nil
}

func (r *fakePostRepo) List(_ context.Context, offset, limit int) ([]types.Post, int, error) {
	r.lastOffset = offset
	r.lastLimit = limit
	return r.list, r.total, nil
}

func (r *fakePostRepo) Get(_ context.Context, id string) (types.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return types.Post{}, store.ErrNotFound
	}
	return post, nil
}

type fakeCommentRepo struct {
	comments    map[string]types.Comment
	postAuthors map[string]string
	listed      []types.Comment
	deleted     []string
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{
		comments:    make(map[string]types.Comment),
		postAuthors: make(map[string]string),
	}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment types.Comment) (types.Comment, error) {
	comment.ID = fmt.Sprintf("comment-%d", len(r.comments)+1)
	comment.CreatedAt = time.Now()
	r.comments[comment.ID] = comment
	return comment, nil
}

func (r *fakeCommentRepo) ListAfter(_ context.Context, _, _ string, limit int) ([]types.Comment, error) {
	if len(r.listed) > limit {
		return r.listed[:limit], nil
	}
	return r.listed, nil
}

func (r *fakeCommentRepo) GetWithPostAuthor(_ context.Context, id string) (types.Comment, string, error) {
	comment, ok := r.comments[id]
	if !ok {
		return types.Comment{}, "", store.ErrNotFound
	}
	return comment, r.postAuthors[comment.PostID], nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.comments, id)
	r.deleted = append(r.deleted, id)
	return nil
}
