package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/hanbit-board/apiserver/internal/services"
	"github.com/hanbit-board/apiserver/internal/store"
)

const (
	maxTitleLen       = 30
	maxPostContentLen = 1000
)

// PostHandler provides HTTP handlers for posts and their comment
// subroutes.
type PostHandler struct {
	postService    *services.PostService
	commentService *services.CommentService
}

// NewPostHandler constructs a handler with the provided services.
func NewPostHandler(postService *services.PostService, commentService *services.CommentService) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
	}
}

// PostRouter registers post routes on the given router. All routes
// sit behind the auth middleware.
func PostRouter(
	r chi.Router,
	postService *services.PostService,
	commentService *services.CommentService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewPostHandler(postService, commentService)

	r.Use(authMiddleware)
	r.Post("/", handler.CreatePost)
	r.Get("/", handler.ListPosts)
	r.Route("/{postID}", func(r chi.Router) {
		r.Get("/", handler.GetPost)
		r.Post("/comments", handler.CreateComment)
		r.Get("/comments", handler.ListComments)
	})
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if n := utf8.RuneCountInString(req.Title); n < 1 || n > maxTitleLen {
		writeError(w, http.StatusBadRequest, "title must be between 1 and 30 characters")
		return
	}
	if n := utf8.RuneCountInString(req.Content); n < 1 || n > maxPostContentLen {
		writeError(w, http.StatusBadRequest, "content must be between 1 and 1000 characters")
		return
	}

	post, err := h.postService.Create(r.Context(), identity.AccountID, req.Title, req.Content)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create post")
		return
	}

	writeSuccess(w, http.StatusCreated, post, "Post created successfully")
}

func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := strings.TrimSpace(r.URL.Query().Get("page")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "invalid page")
			return
		}
		page = parsed
	}

	posts, totalCount, totalPages, err := h.postService.List(r.Context(), page)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list posts")
		return
	}

	items := make([]PostListItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, PostListItem{
			ID:        post.ID,
			Title:     post.Title,
			Username:  post.AuthorUsername,
			CreatedAt: post.CreatedAt,
		})
	}

	writeSuccess(w, http.StatusOK, PostListData{
		Posts:       items,
		TotalCount:  totalCount,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, "Posts retrieved successfully")
}

func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "postID")

	post, err := h.postService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch post")
		return
	}

	writeSuccess(w, http.StatusOK, PostDetailData{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Username:  post.AuthorUsername,
		CreatedAt: post.CreatedAt,
	}, "Post retrieved successfully")
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostListItem is one row of the paginated post list.
type PostListItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostListData is the offset-paginated list payload.
type PostListData struct {
	Posts       []PostListItem `json:"posts"`
	TotalCount  int            `json:"totalCount"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
}

type PostDetailData struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
