package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/hanbit-board/apiserver/internal/services"
	"github.com/hanbit-board/apiserver/internal/store"
)

const maxCommentLen = 500

// CommentHandler serves the comment routes not nested under a post.
type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentRouter registers comment routes on the given router.
func CommentRouter(
	r chi.Router,
	commentService *services.CommentService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewCommentHandler(commentService)

	r.Use(authMiddleware)
	r.Delete("/{commentID}", handler.DeleteComment)
}

// CreateComment handles POST /posts/{postID}/comments.
func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	postID := chi.URLParam(r, "postID")

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if n := utf8.RuneCountInString(req.Content); n < 1 || n > maxCommentLen {
		writeError(w, http.StatusBadRequest, "content must be between 1 and 500 characters")
		return
	}

	comment, err := h.commentService.Create(r.Context(), identity.AccountID, postID, req.Content)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create comment")
		return
	}

	writeSuccess(w, http.StatusCreated, CommentData{
		ID:        comment.ID,
		Content:   comment.Content,
		Username:  identity.Username,
		CreatedAt: comment.CreatedAt,
	}, "Comment created successfully")
}

// ListComments handles GET /posts/{postID}/comments?cursor=ID.
func (h *PostHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	cursor := r.URL.Query().Get("cursor")

	comments, nextCursor, err := h.commentService.List(r.Context(), postID, cursor)
	if err != nil {
		// Covers both a missing post and a cursor naming a missing comment.
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to list comments")
		return
	}

	items := make([]CommentData, 0, len(comments))
	for _, comment := range comments {
		items = append(items, CommentData{
			ID:        comment.ID,
			Content:   comment.Content,
			Username:  comment.AuthorUsername,
			CreatedAt: comment.CreatedAt,
		})
	}

	data := CommentListData{Comments: items}
	if nextCursor != "" {
		data.NextCursor = &nextCursor
	}
	writeSuccess(w, http.StatusOK, data, "Comments retrieved successfully")
}

func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	commentID := chi.URLParam(r, "commentID")

	if err := h.commentService.Delete(r.Context(), identity.AccountID, commentID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "comment not found")
		case errors.Is(err, services.ErrForbidden):
			writeError(w, http.StatusForbidden, "you are not authorized to delete this comment")
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete comment")
		}
		return
	}

	writeSuccess(w, http.StatusOK, nil, "Comment deleted successfully")
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

// CommentData is one comment row in create/list responses.
type CommentData struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentListData is the cursor-paginated list payload. NextCursor is
// null when the sequence is exhausted.
type CommentListData struct {
	Comments   []CommentData `json:"comments"`
	NextCursor *string       `json:"nextCursor"`
}
