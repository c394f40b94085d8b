package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hanbit-board/apiserver/types"
)

// CommentRepository handles persistence for comments.
type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment types.Comment) (types.Comment, error) {
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now()

	const query = `
		INSERT INTO comments (id, content, author_id, post_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		comment.ID,
		comment.Content,
		comment.AuthorID,
		comment.PostID,
		comment.CreatedAt,
	); err != nil {
		return types.Comment{}, err
	}
	return comment, nil
}

// ListAfter returns up to limit comments of a post ordered by
// (created_at DESC, id DESC). With a cursor it seeks to the cursor row
// and resumes strictly after it in that order, so concurrent inserts
// ahead of the cursor never shift the page. A cursor naming a missing
// comment returns ErrNotFound.
func (r *CommentRepository) ListAfter(ctx context.Context, postID, cursor string, limit int) ([]types.Comment, error) {
	if limit < 1 {
		limit = 10
	}

	var rows *sql.Rows
	var err error
	if cursor == "" {
		const firstQuery = `
			SELECT c.id, c.content, c.author_id, u.username, c.created_at
			FROM comments c
			JOIN users u ON u.id = c.author_id
			WHERE c.post_id = $1
			ORDER BY c.created_at DESC, c.id DESC
			LIMIT $2`
		rows, err = r.db.QueryContext(ctx, firstQuery, postID, limit)
	} else {
		var cursorCreatedAt time.Time
		const cursorQuery = `SELECT created_at FROM comments WHERE id = $1`
		if scanErr := r.db.QueryRowContext(ctx, cursorQuery, cursor).Scan(&cursorCreatedAt); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, scanErr
		}
		const afterQuery = `
			SELECT c.id, c.content, c.author_id, u.username, c.created_at
			FROM comments c
			JOIN users u ON u.id = c.author_id
			WHERE c.post_id = $1
			  AND (c.created_at < $2 OR (c.created_at = $2 AND c.id < $3))
			ORDER BY c.created_at DESC, c.id DESC
			LIMIT $4`
		rows, err = r.db.QueryContext(ctx, afterQuery, postID, cursorCreatedAt, cursor, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]types.Comment, 0, limit)
	for rows.Next() {
		var comment types.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.Content,
			&comment.AuthorID,
			&comment.AuthorUsername,
			&comment.CreatedAt,
		); err != nil {
			return nil, err
		}
		comment.PostID = postID
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// GetWithPostAuthor loads a comment along with the author id of its
// parent post, the two identities the deletion check needs.
func (r *CommentRepository) GetWithPostAuthor(ctx context.Context, id string) (types.Comment, string, error) {
	const query = `
		SELECT c.id, c.content, c.author_id, c.post_id, c.created_at, p.author_id
		FROM comments c
		JOIN posts p ON p.id = c.post_id
		WHERE c.id = $1`
	var comment types.Comment
	var postAuthorID string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID,
		&comment.Content,
		&comment.AuthorID,
		&comment.PostID,
		&comment.CreatedAt,
		&postAuthorID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Comment{}, "", ErrNotFound
		}
		return types.Comment{}, "", err
	}
	return comment, postAuthorID, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM comments WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
