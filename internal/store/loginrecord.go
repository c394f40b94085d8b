package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/hanbit-board/apiserver/types"
)

// LoginRecordRepository handles the append-only login audit trail.
type LoginRecordRepository struct {
	db *sql.DB
}

func NewLoginRecordRepository(db *sql.DB) *LoginRecordRepository {
	return &LoginRecordRepository{db: db}
}

// Append records one successful login. Records are never updated or
// deleted afterwards.
func (r *LoginRecordRepository) Append(ctx context.Context, record types.LoginRecord) (types.LoginRecord, error) {
	record.ID = uuid.NewString()
	if record.LoginTime.IsZero() {
		record.LoginTime = time.Now()
	}

	const query = `
		INSERT INTO login_records (id, user_id, ip_address, login_time)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.UserID,
		record.IPAddress,
		record.LoginTime,
	); err != nil {
		return types.LoginRecord{}, err
	}
	return record, nil
}

// Recent returns up to limit records of one user, newest first, with
// the username joined in.
func (r *LoginRecordRepository) Recent(ctx context.Context, userID string, limit int) ([]types.LoginRecord, error) {
	if limit < 1 {
		limit = 30
	}

	const query = `
		SELECT lr.id, lr.user_id, u.username, lr.ip_address, lr.login_time
		FROM login_records lr
		JOIN users u ON u.id = lr.user_id
		WHERE lr.user_id = $1
		ORDER BY lr.login_time DESC
		LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]types.LoginRecord, 0, limit)
	for rows.Next() {
		var record types.LoginRecord
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Username,
			&record.IPAddress,
			&record.LoginTime,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// CountByUser aggregates per-user login counts within [start, end],
// ordered by count descending and capped at limit. The tie-break
// arithmetic over these pairs lives in the ranking package.
func (r *LoginRecordRepository) CountByUser(ctx context.Context, start, end time.Time, limit int) ([]types.LoginCount, error) {
	const query = `
		SELECT u.id, u.username, COUNT(lr.id) AS login_count
		FROM users u
		JOIN login_records lr ON u.id = lr.user_id
		WHERE lr.login_time >= $1 AND lr.login_time <= $2
		GROUP BY u.id, u.username
		ORDER BY login_count DESC
		LIMIT $3`
	rows, err := r.db.QueryContext(ctx, query, start, end, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]types.LoginCount, 0, limit)
	for rows.Next() {
		var count types.LoginCount
		if err := rows.Scan(&count.UserID, &count.Username, &count.LoginCount); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// ListBefore returns all records with login_time strictly before the
// cutoff, oldest first. Used by the archive export.
func (r *LoginRecordRepository) ListBefore(ctx context.Context, cutoff time.Time) ([]types.LoginRecord, error) {
	const query = `
		SELECT id, user_id, ip_address, login_time
		FROM login_records
		WHERE login_time < $1
		ORDER BY login_time`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []types.LoginRecord
	for rows.Next() {
		var record types.LoginRecord
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.IPAddress,
			&record.LoginTime,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
