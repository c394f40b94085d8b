package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hanbit-board/apiserver/internal/storage"
	"github.com/hanbit-board/apiserver/types"
)

// AuditArchiveRepository lists login records for export.
type AuditArchiveRepository interface {
	ListBefore(ctx context.Context, cutoff time.Time) ([]types.LoginRecord, error)
}

// AuditService exports old login records to object storage. The audit
// trail itself is append-only; exporting copies, never deletes.
type AuditService struct {
	logins  AuditArchiveRepository
	storage *storage.Storage
}

func NewAuditService(logins AuditArchiveRepository, st *storage.Storage) *AuditService {
	return &AuditService{logins: logins, storage: st}
}

// Archive uploads all login records older than the cutoff as one JSON
// object and returns the object key and record count. No records means
// no upload.
func (s *AuditService) Archive(ctx context.Context, cutoff time.Time) (string, int, error) {
	records, err := s.logins.ListBefore(ctx, cutoff)
	if err != nil {
		return "", 0, fmt.Errorf("list login records: %w", err)
	}
	if len(records) == 0 {
		return "", 0, nil
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", 0, fmt.Errorf("encode login records: %w", err)
	}

	if err := s.storage.EnsureBucket(ctx); err != nil {
		return "", 0, fmt.Errorf("ensure bucket: %w", err)
	}

	key := fmt.Sprintf("login-records/before-%s-%d.json", cutoff.Format("2006-01-02"), time.Now().Unix())
	if err := s.storage.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "application/json"); err != nil {
		return "", 0, fmt.Errorf("upload archive: %w", err)
	}
	return key, len(records), nil
}
