package services

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/hanbit-board/apiserver/internal/storage"
	"github.com/hanbit-board/apiserver/types"
)

type fakeArchiveRepo struct {
	records    []types.LoginRecord
	lastCutoff time.Time
}

func (r *fakeArchiveRepo) ListBefore(_ context.Context, cutoff time.Time) ([]types.LoginRecord, error) {
	r.lastCutoff = cutoff
	return r.records, nil
}

type fakeObjectStorage struct {
	objects       map[string][]byte
	bucketEnsured bool
}

func (s *fakeObjectStorage) EnsureBucket(context.Context) error {
	s.bucketEnsured = true
	return nil
}

func (s *fakeObjectStorage) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if s.objects == nil {
		s.objects = make(map[string][]byte)
	}
	s.objects[key] = data
	return nil
}

func (s *fakeObjectStorage) Bucket() string { return "test-bucket" }

func TestArchiveUploadsRecords(t *testing.T) {
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeArchiveRepo{records: []types.LoginRecord{
		{ID: "r1", UserID: "user@example.com", IPAddress: "203.0.113.7", LoginTime: cutoff.AddDate(0, -1, 0)},
		{ID: "r2", UserID: "user@example.com", IPAddress: "203.0.113.7", LoginTime: cutoff.AddDate(0, 0, -1)},
	}}
	backend := &fakeObjectStorage{}
	service := NewAuditService(repo, storage.NewStorage(backend))

	key, count, err := service.Archive(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if !strings.HasPrefix(key, "login-records/before-2026-01-01-") {
		t.Fatalf("unexpected key %q", key)
	}
	if !repo.lastCutoff.Equal(cutoff) {
		t.Fatalf("query cutoff = %v, want %v", repo.lastCutoff, cutoff)
	}
	if !backend.bucketEnsured {
		t.Fatal("expected the bucket to be ensured")
	}

	var uploaded []types.LoginRecord
	if err := json.Unmarshal(backend.objects[key], &uploaded); err != nil {
		t.Fatalf("decode uploaded archive: %v", err)
	}
	if len(uploaded) != 2 || uploaded[0].ID != "r1" {
		t.Fatalf("unexpected archive contents %+v", uploaded)
	}
}

func TestArchiveNoRecordsSkipsUpload(t *testing.T) {
	backend := &fakeObjectStorage{}
	service := NewAuditService(&fakeArchiveRepo{}, storage.NewStorage(backend))

	key, count, err := service.Archive(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if key != "" || count != 0 {
		t.Fatalf("expected no upload, got key %q count %d", key, count)
	}
	if len(backend.objects) != 0 {
		t.Fatal("expected no objects to be written")
	}
}
