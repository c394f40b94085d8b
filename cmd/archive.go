/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/hanbit-board/apiserver/config"
	"github.com/hanbit-board/apiserver/internal/db"
	"github.com/hanbit-board/apiserver/internal/services"
	"github.com/hanbit-board/apiserver/internal/storage"
	"github.com/hanbit-board/apiserver/internal/store"
	"github.com/spf13/cobra"
)

var archiveBefore string

// archiveCmd exports old login records to object storage. The records
// stay in the database; the export is a copy for offline retention.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Export login records older than a cutoff to object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		cutoff, err := time.ParseInLocation("2006-01-02", archiveBefore, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --before date: %w", err)
		}

		cfg := config.LoadConfig()

		dbConn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer func() {
			_ = dbConn.Close()
		}()

		st, err := newArchiveStorage(cmd, cfg.Archive)
		if err != nil {
			return err
		}

		auditService := services.NewAuditService(store.NewLoginRecordRepository(dbConn), st)
		key, count, err := auditService.Archive(cmd.Context(), cutoff)
		if err != nil {
			return err
		}
		if count == 0 {
			cmd.Println("no login records to archive")
			return nil
		}
		cmd.Printf("archived %d login records to %s/%s\n", count, st.Bucket(), key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.Flags().StringVar(&archiveBefore, "before", "", "archive records older than this date (YYYY-MM-DD)")
	_ = archiveCmd.MarkFlagRequired("before")
}

func newArchiveStorage(cmd *cobra.Command, cfg config.ArchiveConfig) (*storage.Storage, error) {
	switch cfg.Backend {
	case "minio":
		backend, err := storage.NewMinioClient(cfg.Minio)
		if err != nil {
			return nil, err
		}
		return storage.NewStorage(backend), nil
	case "gcs":
		backend, err := storage.NewGCSClient(cmd.Context(), cfg.GCS)
		if err != nil {
			return nil, err
		}
		return storage.NewStorage(backend), nil
	default:
		return nil, fmt.Errorf("unknown archive backend %q (want minio or gcs)", cfg.Backend)
	}
}
