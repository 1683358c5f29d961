package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"optic-backend/internal/config"
	"optic-backend/internal/metrics"
	"optic-backend/internal/storage"
	"optic-backend/internal/timeutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BackupService periodically uploads the snapshot file to an
// S3-compatible bucket. When no bucket is configured the scheduler is
// a no-op, so the server runs fine fully offline.
type BackupService struct {
	store  *storage.Store
	cfg    config.BackupConfig
	client *s3.Client
}

func NewBackupService(store *storage.Store, cfg config.BackupConfig) *BackupService {
	return &BackupService{store: store, cfg: cfg}
}

func (b *BackupService) Enabled() bool {
	return b.cfg.Bucket != "" && b.cfg.AccessKey != "" && b.cfg.SecretKey != ""
}

func (b *BackupService) connect(ctx context.Context) error {
	if b.client != nil {
		return nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			b.cfg.AccessKey,
			b.cfg.SecretKey,
			"",
		)),
		awsconfig.WithRegion(b.cfg.Region),
	)
	if err != nil {
		return fmt.Errorf("configure backup client: %w", err)
	}
	b.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if b.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(b.cfg.Endpoint)
		}
	})
	return nil
}

// UploadSnapshot pushes the current snapshot to the bucket under a
// timestamped key and refreshes the "latest" key.
func (b *BackupService) UploadSnapshot(ctx context.Context) error {
	if !b.Enabled() {
		return nil
	}
	if err := b.connect(ctx); err != nil {
		return err
	}

	data, err := b.store.Export()
	if err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}

	stamp := timeutil.Now().Format("20060102-150405")
	keys := []string{
		fmt.Sprintf("backups/optic_db_%s.json", stamp),
		"backups/optic_db_latest.json",
	}
	for _, key := range keys {
		_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(b.cfg.Bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			metrics.BackupUploadsTotal.WithLabelValues("error").Inc()
			return fmt.Errorf("upload %s: %w", key, err)
		}
	}
	metrics.BackupUploadsTotal.WithLabelValues("ok").Inc()
	log.Printf("[Backup] Snapshot uploaded (%d bytes)", len(data))
	return nil
}

// FetchLatest downloads the most recent snapshot backup, for disaster
// recovery when the local file is gone.
func (b *BackupService) FetchLatest(ctx context.Context) ([]byte, error) {
	if !b.Enabled() {
		return nil, fmt.Errorf("backup not configured")
	}
	if err := b.connect(ctx); err != nil {
		return nil, err
	}
	result, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.cfg.Bucket),
		Key:    aws.String("backups/optic_db_latest.json"),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch latest backup: %w", err)
	}
	defer result.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(result.Body); err != nil {
		return nil, fmt.Errorf("read backup body: %w", err)
	}
	return buf.Bytes(), nil
}

// RestoreIfMissing downloads the latest off-site backup into path when
// no local snapshot file exists yet. Runs before the store opens, so a
// reinstalled machine comes back with its data instead of the seeds.
// Returns false when nothing was restored.
func RestoreIfMissing(ctx context.Context, cfg config.BackupConfig, path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	b := NewBackupService(nil, cfg)
	if !b.Enabled() {
		return false, nil
	}

	data, err := b.FetchLatest(ctx)
	if err != nil {
		return false, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// Run uploads on the configured interval until ctx is cancelled.
func (b *BackupService) Run(ctx context.Context) {
	if !b.Enabled() {
		log.Printf("[Backup] Off-site backup disabled (no bucket configured)")
		return
	}
	interval := time.Duration(b.cfg.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	log.Printf("[Backup] Uploading snapshot every %s to bucket %s", interval, b.cfg.Bucket)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			uploadCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
			if err := b.UploadSnapshot(uploadCtx); err != nil {
				log.Printf("[Backup] Upload failed: %v", err)
			}
			cancel()
		}
	}
}
