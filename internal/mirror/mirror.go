package mirror

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	cfg "github.com/windlab/plant-ingest/config"
	"github.com/windlab/plant-ingest/pkg/logger"
)

// Mirror syncs the raw dataset objects from an S3-compatible bucket
// into the local input root before a run. Fetch-only: the pipeline
// never writes back to the bucket.
type Mirror struct {
	client *minio.Client
	bucket string
	prefix string
	logger logger.Logger
}

// New builds a mirror client from the environment-backed config.
func New(log logger.Logger) (*Mirror, error) {
	mc := cfg.GetMirrorConfig()
	if !mc.Enabled() {
		return nil, fmt.Errorf("mirror: no endpoint configured")
	}

	client, err := minio.New(mc.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(mc.AccessKey, mc.SecretKey, ""),
		Secure: mc.UseSSL,
		Region: mc.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("mirror: creating client: %w", err)
	}

	return &Mirror{
		client: client,
		bucket: mc.BucketName,
		prefix: mc.Prefix,
		logger: log,
	}, nil
}

// Sync downloads every object under the configured prefix into dest,
// preserving the key's relative path. Existing local files are
// overwritten; the mirror is the source of truth for a fresh run.
func (m *Mirror) Sync(ctx context.Context, dest string) error {
	objectCh := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    m.prefix,
		Recursive: true,
	})

	count := 0
	for obj := range objectCh {
		if obj.Err != nil {
			return fmt.Errorf("mirror: listing bucket %s: %w", m.bucket, obj.Err)
		}
		rel := strings.TrimPrefix(obj.Key, m.prefix)
		rel = strings.TrimPrefix(rel, "/")
		if rel == "" {
			continue
		}
		target := filepath.Join(dest, filepath.FromSlash(rel))
		if err := m.client.FGetObject(ctx, m.bucket, obj.Key, target, minio.GetObjectOptions{}); err != nil {
			m.logger.Error("Failed to fetch object",
				logger.String("bucket", m.bucket),
				logger.String("key", obj.Key),
				logger.Error(err),
			)
			return fmt.Errorf("mirror: fetching %s: %w", obj.Key, err)
		}
		count++
	}

	m.logger.Info("Mirror sync complete",
		logger.String("bucket", m.bucket),
		logger.Int("objects", count),
	)

	return nil
}
