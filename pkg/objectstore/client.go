// Package objectstore is the artifact store adapter. All dataset archives,
// model weights, and bundles live behind <scheme>://<bucket>/<path> URIs on
// an S3-compatible store.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/modelfoundry/foundry/pkg/flowerr"
)

// Config holds object store connection settings.
type Config struct {
	Endpoint       string
	AccessKey      string
	SecretKey      string
	UseSSL         bool
	Scheme         string
	DefaultBucket  string
	AllowedBuckets []string

	// Retry attempt budgets for Download and Upload; 0 means the default of 5.
	DownloadRetries int
	UploadRetries   int
}

// LoadConfigFromEnv reads OBJECT_STORE_* settings.
func LoadConfigFromEnv() Config {
	cfg := Config{
		Endpoint:      getEnvOrDefault("OBJECT_STORE_ENDPOINT", "localhost:9000"),
		AccessKey:     os.Getenv("OBJECT_STORE_ACCESS_KEY"),
		SecretKey:     os.Getenv("OBJECT_STORE_SECRET_KEY"),
		UseSSL:        os.Getenv("OBJECT_STORE_USE_SSL") == "true",
		Scheme:        getEnvOrDefault("OBJECT_STORE_SCHEME", "s3"),
		DefaultBucket: getEnvOrDefault("OBJECT_STORE_BUCKET", "foundry"),
	}
	if v := os.Getenv("OBJECT_STORE_ALLOWED_BUCKETS"); v != "" {
		cfg.AllowedBuckets = splitCSV(v)
	} else {
		cfg.AllowedBuckets = []string{cfg.DefaultBucket}
	}
	return cfg
}

// Client wraps the MinIO S3 client with the retry and verification policy
// the agents rely on.
type Client struct {
	api    *minio.Client
	cfg    Config
	logger *slog.Logger

	// retry schedule for Download/Upload
	downloadAttempts int
	uploadAttempts   int
	baseDelay        time.Duration
	maxDelay         time.Duration
}

// NewClient connects to the configured S3-compatible endpoint.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	api, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}
	downloadAttempts := cfg.DownloadRetries
	if downloadAttempts <= 0 {
		downloadAttempts = 5
	}
	uploadAttempts := cfg.UploadRetries
	if uploadAttempts <= 0 {
		uploadAttempts = 5
	}
	return &Client{
		api:              api,
		cfg:              cfg,
		logger:           logger,
		downloadAttempts: downloadAttempts,
		uploadAttempts:   uploadAttempts,
		baseDelay:        time.Second,
		maxDelay:         30 * time.Second,
	}, nil
}

// URIFor builds a URI for a key in the default bucket.
func (c *Client) URIFor(key string) string {
	return URI{Scheme: c.cfg.Scheme, Bucket: c.cfg.DefaultBucket, Key: key}.String()
}

func (c *Client) parse(raw string) (URI, error) {
	return ParseURI(raw, c.cfg.Scheme, c.cfg.AllowedBuckets)
}

// Download streams an object to destPath. Retries with exponential backoff;
// a partially written file is removed before each retry and on final
// failure, so destPath either holds the complete object or does not exist.
func (c *Client) Download(ctx context.Context, rawURI, destPath string) error {
	uri, err := c.parse(rawURI)
	if err != nil {
		return err
	}

	var lastErr error
	delay := c.baseDelay
	for attempt := 1; attempt <= c.downloadAttempts; attempt++ {
		lastErr = c.downloadOnce(ctx, uri, destPath)
		if lastErr == nil {
			return nil
		}
		_ = os.Remove(destPath)

		if attempt == c.downloadAttempts || ctx.Err() != nil {
			break
		}
		c.logger.Warn("Object download failed, retrying",
			"uri", rawURI, "attempt", attempt, "delay", delay, "error", lastErr)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return flowerr.Wrap(flowerr.Timeout, "download", ctx.Err())
		}
		delay = nextDelay(delay, c.maxDelay)
	}
	return flowerr.Wrap(flowerr.Dependency, "download",
		fmt.Errorf("download %s after %d attempts: %w", rawURI, c.downloadAttempts, lastErr))
}

func (c *Client) downloadOnce(ctx context.Context, uri URI, destPath string) error {
	obj, err := c.api.GetObject(ctx, uri.Bucket, uri.Key, minio.GetObjectOptions{})
	if err != nil {
		return err
	}
	defer obj.Close()

	f, err := os.Create(destPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, obj); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Upload stores a local file at rawURI and verifies the object exists with
// the expected size before returning.
func (c *Client) Upload(ctx context.Context, srcPath, rawURI string) error {
	uri, err := c.parse(rawURI)
	if err != nil {
		return err
	}

	info, err := os.Stat(srcPath)
	if err != nil {
		return flowerr.Wrap(flowerr.Permanent, "upload", err)
	}
	if info.Size() == 0 {
		return flowerr.New(flowerr.Permanent, "upload", "refusing to upload empty file %s", srcPath)
	}

	var lastErr error
	delay := c.baseDelay
	for attempt := 1; attempt <= c.uploadAttempts; attempt++ {
		_, lastErr = c.api.FPutObject(ctx, uri.Bucket, uri.Key, srcPath, minio.PutObjectOptions{})
		if lastErr == nil {
			// Verify the object landed with the right size.
			stat, statErr := c.api.StatObject(ctx, uri.Bucket, uri.Key, minio.StatObjectOptions{})
			if statErr == nil && stat.Size == info.Size() {
				return nil
			}
			if statErr != nil {
				lastErr = fmt.Errorf("post-upload stat: %w", statErr)
			} else {
				lastErr = fmt.Errorf("post-upload size mismatch: uploaded %d, stored %d", info.Size(), stat.Size)
			}
		}

		if attempt == c.uploadAttempts || ctx.Err() != nil {
			break
		}
		c.logger.Warn("Object upload failed, retrying",
			"uri", rawURI, "attempt", attempt, "delay", delay, "error", lastErr)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return flowerr.Wrap(flowerr.Timeout, "upload", ctx.Err())
		}
		delay = nextDelay(delay, c.maxDelay)
	}
	return flowerr.Wrap(flowerr.Dependency, "upload",
		fmt.Errorf("upload %s after %d attempts: %w", rawURI, c.uploadAttempts, lastErr))
}

// OpenRead returns a streaming reader over an object, for gateway
// pass-through downloads. Size is returned so callers can set Content-Length.
func (c *Client) OpenRead(ctx context.Context, rawURI string) (io.ReadCloser, int64, error) {
	uri, err := c.parse(rawURI)
	if err != nil {
		return nil, 0, err
	}

	stat, err := c.api.StatObject(ctx, uri.Bucket, uri.Key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return nil, 0, flowerr.Wrap(flowerr.NotFound, "open_read", err)
		}
		return nil, 0, flowerr.Wrap(flowerr.Dependency, "open_read", err)
	}

	obj, err := c.api.GetObject(ctx, uri.Bucket, uri.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, flowerr.Wrap(flowerr.Dependency, "open_read", err)
	}
	return obj, stat.Size, nil
}

// Exists reports whether an object is present and readable.
func (c *Client) Exists(ctx context.Context, rawURI string) (bool, error) {
	uri, err := c.parse(rawURI)
	if err != nil {
		return false, err
	}
	_, err = c.api.StatObject(ctx, uri.Bucket, uri.Key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return false, nil
		}
		return false, flowerr.Wrap(flowerr.Dependency, "stat", err)
	}
	return true, nil
}

func nextDelay(current, max time.Duration) time.Duration {
	next := current * 2
	if next > max {
		return max
	}
	return next
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
