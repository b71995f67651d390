package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"defensa_juridica_web/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// MediaPrefix is the route under which media objects are served by the site
const MediaPrefix = "/media/"

var (
	// ErrInvalidKey is returned for keys that are empty or escape the media root
	ErrInvalidKey = errors.New("invalid media key")
	// ErrMediaNotFound is returned when no object exists under a key
	ErrMediaNotFound = errors.New("media not found")
)

// MediaStorage holds the carousel images
type MediaStorage interface {
	Put(ctx context.Context, r io.Reader, key, contentType string, size int64) (*StorageResult, error)
	// Get returns the object body and its content type
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
	PublicURL(key string) string
}

// StorageResult describes a stored object
type StorageResult struct {
	Key         string
	Size        int64
	ContentType string
	URL         string
}

// Storage is the global media storage instance
var Storage MediaStorage

// InitializeStorage picks R2 when its credentials are set and the bucket
// answers, local MEDIA_DIR otherwise
func InitializeStorage(cfg *config.Config) {
	Storage = newMediaStorage(cfg)
}

func newMediaStorage(cfg *config.Config) MediaStorage {
	local := NewLocalStorage(cfg.MediaDir)
	if cfg.R2AccountID == "" || cfg.R2AccessKeyID == "" || cfg.R2SecretAccessKey == "" || cfg.R2BucketName == "" {
		log.Printf("[INFO] Media storage: local filesystem (%s)", cfg.MediaDir)
		return local
	}

	r2, err := NewR2Storage(cfg)
	if err != nil {
		log.Printf("[WARNING] R2 storage unavailable: %v. Falling back to local media.", err)
		return local
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := r2.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(r2.bucket)}); err != nil {
		log.Printf("[WARNING] R2 bucket %s unreachable: %v. Falling back to local media.", r2.bucket, err)
		return local
	}

	log.Printf("[INFO] Media storage: Cloudflare R2 (bucket: %s)", r2.bucket)
	return r2
}

// CleanMediaKey normalizes key and rejects anything that would leave the
// media root.
func CleanMediaKey(key string) (string, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "/")
	if key == "" {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}

var mediaContentTypes = map[string]string{
	".webp": "image/webp",
	".avif": "image/avif",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

// ContentTypeFor guesses the content type of a media key from its extension
func ContentTypeFor(key string) string {
	if ct, ok := mediaContentTypes[strings.ToLower(filepath.Ext(key))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// R2Storage keeps media in a Cloudflare R2 bucket over the S3 API
type R2Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewR2Storage creates the R2 client for cfg's account and bucket
func NewR2Storage(cfg *config.Config) (*R2Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2Storage{client: client, bucket: cfg.R2BucketName, publicURL: cfg.R2PublicURL}, nil
}

// Put uploads r under key. Carousel images are immutable once published.
func (r *R2Storage) Put(ctx context.Context, body io.Reader, key, contentType string, size int64) (*StorageResult, error) {
	key, err := CleanMediaKey(key)
	if err != nil {
		return nil, err
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s to R2: %w", key, err)
	}

	return &StorageResult{Key: key, Size: size, ContentType: contentType, URL: r.PublicURL(key)}, nil
}

// Get streams key from the bucket
func (r *R2Storage) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	key, err := CleanMediaKey(key)
	if err != nil {
		return nil, "", err
	}

	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, "", ErrMediaNotFound
		}
		return nil, "", fmt.Errorf("failed to get %s from R2: %w", key, err)
	}

	contentType := ContentTypeFor(key)
	if out.ContentType != nil {
		contentType = *out.ContentType
	}
	return out.Body, contentType, nil
}

// PublicURL returns the bucket's public URL for key, or the site's media
// route when the bucket is private
func (r *R2Storage) PublicURL(key string) string {
	if r.publicURL != "" {
		return strings.TrimSuffix(r.publicURL, "/") + "/" + key
	}
	return MediaPrefix + key
}

// LocalStorage keeps media under a directory served by the site
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a local provider rooted at baseDir
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

func (l *LocalStorage) fullPath(key string) (string, string, error) {
	key, err := CleanMediaKey(key)
	if err != nil {
		return "", "", err
	}
	return key, filepath.Join(l.baseDir, filepath.FromSlash(key)), nil
}

// Put writes r to the media directory, creating parent directories
func (l *LocalStorage) Put(ctx context.Context, r io.Reader, key, contentType string, size int64) (*StorageResult, error) {
	key, full, err := l.fullPath(key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}

	dst, err := os.Create(full)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", full, err)
	}
	written, err := io.Copy(dst, r)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", full, err)
	}

	return &StorageResult{Key: key, Size: written, ContentType: contentType, URL: l.PublicURL(key)}, nil
}

// Get opens a media file
func (l *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	key, full, err := l.fullPath(key)
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", ErrMediaNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", full, err)
	}
	return f, ContentTypeFor(key), nil
}

// PublicURL returns the site route that serves key
func (l *LocalStorage) PublicURL(key string) string {
	return MediaPrefix + key
}
