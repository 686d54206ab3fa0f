// Package upload validates admin image uploads and relays them to the
// public asset buckets.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidType   = errors.New("invalid file type")
	ErrTooLarge      = errors.New("file too large")
	ErrBucketMissing = errors.New("storage bucket not found")
	ErrAccessDenied  = errors.New("storage permission denied")
)

// Category selects the destination bucket and the size ceiling.
type Category string

const (
	CategoryLogo      Category = "logo"
	CategoryBillboard Category = "billboard"
)

// ObjectStore is the storage backend the relay streams accepted files to.
type ObjectStore interface {
	Put(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) error
}

// Limits holds the per-category upload ceilings in bytes.
type Limits struct {
	LogoMaxBytes      int64
	BillboardMaxBytes int64
}

// Config wires a Relay: bucket names, the public base URL assets are
// served from, and the size limits.
type Config struct {
	LogoBucket      string
	BillboardBucket string
	BaseURL         string
	Limits          Limits
}

// Relay validates declared type and size, then forwards the bytes to the
// object store under a timestamped key and returns the public URL.
type Relay struct {
	objects ObjectStore
	cfg     Config
	now     func() time.Time
}

func NewRelay(objects ObjectStore, cfg Config) *Relay {
	return &Relay{objects: objects, cfg: cfg, now: time.Now}
}

// Request describes one incoming file.
type Request struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	Category    Category
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Upload validates and stores the file, returning its public URL.
func (r *Relay) Upload(ctx context.Context, req Request) (string, error) {
	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	if !r.typeAllowed(contentType, req.Category) {
		return "", fmt.Errorf("%w: %s", ErrInvalidType, contentType)
	}
	if limit := r.limitFor(req.Category); req.Size > limit {
		return "", fmt.Errorf("%w: %d bytes exceeds %d byte limit", ErrTooLarge, req.Size, limit)
	}

	bucket := r.bucketFor(req.Category)
	key := r.keyFor(req.Category, req.Filename)

	if err := r.objects.Put(ctx, bucket, key, req.Body, req.Size, contentType); err != nil {
		return "", fmt.Errorf("store object: %w", err)
	}

	return strings.TrimRight(r.cfg.BaseURL, "/") + "/" + bucket + "/" + key, nil
}

func (r *Relay) typeAllowed(contentType string, category Category) bool {
	if allowedImageTypes[contentType] {
		return true
	}
	// SVG is acceptable for casino logos only; billboard backgrounds are
	// raster images.
	return contentType == "image/svg+xml" && category == CategoryLogo
}

func (r *Relay) limitFor(category Category) int64 {
	if category == CategoryBillboard {
		return r.cfg.Limits.BillboardMaxBytes
	}
	return r.cfg.Limits.LogoMaxBytes
}

func (r *Relay) bucketFor(category Category) string {
	if category == CategoryBillboard {
		return r.cfg.BillboardBucket
	}
	return r.cfg.LogoBucket
}

func (r *Relay) keyFor(category Category, filename string) string {
	folder := "casino-logos"
	if category == CategoryBillboard {
		folder = "billboard-images"
	}
	name := strings.TrimSpace(filename)
	if name == "" {
		name = "image"
	}
	sanitized := unsafeKeyChars.ReplaceAllString(name, "_")
	return fmt.Sprintf("%s/%d-%s", folder, r.now().UnixMilli(), sanitized)
}
