package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/syedzainalii/noosh-tuft/config"
)

// ImageStore is the image-hosting collaborator. Upload accepts either a
// data-URI-encoded image or an already-hosted URL (returned unchanged) and
// yields a public URL; Delete removes a hosted object by its URL.
type ImageStore interface {
	Upload(ctx context.Context, imageData, folder string) (string, error)
	Delete(ctx context.Context, imageURL string) error
	Owns(imageURL string) bool
}

type minioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewImageStore connects to the object-storage backend. A connection failure
// is fatal only when an endpoint is configured; with no endpoint the store is
// disabled and uploads fail with a clear error.
func NewImageStore(cfg config.Config) (ImageStore, error) {
	if cfg.MinioEndpoint == "" {
		return nil, errors.New("MINIO_ENDPOINT not configured")
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	publicURL := cfg.PublicImageURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MinioUseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.MinioEndpoint, cfg.MinioBucket)
	}

	log.Printf("✅ Connected to object storage: %s", cfg.MinioEndpoint)
	return &minioStore{client: client, bucket: cfg.MinioBucket, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

// IsDataURI reports whether the string is an inline base64 image.
func IsDataURI(data string) bool {
	return strings.HasPrefix(data, "data:image/")
}

// DecodeDataURI splits a data:image/...;base64,... payload into its raw
// bytes, content type and file extension.
func DecodeDataURI(data string) ([]byte, string, string, error) {
	rest, ok := strings.CutPrefix(data, "data:")
	if !ok {
		return nil, "", "", errors.New("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", "", errors.New("malformed data URI")
	}
	contentType, _, _ := strings.Cut(meta, ";")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", "", errors.New("not an image data URI")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", "", fmt.Errorf("invalid base64 image data: %w", err)
	}
	ext := strings.TrimPrefix(contentType, "image/")
	if ext == "jpeg" {
		ext = "jpg"
	}
	return raw, contentType, ext, nil
}

func (s *minioStore) Upload(ctx context.Context, imageData, folder string) (string, error) {
	// Already-hosted URLs pass straight through.
	if !IsDataURI(imageData) {
		return imageData, nil
	}

	raw, contentType, ext, err := DecodeDataURI(imageData)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("%s/%s.%s", folder, uuid.NewString(), ext)
	_, err = s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(raw), int64(len(raw)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, objectName), nil
}

func (s *minioStore) Delete(ctx context.Context, imageURL string) error {
	objectName, ok := strings.CutPrefix(imageURL, s.publicURL+"/")
	if !ok {
		return errors.New("not a hosted image URL")
	}
	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}

func (s *minioStore) Owns(imageURL string) bool {
	return strings.HasPrefix(imageURL, s.publicURL+"/")
}
