package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strings"
)

// ImageStore is the blob-store collaborator. Upload returns the public
// URL of the stored object only after the write is confirmed; callers
// must not record a URL before Upload returns. Destroy takes the
// public id derived from a previously returned URL via PublicID.
type ImageStore interface {
	Upload(ctx context.Context, folder string, data []byte, contentType string) (string, error)
	Destroy(ctx context.Context, folder, publicID string) error
}

// PublicID derives the stable object id from an upload URL: the last
// path segment with any extension stripped.
func PublicID(url string) string {
	segment := path.Base(url)
	if idx := strings.LastIndex(segment, "."); idx > 0 {
		segment = segment[:idx]
	}
	return segment
}

var ErrInvalidImagePayload = errors.New("invalid image payload")

// DecodeImage accepts either a data URI ("data:image/png;base64,...")
// or a bare base64 string and returns the raw bytes plus content type.
func DecodeImage(payload string) ([]byte, string, error) {
	contentType := "application/octet-stream"

	if strings.HasPrefix(payload, "data:") {
		head, rest, found := strings.Cut(payload, ",")
		if !found {
			return nil, "", ErrInvalidImagePayload
		}
		head = strings.TrimPrefix(head, "data:")
		head = strings.TrimSuffix(head, ";base64")
		if head != "" {
			contentType = head
		}
		payload = rest
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImagePayload, err)
	}
	return data, contentType, nil
}
