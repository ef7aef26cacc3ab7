package storage_test

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/hsinyu-lin/trackdesk/pkg/storage"
)

func TestPublicID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"http://minio.local/trackdesk/ticket-img/abc123", "abc123"},
		{"http://minio.local/trackdesk/ticket-img/abc123.png", "abc123"},
		{"https://host/bucket/folder/a.b.c.jpg", "a.b.c"},
		{"abc123", "abc123"},
		// A leading dot is a hidden-file marker, not an extension.
		{"http://host/bucket/.env", ".env"},
	}
	for _, tc := range cases {
		if got := storage.PublicID(tc.url); got != tc.want {
			t.Errorf("PublicID(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestDecodeImage(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("data uri carries its content type", func(t *testing.T) {
		data, contentType, err := storage.DecodeImage("data:image/png;base64," + encoded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contentType != "image/png" {
			t.Fatalf("expected image/png, got %s", contentType)
		}
		if string(data) != string(raw) {
			t.Fatalf("decoded bytes mismatch")
		}
	})

	t.Run("bare base64 falls back to octet-stream", func(t *testing.T) {
		data, contentType, err := storage.DecodeImage(encoded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contentType != "application/octet-stream" {
			t.Fatalf("expected octet-stream, got %s", contentType)
		}
		if string(data) != string(raw) {
			t.Fatalf("decoded bytes mismatch")
		}
	})

	t.Run("garbage payload", func(t *testing.T) {
		_, _, err := storage.DecodeImage("not base64 at all!!!")
		if !errors.Is(err, storage.ErrInvalidImagePayload) {
			t.Fatalf("expected ErrInvalidImagePayload, got %v", err)
		}
	})

	t.Run("data uri without comma", func(t *testing.T) {
		_, _, err := storage.DecodeImage("data:image/png;base64")
		if !errors.Is(err, storage.ErrInvalidImagePayload) {
			t.Fatalf("expected ErrInvalidImagePayload, got %v", err)
		}
	})
}
