package storage

import (
	"errors"
	"testing"
)

func TestImageExtension(t *testing.T) {
	cases := map[string]string{
		"image/jpeg":              ".jpg",
		"image/png":               ".png",
		"IMAGE/PNG":               ".png",
		"image/webp; charset=bin": ".webp",
		" image/gif ":             ".gif",
	}
	for contentType, want := range cases {
		got, err := ImageExtension(contentType)
		if err != nil {
			t.Fatalf("ImageExtension(%q): %v", contentType, err)
		}
		if got != want {
			t.Fatalf("ImageExtension(%q) = %q, want %q", contentType, got, want)
		}
	}
}

func TestImageExtensionRejectsNonImages(t *testing.T) {
	for _, contentType := range []string{"", "text/html", "application/pdf", "image/svg+xml"} {
		if _, err := ImageExtension(contentType); !errors.Is(err, ErrNotImage) {
			t.Fatalf("ImageExtension(%q): expected ErrNotImage, got %v", contentType, err)
		}
	}
}

func TestNewStoreTrimsBaseURL(t *testing.T) {
	store, err := NewStore(t.TempDir(), "http://localhost:7090/uploads/", 1<<20)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if store.baseURL != "http://localhost:7090/uploads" {
		t.Fatalf("baseURL: %q", store.baseURL)
	}
}
