package local

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundtrip(t *testing.T) {
	store := New(t.TempDir())

	payload := "%PDF-1.7 test payload"
	url, size, mimeType, err := store.Save(context.Background(), "owner-1", "report.pdf", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(url, "file://") {
		t.Fatalf("expected file:// url, got %s", url)
	}
	if size != int64(len(payload)) {
		t.Fatalf("expected size %d, got %d", len(payload), size)
	}
	if mimeType == "" {
		t.Fatalf("expected detected mime type")
	}

	rc, err := store.Open(context.Background(), url)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != payload {
		t.Fatalf("roundtrip mismatch: %q", got)
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Open(context.Background(), "file://../outside"); err == nil {
		t.Fatalf("expected traversal to be rejected")
	}
}

func TestSaveRejectsBadFileName(t *testing.T) {
	store := New(t.TempDir())
	if _, _, _, err := store.Save(context.Background(), "owner-1", "../../x.pdf", strings.NewReader("data")); err == nil {
		t.Fatalf("expected traversal name to be rejected")
	}
}
