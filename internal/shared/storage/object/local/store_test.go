package local

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	content := []byte("plain text body for the sniffer")
	key, size, mimeType, err := store.Save(ctx, "doc-1", "notes.txt", bytes.NewReader(content))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if key != "doc-1_notes.txt" {
		t.Fatalf("expected doc-id prefixed key, got %q", key)
	}
	if size != int64(len(content)) {
		t.Fatalf("expected size %d, got %d", len(content), size)
	}
	if !strings.HasPrefix(mimeType, "text/plain") {
		t.Fatalf("expected text/plain mime, got %q", mimeType)
	}

	rc, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("stored bytes differ: got %q want %q", got, content)
	}
}

func TestSaveSanitizesFileName(t *testing.T) {
	store := New(t.TempDir())

	if _, _, _, err := store.Save(context.Background(), "doc-2", "../../../etc/passwd", bytes.NewReader([]byte("x"))); err == nil {
		t.Fatalf("expected traversal file name to be rejected")
	}

	key, _, _, err := store.Save(context.Background(), "doc-2", "reports/q3.txt", bytes.NewReader([]byte("x")))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if strings.Contains(key, "/") {
		t.Fatalf("expected separators replaced, got %q", key)
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())

	if _, err := store.Open(context.Background(), "../outside"); err == nil {
		t.Fatalf("expected traversal rejection")
	}
	if _, err := store.Open(context.Background(), "/etc/passwd"); err == nil {
		t.Fatalf("expected absolute path rejection")
	}
}

func TestSaveLargerThanSniffBuffer(t *testing.T) {
	store := New(t.TempDir())

	content := bytes.Repeat([]byte("abcdefgh"), 200) // 1600 bytes, past the sniff window
	key, size, _, err := store.Save(context.Background(), "doc-3", "big.txt", bytes.NewReader(content))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if size != int64(len(content)) {
		t.Fatalf("expected size %d, got %d", len(content), size)
	}

	rc, err := store.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if len(got) != len(content) {
		t.Fatalf("expected %d bytes back, got %d", len(content), len(got))
	}
}
