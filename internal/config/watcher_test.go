package config

import (
	"errors"
	"os"
	"testing"
	"time"
)

func TestWatcher_Reload(t *testing.T) {
	path := writeFile(t, "grid.toml", "[grid]\npage_size = 10\n")
	type result struct {
		doc *Document
		err error
	}
	results := make(chan result, 4)
	w, err := NewWatcher(path, func(d *Document, err error) {
		results <- result{d, err}
	}, WithDebounce(10*time.Millisecond), WithEnv(noEnv))
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[grid]\npage_size = 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case r := <-results:
		if r.err != nil {
			t.Fatalf("reload failed: %v", r.err)
		}
		if r.doc.Grid.PageSize != 20 {
			t.Errorf("page size = %d, want 20", r.doc.Grid.PageSize)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after the document changed")
	}
}

func TestWatcher_ReportsInvalidDocuments(t *testing.T) {
	path := writeFile(t, "grid.toml", "[grid]\n")
	errs := make(chan error, 4)
	w, err := NewWatcher(path, func(_ *Document, err error) {
		errs <- err
	}, WithDebounce(10*time.Millisecond), WithEnv(noEnv))
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[grid]\npage_size = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-errs:
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("reload error = %v, want ErrValidationFailed", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after the document changed")
	}
}

func TestWatcher_Close(t *testing.T) {
	path := writeFile(t, "grid.toml", "")
	w, err := NewWatcher(path, func(*Document, error) {})
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if err := w.Close(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("second Close() = %v, want ErrWatcherClosed", err)
	}
}
