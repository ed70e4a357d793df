package ruleimport

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCheckAll_Mixed(t *testing.T) {
	srv200 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv200.Close()

	srv404 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv404.Close()

	dir := t.TempDir()
	sdb, err := OpenSourceDB(filepath.Join(dir, "sources.db"))
	if err != nil {
		t.Fatalf("OpenSourceDB: %v", err)
	}
	defer sdb.Close()

	if err := sdb.Seed([]Adapter{
		&fakeAdapter{"ok-source", "p1", "OK source", srv200.URL, "CC0"},
		&fakeAdapter{"notfound-source", "p2", "404 source", srv404.URL, "CC0"},
		&fakeAdapter{"dead-source", "p3", "unreachable", "http://127.0.0.1:1/x", "CC0"},
	}); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	checker := NewChecker(sdb, logger, time.Hour)
	checker.CheckAll(context.Background())

	sources, err := sdb.ListSources()
	if err != nil {
		t.Fatalf("ListSources: %v", err)
	}

	statusByID := make(map[string]int)
	errByID := make(map[string]bool)
	for _, src := range sources {
		if src.LastStatus != nil {
			statusByID[src.AdapterID] = *src.LastStatus
		}
		errByID[src.AdapterID] = src.LastError != nil
	}

	if statusByID["ok-source"] != 200 {
		t.Errorf("ok-source status = %d, want 200", statusByID["ok-source"])
	}
	if statusByID["notfound-source"] != 404 {
		t.Errorf("notfound-source status = %d, want 404", statusByID["notfound-source"])
	}
	if statusByID["dead-source"] != 0 || !errByID["dead-source"] {
		t.Errorf("dead-source status = %d err=%v, want 0 with error", statusByID["dead-source"], errByID["dead-source"])
	}
}
