package cli

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stellarview/apod/internal/apod"
	"github.com/stellarview/apod/internal/config"
	"github.com/stellarview/apod/internal/prompt"
	"github.com/stellarview/apod/internal/store"
)

func seedCache(t *testing.T, dates ...string) string {
	t.Helper()
	path := config.DefaultCacheFile()
	for _, d := range dates {
		e := apod.Entry{
			Date:      d,
			Title:     "Entry " + d,
			Copyright: apod.DefaultCopyright,
			MediaType: apod.MediaImage,
			URL:       "https://example.com/" + d + ".jpg",
		}
		if _, _, err := store.Upsert(e, path); err != nil {
			t.Fatalf("seeding cache: %v", err)
		}
	}
	return path
}

func TestCache_Empty(t *testing.T) {
	setupEnv(t)

	got := runCommand(t, "cache")
	if !strings.Contains(got, "Entries:    0") {
		t.Errorf("output = %q, want zero entries", got)
	}
	if strings.Contains(got, "Dates:") {
		t.Errorf("output = %q, date range printed for empty cache", got)
	}
}

func TestCache_Stats(t *testing.T) {
	setupEnv(t)
	seedCache(t, "2024-01-01", "2024-01-02", "2024-01-03")

	got := runCommand(t, "cache")
	if !strings.Contains(got, "Entries:    3") {
		t.Errorf("output = %q, want three entries", got)
	}
	if !strings.Contains(got, "2024-01-01 to 2024-01-03") {
		t.Errorf("output = %q, want date range", got)
	}
}

func TestCache_StatsJSON(t *testing.T) {
	setupEnv(t)
	seedCache(t, "2024-01-01", "2024-01-02")

	got := runCommand(t, "cache", "--json")

	var stats struct {
		Path  string `json:"path"`
		Rows  int    `json:"rows"`
		First string `json:"first_date"`
		Last  string `json:"last_date"`
	}
	if err := json.Unmarshal([]byte(got), &stats); err != nil {
		t.Fatalf("unmarshal %q: %v", got, err)
	}
	if stats.Rows != 2 {
		t.Errorf("rows = %d, want 2", stats.Rows)
	}
	if stats.First != "2024-01-01" || stats.Last != "2024-01-02" {
		t.Errorf("range = %s..%s", stats.First, stats.Last)
	}
}

func TestCache_StatsQuiet(t *testing.T) {
	setupEnv(t)
	seedCache(t, "2024-01-01", "2024-01-02")

	got := runCommand(t, "cache", "--quiet")
	if strings.TrimSpace(got) != "2" {
		t.Errorf("output = %q, want bare count", got)
	}
}

func TestCacheList_Empty(t *testing.T) {
	setupEnv(t)

	got := runCommand(t, "cache", "list")
	if !strings.Contains(got, "Cache is empty") {
		t.Errorf("output = %q", got)
	}
}

func TestCacheList_Table(t *testing.T) {
	setupEnv(t)
	seedCache(t, "2024-01-01")

	got := runCommand(t, "cache", "list", "--no-color")
	if !strings.Contains(got, "2024-01-01") {
		t.Errorf("output = %q, want date in table", got)
	}
	if !strings.Contains(got, "Entry 2024-01-01") {
		t.Errorf("output = %q, want title in table", got)
	}
}

func TestCacheList_Quiet(t *testing.T) {
	setupEnv(t)
	seedCache(t, "2024-01-01", "2024-01-02")

	got := runCommand(t, "cache", "list", "--quiet")
	want := "2024-01-01\n2024-01-02\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestCacheClear_Force(t *testing.T) {
	setupEnv(t)
	path := seedCache(t, "2024-01-01")

	got := runCommand(t, "cache", "clear", "--force")
	if !strings.Contains(got, "Cache cleared") {
		t.Errorf("output = %q", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("cache file still exists after clear")
	}
}

func TestCacheClear_AlreadyEmpty(t *testing.T) {
	setupEnv(t)

	got := runCommand(t, "cache", "clear", "--force")
	if !strings.Contains(got, "Cache was already empty") {
		t.Errorf("output = %q", got)
	}
}

func TestCacheClear_Declined(t *testing.T) {
	setupEnv(t)
	path := seedCache(t, "2024-01-01")

	mock := &prompt.Mock{
		ConfirmFunc: func(cfg prompt.ConfirmConfig) (bool, error) { return false, nil },
	}
	prompt.SetDefault(mock)
	t.Cleanup(func() { prompt.SetDefault(&prompt.Huh{}) })

	runCommand(t, "cache", "clear")
	if len(mock.ConfirmCalls) != 1 {
		t.Fatalf("Confirm called %d times, want 1", len(mock.ConfirmCalls))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("cache file removed despite declined confirmation: %v", err)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 48); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	long := strings.Repeat("x", 60)
	got := truncate(long, 48)
	if len([]rune(got)) != 48 {
		t.Errorf("truncated length = %d, want 48", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated = %q, want ellipsis suffix", got)
	}
}

func TestTruncate_MultibyteRunes(t *testing.T) {
	long := strings.Repeat("星", 60)
	got := truncate(long, 48)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated = %q, invalid UTF-8", got)
	}
	if n := len([]rune(got)); n != 48 {
		t.Errorf("truncated rune count = %d, want 48", n)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated = %q, want ellipsis suffix", got)
	}

	exact := strings.Repeat("星", 48)
	if got := truncate(exact, 48); got != exact {
		t.Errorf("truncate at exact rune length = %q, want unchanged", got)
	}
}
