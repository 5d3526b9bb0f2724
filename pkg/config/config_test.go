package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}

	def := DefaultConfig()
	if cfg.UI.Theme != def.UI.Theme || cfg.UI.StartTab != def.UI.StartTab {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
	if cfg.Feed.LoadMoreCount != 6 {
		t.Fatalf("load more count = %d, want 6", cfg.Feed.LoadMoreCount)
	}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := Config{
		StorePath: "/tmp/edugram-test.db",
		UI:        UIConfig{Theme: "light", StartTab: "study", AutoplayMute: true},
		Feed:      FeedConfig{LoadMoreCount: 10},
		Study:     StudyConfig{ShuffleCards: true},
	}
	if err := SaveTo(want, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("roundtrip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadFrom_ClampsLoadMoreCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("feed:\n  load_more_count: -3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Feed.LoadMoreCount != 6 {
		t.Fatalf("load more count = %d, want default 6", cfg.Feed.LoadMoreCount)
	}
}

func TestLoadFrom_ExpandsHomeInStorePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store_path: ~/edugram/test.db\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	if cfg.StorePath != filepath.Join(home, "edugram", "test.db") {
		t.Fatalf("store path = %q, tilde should expand", cfg.StorePath)
	}
}

func TestLoadFrom_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui: [not a mapping"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("malformed yaml should surface an error")
	}
}

func TestConfigDir_HonorsXDGOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got := ConfigDir(); got != filepath.Join(dir, "edugram") {
		t.Fatalf("config dir = %q", got)
	}
	if got := ConfigPath(); got != filepath.Join(dir, "edugram", "config.yaml") {
		t.Fatalf("config path = %q", got)
	}
}

func TestDataDir_HonorsXDGOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	if got := DataDir(); got != filepath.Join(dir, "edugram") {
		t.Fatalf("data dir = %q", got)
	}
	if got := DefaultStorePath(); got != filepath.Join(dir, "edugram", "edugram.db") {
		t.Fatalf("default store path = %q", got)
	}
}

func TestResolvedStorePath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg := Config{StorePath: "/explicit/path.db"}
	if cfg.ResolvedStorePath() != "/explicit/path.db" {
		t.Fatal("explicit store path should win")
	}

	cfg.StorePath = ""
	if cfg.ResolvedStorePath() != DefaultStorePath() {
		t.Fatal("empty store path should fall back to the XDG default")
	}
}
