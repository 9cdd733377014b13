package dupescan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_EmptyPathDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig with empty path failed: %v", err)
	}

	if got := cfg.GetHashConfig().Default; got != "sha256" {
		t.Errorf("expected default algorithm sha256, got %s", got)
	}
	if got := cfg.GetScanConfig().MinSize; got != "1K" {
		t.Errorf("expected default min size 1K, got %s", got)
	}
	if got := cfg.GetScanConfig().Symlinks; got != SymlinkContained {
		t.Errorf("expected default symlink mode %q, got %q", SymlinkContained, got)
	}
	if got := cfg.GetOutputConfig().Format; got != "human" {
		t.Errorf("expected default output format human, got %s", got)
	}
	if got := cfg.GetPerformanceConfig().HashBuffer; got != "8K" {
		t.Errorf("expected default hash buffer 8K, got %s", got)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.ini")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfig_ParsesSections(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config")
	content := `[filehash]
default = sha1

[scan]
min_size = 4K
symlinks = none
ignore_file = /etc/dupescan/ignore

[output]
format = json

[performance]
hash_workers = 3
hash_buffer = 64K
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if got := cfg.GetHashConfig().Default; got != "sha1" {
		t.Errorf("expected sha1, got %s", got)
	}
	scan := cfg.GetScanConfig()
	if scan.MinSize != "4K" || scan.Symlinks != "none" || scan.IgnoreFile != "/etc/dupescan/ignore" {
		t.Errorf("unexpected scan config: %+v", scan)
	}
	if got := cfg.GetOutputConfig().Format; got != "json" {
		t.Errorf("expected json, got %s", got)
	}
	perf := cfg.GetPerformanceConfig()
	if perf.HashWorkers != 3 || perf.HashBuffer != "64K" {
		t.Errorf("unexpected performance config: %+v", perf)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config")

	if err := WriteDefaultConfig(configPath); err != nil {
		t.Fatalf("WriteDefaultConfig failed: %v", err)
	}

	// Refuses to overwrite
	if err := WriteDefaultConfig(configPath); err == nil {
		t.Error("expected error when config file already exists")
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load written config: %v", err)
	}
	if got := cfg.GetHashConfig().Default; got != "sha256" {
		t.Errorf("expected sha256 in written defaults, got %s", got)
	}
	if got := cfg.GetScanConfig().Symlinks; got != SymlinkContained {
		t.Errorf("expected %q in written defaults, got %q", SymlinkContained, got)
	}
}

func TestNewFinder_ConfigPrecedence(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config")
	content := `[filehash]
default = sha1

[scan]
symlinks = none

[performance]
hash_workers = 5
hash_buffer = 16K
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// Config supplies values the options leave unset
	finder := newTestFinder(t, Options{Root: tempDir, Config: cfg})
	if finder.algorithm.Name != "sha1" {
		t.Errorf("expected config algorithm sha1, got %s", finder.algorithm.Name)
	}
	if finder.hashWorkers != 5 {
		t.Errorf("expected config workers 5, got %d", finder.hashWorkers)
	}
	if finder.chunkSize != 16*1024 {
		t.Errorf("expected config buffer 16K, got %d", finder.chunkSize)
	}
	if finder.symlinkMode != SymlinkNone {
		t.Errorf("expected config symlink mode none, got %s", finder.symlinkMode)
	}

	// Explicit options beat the config
	finder = newTestFinder(t, Options{
		Root:        tempDir,
		Config:      cfg,
		Algorithm:   "sha512",
		HashWorkers: 2,
		ChunkSize:   1024,
		SymlinkMode: SymlinkAll,
	})
	if finder.algorithm.Name != "sha512" {
		t.Errorf("expected explicit algorithm sha512, got %s", finder.algorithm.Name)
	}
	if finder.hashWorkers != 2 {
		t.Errorf("expected explicit workers 2, got %d", finder.hashWorkers)
	}
	if finder.chunkSize != 1024 {
		t.Errorf("expected explicit chunk size 1024, got %d", finder.chunkSize)
	}
	if finder.symlinkMode != SymlinkAll {
		t.Errorf("expected explicit symlink mode all, got %s", finder.symlinkMode)
	}
}
