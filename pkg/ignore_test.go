package dupescan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIgnoreManager_SubstringMatch(t *testing.T) {
	im := NewIgnoreManager([]string{".tmp", "backup"})

	tests := []struct {
		filename string
		want     bool
	}{
		{"report.tmp", true},
		{"report.tmp.old", true}, // substring anywhere in the name
		{"backup-2024.tar", true},
		{"mybackupfile", true},
		{"report.txt", false},
		{"Backup.tar", false}, // case-sensitive
		{"", false},
	}

	for _, tt := range tests {
		if got := im.ShouldIgnore(tt.filename); got != tt.want {
			t.Errorf("ShouldIgnore(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestIgnoreManager_EmptyPatternsDropped(t *testing.T) {
	im := NewIgnoreManager([]string{"", "a", ""})
	if len(im.Patterns()) != 1 {
		t.Errorf("expected 1 pattern, got %d", len(im.Patterns()))
	}
	if !im.HasPatterns() {
		t.Error("expected HasPatterns to be true")
	}

	empty := NewIgnoreManager(nil)
	if empty.HasPatterns() {
		t.Error("expected HasPatterns to be false for no patterns")
	}
	if empty.ShouldIgnore("anything") {
		t.Error("manager without patterns must not ignore anything")
	}
}

func TestIgnoreManager_LoadIgnoreFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "ignore")
	content := `# dupescan ignore patterns
.DS_Store

node_modules
  .swp
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write ignore file: %v", err)
	}

	im := NewIgnoreManager(nil)
	if err := im.LoadIgnoreFile(path); err != nil {
		t.Fatalf("LoadIgnoreFile failed: %v", err)
	}

	if len(im.Patterns()) != 3 {
		t.Fatalf("expected 3 patterns (comments and blanks skipped), got %d: %v", len(im.Patterns()), im.Patterns())
	}
	if !im.ShouldIgnore(".DS_Store") {
		t.Error("expected .DS_Store to be ignored")
	}
	if !im.ShouldIgnore("main.go.swp") {
		t.Error("expected whitespace-trimmed pattern .swp to match")
	}
	if im.ShouldIgnore("main.go") {
		t.Error("main.go should not be ignored")
	}
}

func TestIgnoreManager_LoadIgnoreFile_Missing(t *testing.T) {
	im := NewIgnoreManager(nil)
	if err := im.LoadIgnoreFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing ignore file")
	}
}
