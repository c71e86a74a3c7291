package logic

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultColorTable(t *testing.T) {
	table, err := DefaultColorTable()
	if err != nil {
		t.Fatalf("DefaultColorTable() error = %v", err)
	}
	if table.Len() != 32 {
		t.Errorf("Len() = %d, want 32 franchises", table.Len())
	}

	tests := []struct {
		team string
		want string
	}{
		{"Chiefs", "#E31837"},
		{"49ers", "#AA0000"},
		{"Raiders", "#000000"},
		{"Commanders", "#773141"},
		{"Redskins", FallbackColor},
		{"chiefs", FallbackColor},
		{"", FallbackColor},
	}
	for _, tt := range tests {
		if got := table.Resolve(tt.team); got != tt.want {
			t.Errorf("Resolve(%q) = %s, want %s", tt.team, got, tt.want)
		}
	}
}

func TestLoadColorTable_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colors.json")
	if err := os.WriteFile(path, []byte(`{"Chiefs": "#FFB81C", "Expansion": "#123456"}`), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadColorTable(path)
	if err != nil {
		t.Fatalf("LoadColorTable() error = %v", err)
	}
	if got := table.Resolve("Chiefs"); got != "#FFB81C" {
		t.Errorf("Chiefs = %s, want override", got)
	}
	if got := table.Resolve("Expansion"); got != "#123456" {
		t.Errorf("Expansion = %s, want #123456", got)
	}
	if got := table.Resolve("Bills"); got != "#00338D" {
		t.Errorf("Bills = %s, want embedded value", got)
	}
}

func TestLoadColorTable_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte(`{"Chiefs": "red"}`), 0644)
	if _, err := LoadColorTable(bad); err == nil {
		t.Error("expected error for non-hex color")
	}

	broken := filepath.Join(dir, "broken.json")
	os.WriteFile(broken, []byte(`{"Chiefs":`), 0644)
	if _, err := LoadColorTable(broken); err == nil {
		t.Error("expected error for malformed JSON")
	}

	if _, err := LoadColorTable(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
