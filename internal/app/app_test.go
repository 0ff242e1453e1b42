package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/picturedb/internal/config"
	"github.com/handiism/picturedb/internal/logging"
)

func TestNewStore_MetadataDisabled(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Metadata = false

	store := NewStore(settings, logging.Discard())
	for _, p := range []string{"a.jpg", "b.mp3"} {
		if store.Supports(p) {
			t.Errorf("Supports(%q) = true with metadata disabled", p)
		}
	}
}

func TestNewStore_MissingExifTool(t *testing.T) {
	settings := config.DefaultSettings()
	settings.ExifToolPath = filepath.Join(t.TempDir(), "no-such-exiftool")

	var buf bytes.Buffer
	store := NewStore(settings, logging.New(&buf, logging.Level("info")))
	defer store.Close()

	if store.Supports("a.jpg") {
		t.Error("Supports(a.jpg) = true without exiftool")
	}
	if !store.Supports("b.mp3") {
		t.Error("Supports(b.mp3) = false")
	}
	if !strings.Contains(buf.String(), "exiftool unavailable") {
		t.Errorf("no warning logged, got %q", buf.String())
	}
}

func TestNew_AppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	settings := config.DefaultSettings()
	settings.MaxRenameAttempts = 7
	settings.FavoriteTagsFile = ""
	if err := settings.Save(path); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	a, err := New(Options{ConfigPath: path, DryRun: true, Verbose: true, NoMetadata: true, LogOutput: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if a.Settings.MaxRenameAttempts != 7 {
		t.Errorf("MaxRenameAttempts = %d, want 7", a.Settings.MaxRenameAttempts)
	}
	if a.Settings.Metadata {
		t.Error("NoMetadata did not disable metadata")
	}
	if !a.Organizer.DryRun() {
		t.Error("DryRun not applied")
	}
	if !strings.Contains(buf.String(), "loaded settings") {
		t.Errorf("Verbose did not enable debug logging, got %q", buf.String())
	}
}

func TestNew_InvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"renumber_order": "random"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(Options{ConfigPath: path, NoMetadata: true}); err == nil {
		t.Error("New accepted an invalid renumber_order")
	}
}
