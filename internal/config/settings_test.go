package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/picturedb/internal/model"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.MaxRenameAttempts != 1000 {
		t.Errorf("MaxRenameAttempts = %d, want 1000", s.MaxRenameAttempts)
	}
	if !s.Metadata {
		t.Error("Metadata should default to true")
	}
	if s.RenumberOrder != OrderNumber {
		t.Errorf("RenumberOrder = %q, want %q", s.RenumberOrder, OrderNumber)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picturedb", "settings.json")

	s := DefaultSettings()
	s.FavoriteTags = []string{"Martin Ueding"}
	s.MaxRenameAttempts = 5
	s.RenumberOrder = OrderTaken
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.MaxRenameAttempts != 5 || loaded.RenumberOrder != OrderTaken {
		t.Errorf("loaded = %+v", loaded)
	}
	if len(loaded.FavoriteTags) != 1 || loaded.FavoriteTags[0] != "Martin Ueding" {
		t.Errorf("FavoriteTags = %q", loaded.FavoriteTags)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"log_level": "debug"}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", s.LogLevel)
	}
	if s.MaxRenameAttempts != 1000 {
		t.Errorf("MaxRenameAttempts = %d, want default 1000", s.MaxRenameAttempts)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", `{"metadata": `},
		{"zero attempts", `{"max_rename_attempts": 0}`},
		{"unknown order", `{"renumber_order": "random"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%s) expected error", tt.content)
			}
		})
	}
}

func TestTags(t *testing.T) {
	dir := t.TempDir()
	favorites := filepath.Join(dir, "favorite_tags.js")
	if err := os.WriteFile(favorites, []byte(`["Martin Ueding", "Beach", "bad#tag"]`), 0644); err != nil {
		t.Fatal(err)
	}

	s := DefaultSettings()
	s.FavoriteTags = []string{"Beach", "Another Tag"}
	s.FavoriteTagsFile = favorites

	tags, err := s.Tags()
	if !errors.Is(err, model.ErrInvalidTag) {
		t.Errorf("error = %v, want ErrInvalidTag", err)
	}

	want := []string{"Another Tag", "Beach", "Martin Ueding"}
	if len(tags) != len(want) {
		t.Fatalf("Tags() = %v, want %v", tags, want)
	}
	for i, tag := range tags {
		if tag.Text != want[i] {
			t.Errorf("Tags()[%d] = %q, want %q", i, tag.Text, want[i])
		}
	}
}

func TestLoadFavoriteTags_Missing(t *testing.T) {
	texts, err := LoadFavoriteTags(filepath.Join(t.TempDir(), "none.js"))
	if err != nil || texts != nil {
		t.Errorf("LoadFavoriteTags(missing) = %v, %v, want nil, nil", texts, err)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if filepath.Base(path) != "settings.json" || filepath.Base(filepath.Dir(path)) != "picturedb" {
		t.Errorf("DefaultPath() = %q", path)
	}
}
