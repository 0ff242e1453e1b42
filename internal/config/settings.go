package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	ioutils "github.com/handiism/picturedb/internal/io"
	"github.com/handiism/picturedb/internal/model"
)

// Renumber orders accepted by RenumberOrder.
const (
	OrderNumber = "number"
	OrderPath   = "path"
	OrderTaken  = "taken"
)

// Settings holds all configuration options.
type Settings struct {
	// Tag settings
	FavoriteTags     []string `json:"favorite_tags"`
	FavoriteTagsFile string   `json:"favorite_tags_file"` // JSON array of strings, may be missing

	// Metadata settings
	Metadata     bool   `json:"metadata"`
	ExifToolPath string `json:"exiftool_path"`

	// Rename settings
	MaxRenameAttempts  int    `json:"max_rename_attempts"`
	RenumberOrder      string `json:"renumber_order"` // number, path, taken
	CaptureTimeWorkers int    `json:"capture_time_workers"`

	// Logging
	LogLevel string `json:"log_level"` // debug, info, warn, error
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		FavoriteTags:     []string{},
		FavoriteTagsFile: filepath.Join(homeDir, ".config", "picture-db-scripts", "favorite_tags.js"),

		Metadata:     true,
		ExifToolPath: "exiftool",

		MaxRenameAttempts:  1000,
		RenumberOrder:      OrderNumber,
		CaptureTimeWorkers: runtime.NumCPU(),

		LogLevel: "info",
	}
}

// DefaultPath returns the settings file location,
// $XDG_CONFIG_HOME/picturedb/settings.json on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "picturedb", "settings.json"), nil
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return ioutils.WriteFile(path, data)
}

// Validate checks value ranges and enumerations.
func (s *Settings) Validate() error {
	var errs []error
	if s.MaxRenameAttempts < 1 {
		errs = append(errs, fmt.Errorf("max_rename_attempts must be at least 1, got %d", s.MaxRenameAttempts))
	}
	if s.CaptureTimeWorkers < 1 {
		errs = append(errs, fmt.Errorf("capture_time_workers must be at least 1, got %d", s.CaptureTimeWorkers))
	}
	if !slices.Contains([]string{OrderNumber, OrderPath, OrderTaken}, s.RenumberOrder) {
		errs = append(errs, fmt.Errorf("renumber_order must be one of number, path, taken, got %q", s.RenumberOrder))
	}
	return errors.Join(errs...)
}

// Tags returns the favorite tags from the settings and the favorites file,
// validated, sorted and without duplicates. Invalid entries are reported
// together; the valid ones are still returned.
func (s *Settings) Tags() ([]model.Tag, error) {
	texts := slices.Clone(s.FavoriteTags)

	var errs []error
	if s.FavoriteTagsFile != "" {
		fromFile, err := LoadFavoriteTags(s.FavoriteTagsFile)
		if err != nil {
			errs = append(errs, err)
		}
		texts = append(texts, fromFile...)
	}

	tags, err := model.ParseTags(texts)
	if err != nil {
		errs = append(errs, err)
	}
	return model.NewTagSet(tags...).Sorted(), errors.Join(errs...)
}

// LoadFavoriteTags reads a JSON array of tag texts. A missing file yields no
// tags and no error.
//
// Example file:
//
//	["Martin Ueding", "Another Tag"]
func LoadFavoriteTags(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var texts []string
	if err := json.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("parsing favorite tags %s: %w", path, err)
	}
	return texts, nil
}
