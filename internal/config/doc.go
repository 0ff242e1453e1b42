// Package config provides configuration management for picturedb.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - The favorite tags offered by the tag panel
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Metadata synchronization through exiftool enabled
//	// At most 1000 numbers tried per rename
//	// Renumbering keeps the current number order
//
// # Loading from File
//
//	path, _ := config.DefaultPath() // ~/.config/picturedb/settings.json
//	settings, err := config.Load(path)
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Favorite Tags
//
// Favorite tags come from the favorite_tags list and from the file named by
// favorite_tags_file, a JSON array of strings:
//
//	tags, err := settings.Tags()
//
// # Saving Settings
//
//	settings.FavoriteTags = append(settings.FavoriteTags, "Martin Ueding")
//	err := settings.Save(path)
package config
