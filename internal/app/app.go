package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/handiism/picturedb/internal/config"
	"github.com/handiism/picturedb/internal/logging"
	"github.com/handiism/picturedb/internal/metadata"
	"github.com/handiism/picturedb/internal/organize"
)

// Options are the command line overrides applied on top of the settings file.
type Options struct {
	// ConfigPath is the settings file. Empty means config.DefaultPath().
	ConfigPath string

	DryRun     bool
	Verbose    bool // debug logging
	NoMetadata bool

	LogOutput  io.Writer // defaults to os.Stderr
	OnProgress func(organize.ProgressEvent)
}

// App holds everything a command needs.
type App struct {
	Settings  *config.Settings
	Logger    *log.Logger
	Store     *metadata.Router
	Organizer *organize.Organizer
}

// New loads the settings and builds the logger, the metadata backends and the
// Organizer. Call Close when done to stop exiftool.
func New(opts Options) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("locating settings: %w", err)
		}
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if opts.NoMetadata {
		settings.Metadata = false
	}

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	level := logging.Level(settings.LogLevel)
	if opts.Verbose {
		level = log.DebugLevel
	}
	logger := logging.New(out, level)
	logger.Debug("loaded settings", "path", path)

	store := NewStore(settings, logger)
	org := organize.New(settings, store, logger, opts.OnProgress)
	org.SetDryRun(opts.DryRun)

	return &App{
		Settings:  settings,
		Logger:    logger,
		Store:     store,
		Organizer: org,
	}, nil
}

// NewStore returns the metadata backends enabled by settings: exiftool for
// still images and ID3 for MP3 files. If exiftool cannot be started, still
// images are handled without metadata and a warning is logged.
func NewStore(settings *config.Settings, logger *log.Logger) *metadata.Router {
	router := metadata.NewRouter()
	if !settings.Metadata {
		logger.Debug("metadata handling disabled")
		return router
	}

	et, err := metadata.NewExifTool(settings.ExifToolPath, logger)
	if err != nil {
		logger.Warn("exiftool unavailable, tags of still images live in file names only", "err", err)
	} else {
		router.Handle(et, metadata.StillExtensions...)
	}
	router.Handle(metadata.NewID3Store(), "mp3")
	return router
}

// Close stops the metadata backends.
func (a *App) Close() error {
	return a.Store.Close()
}
