// Package logging builds the leveled logger shared by the picturedb
// commands.
//
// The level comes from the settings file and can be overridden with the
// PICTUREDB_LOG_LEVEL environment variable:
//
//	PICTUREDB_LOG_LEVEL=debug picturedb rename *.jpg
//
// Accepted levels are debug, info, warn (or warning), error and fatal.
package logging
