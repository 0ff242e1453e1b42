// Package model defines the picture record and the bidirectional mapping
// between paths and records.
//
// # Naming Convention
//
// Every picture lives in an event folder and carries date, event, sequence
// number and tags in its own name:
//
//	20120204-Klopapierberg/20120204-Klopapierberg-9240#Another_Tag#Martin_Ueding.jpg
//
// Tags are encoded for the filesystem (a space becomes an underscore) and
// always appear sorted and without duplicates.
//
// # Parsing
//
// Parse recovers an Image from any existing path. The folder name is the
// authoritative source for date and event; the filename fills in what the
// folder cannot supply. When the filename follows no convention at all, the
// last run of digits becomes the number, and as a last resort a Sequence
// hands out one:
//
//	seq := model.NewSequence(1)
//	img, err := model.Parse("20120204-Klopapierberg/DSC_0042.jpg", seq)
//	// img.Number() == "0042"
//
// Failures are *ParseError values that match ErrFolder, ErrFilename,
// ErrPrefix and the ErrMissing* sentinels with errors.Is.
//
// # Rendering
//
// Render and Image.CurrentPath produce the canonical path. Renumber assigns
// fresh zero-padded numbers to a slice of images.
//
// # Arbitrary Files
//
// SplitTags and JoinTags read and write the "#tag" block of filenames that do
// not follow the date/event convention.
package model
