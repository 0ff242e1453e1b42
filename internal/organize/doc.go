// Package organize applies tag and number changes of model.Image values to
// the files on disk.
//
// # Organizer
//
// The Organizer is the only part of picturedb that renames files or writes
// metadata:
//
//  1. Open parses a path and merges the keywords stored in the file
//  2. The caller changes tags or numbers on the Image
//  3. Save writes the keyword list and moves the file to its canonical path
//
// # Basic Usage
//
//	org := organize.New(settings, store, logger, func(event organize.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	img, err := org.Open("20120204-Klopapierberg/IMG_9240.jpg", model.NewSequence(1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img.AddTag(model.NewTag("Martin Ueding"))
//	if err := org.Save(img); err != nil {
//	    log.Fatal(err)
//	}
//
// # Renumbering
//
// Renumbering a whole event moves files into each other's names, so it uses
// the two-phase BatchRename:
//
//	images, _ := org.OpenAll(paths, model.NewSequence(1))
//	_ = org.Order(ctx, images, organize.ByTaken)
//	model.Renumber(images)
//	for _, out := range org.BatchRename(images) {
//	    fmt.Println(out.Status, out.From, "->", out.To)
//	}
//
// # Collisions
//
// A rename never replaces an existing file. If the target is taken, the
// number is incremented until a free name is found, bounded by
// settings.MaxRenameAttempts.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	    Path    string
//	}
package organize
