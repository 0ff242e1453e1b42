// Package app wires settings, logging, metadata backends and the Organizer
// together for the command line front ends.
//
// Example:
//
//	a, err := app.New(app.Options{ConfigPath: path, OnProgress: print})
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	img, err := a.Organizer.Open("20120204-Party/IMG_0042.jpg", model.NewSequence(1))
package app
