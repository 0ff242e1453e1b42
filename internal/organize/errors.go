package organize

import (
	"errors"
	"fmt"
)

// ErrTargetExists is wrapped by RenameError when every candidate number was taken.
var ErrTargetExists = errors.New("rename target exists")

// RenameError reports a rename that could not find a free target.
type RenameError struct {
	From     string
	To       string // last target tried
	Attempts int
	Err      error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("renaming %q: %v (last tried %q after %d attempts)", e.From, e.Err, e.To, e.Attempts)
}

func (e *RenameError) Unwrap() error { return e.Err }
