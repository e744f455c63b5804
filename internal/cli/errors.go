package cli

import "errors"

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidProfileFile indicates a profile JSON file that does not
// decode into a client profile.
var ErrInvalidProfileFile = errors.New("invalid client profile file")
