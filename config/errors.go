package config

import "errors"

// ErrInvalidLayout is returned by FromJSON when the decoded config omits
// or mis-sizes a field a functioning pipeline depends on.
var ErrInvalidLayout = errors.New("config: invalid layout")
