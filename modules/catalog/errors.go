package catalog

import "errors"

// ErrNotStarted is returned when a service is called before Start.
var ErrNotStarted = errors.New("catalog module not started")
