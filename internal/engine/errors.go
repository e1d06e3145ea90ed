package engine

import "errors"

// ErrConfig marks setup-time validation failures: zero-area sprites,
// empty animation sequences, non-positive frame timing, malformed
// bitmaps. These are raised when sprites are built or registered, never
// from inside the running loop.
var ErrConfig = errors.New("invalid configuration")
