package serialization

import "errors"

// Format errors. I/O failures are returned as-is from the os layer;
// everything the decoder itself rejects wraps one of these sentinels.
var (
	ErrInvalidMagic = errors.New("invalid magic bytes")
	ErrTruncated    = errors.New("file truncated relative to declared topology")
	ErrBadTopology  = errors.New("invalid stored topology")
)
