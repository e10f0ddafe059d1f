package redis

import "time"

// Cache reads sit on the recommendation hot path, so they are kept short.
const (
	dialTimeout = 2 * time.Second
	ioTimeout   = 500 * time.Millisecond
)
