// Package lifecycle holds shared startup and shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
