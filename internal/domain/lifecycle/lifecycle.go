// Package lifecycle holds process-wide lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of a component.
const DefaultTimeout = 10 * time.Second
