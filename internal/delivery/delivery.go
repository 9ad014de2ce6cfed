// Package delivery defines the process-facing entry points started by the application.
package delivery

import "context"

// Delivery is a long-running inbound adapter such as the HTTP API.
type Delivery interface {
	// Serve blocks until the delivery stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
