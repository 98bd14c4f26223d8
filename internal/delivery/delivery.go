// Package delivery defines the contract shared by all inbound transports.
package delivery

import "context"

// Delivery is a long-running inbound server (HTTP today). Serve blocks until
// the server stops; shutdown is driven by the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
