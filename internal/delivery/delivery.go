// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a server that accepts requests until its context is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
