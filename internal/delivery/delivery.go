// Package delivery defines the contract every transport server satisfies.
package delivery

import "context"

// Delivery is a long-running transport endpoint managed by the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
