// Package delivery defines the interface every transport entry point
// implements so the application can start them uniformly.
package delivery

import "context"

// Delivery is a serving entry point, such as an HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
