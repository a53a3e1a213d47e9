package delivery

import (
	"context"
)

// Delivery is an inbound surface started by the application and stopped
// through its fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
