package appstate

import "context"

// Checker is a component whose health is part of the liveness verdict.
type Checker interface {
	Name() string
	Ping(ctx context.Context) error
}
