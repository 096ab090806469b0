package app

import (
	"context"
)

type component interface {
	Name() string
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	Shutdown(ctx context.Context) error
}

type pingComponent interface {
	component
	Ping(ctx context.Context) error
}

type signalHandler interface {
	HandleSignals(ctx context.Context, cancel func())
}
