// Package uptime pkg/uptime/interfaces.go
package uptime

import "context"

//go:generate mockgen -destination=mock_uptime.go -package=uptime github.com/monitorai/screenwatch/pkg/uptime Prober

// Prober answers whether a screen controller is reachable at its address.
// A nil return means the device responded; any error counts as down.
type Prober interface {
	Probe(ctx context.Context, address string) error
}
