// Package headset talks to the A50 base station over USB and tracks the
// headset's power/dock state.
package headset

import "errors"

// Status is the headset state as reported by the base station. Values are
// comparable; the controller suppresses transitions on equal statuses.
type Status struct {
	On     bool
	Docked bool
}

// ErrNotConnected reports that the base station is not on the bus. The dock
// being unplugged is an expected state, not a fault.
var ErrNotConnected = errors.New("base station not connected")

// Transport is one open connection to the base station.
type Transport interface {
	Status() (Status, error)
	Close() error
}

// Opener attempts to open a transport. Returns ErrNotConnected when no
// base station is present.
type Opener func() (Transport, error)
