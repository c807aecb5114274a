package headset

import (
	"a50switch/log"
)

// Link is a validated connection to the base station. At most one Link is
// open at a time; the controller owns its lifetime.
type Link struct {
	transport Transport
	closed    bool
}

// Connect opens a transport and immediately performs one status probe. A
// transport that opens but cannot answer the probe is not connected; it is
// closed before returning so the kernel driver is never left half-attached.
func Connect(open Opener) (*Link, error) {
	t, err := open()
	if err != nil {
		return nil, err
	}
	if _, err := t.Status(); err != nil {
		if cerr := t.Close(); cerr != nil {
			log.Warnf("closing unresponsive transport: %v", cerr)
		}
		return nil, err
	}
	return &Link{transport: t}, nil
}

// Poll reads the current headset status. Errors are returned as-is; callers
// distinguish ErrNotConnected from faults but treat both as link loss.
func (l *Link) Poll() (Status, error) {
	return l.transport.Status()
}

// Close releases the transport. Safe to call multiple times; close errors
// are logged and swallowed, never raised to the caller.
func (l *Link) Close() {
	if l.closed {
		return
	}
	l.closed = true
	if err := l.transport.Close(); err != nil {
		log.Warnf("closing base station transport: %v", err)
	}
}
