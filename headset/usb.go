package headset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/gousb"
)

// Astro A50 gen-4 base station.
const (
	vendorAstro = 0x9886
	productA50  = 0x002c
)

// Vendor request framing. Every message starts with a frame byte; the
// status reply carries power and dock flags at fixed offsets.
const (
	msgFrame         = 0x02
	msgHeadsetStatus = 0x55

	statusOffsetOn     = 2
	statusOffsetDocked = 3
	statusReplyMin     = 4
)

const ioTimeout = 2 * time.Second

type usbTransport struct {
	ctx     *gousb.Context
	dev     *gousb.Device
	intf    *gousb.Interface
	release func()
	in      *gousb.InEndpoint
	out     *gousb.OutEndpoint
}

// OpenUSB finds the base station on the bus and claims its vendor
// interface. Satisfies the Opener signature.
func OpenUSB() (Transport, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(vendorAstro, productA50)
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("open base station: %w", err)
	}
	if dev == nil {
		ctx.Close()
		return nil, ErrNotConnected
	}

	// The kernel's HID driver holds the interface; detach while we have it
	// and let the kernel reattach on close.
	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("auto-detach: %w", err)
	}

	intf, release, err := claimVendorInterface(dev)
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, err
	}

	t := &usbTransport{ctx: ctx, dev: dev, intf: intf, release: release}
	if t.in, t.out, err = statusEndpoints(intf); err != nil {
		t.Close()
		return nil, err
	}
	return t, nil
}

// claimVendorInterface claims the first interface exposing both an
// interrupt IN and an interrupt OUT endpoint; that is where the base
// station answers status requests.
func claimVendorInterface(dev *gousb.Device) (*gousb.Interface, func(), error) {
	cfg, err := dev.Config(1)
	if err != nil {
		return nil, nil, fmt.Errorf("claim config: %w", err)
	}

	for _, desc := range cfg.Desc.Interfaces {
		alt := desc.AltSettings[0]
		var hasIn, hasOut bool
		for _, ep := range alt.Endpoints {
			if ep.TransferType != gousb.TransferTypeInterrupt {
				continue
			}
			if ep.Direction == gousb.EndpointDirectionIn {
				hasIn = true
			} else {
				hasOut = true
			}
		}
		if hasIn && hasOut {
			intf, err := cfg.Interface(desc.Number, 0)
			if err != nil {
				cfg.Close()
				return nil, nil, fmt.Errorf("claim interface %d: %w", desc.Number, err)
			}
			release := func() {
				intf.Close()
				cfg.Close()
			}
			return intf, release, nil
		}
	}
	cfg.Close()
	return nil, nil, errors.New("no status interface on base station")
}

func statusEndpoints(intf *gousb.Interface) (*gousb.InEndpoint, *gousb.OutEndpoint, error) {
	var in *gousb.InEndpoint
	var out *gousb.OutEndpoint
	for _, ep := range intf.Setting.Endpoints {
		if ep.TransferType != gousb.TransferTypeInterrupt {
			continue
		}
		var err error
		if ep.Direction == gousb.EndpointDirectionIn && in == nil {
			if in, err = intf.InEndpoint(ep.Number); err != nil {
				return nil, nil, fmt.Errorf("in endpoint: %w", err)
			}
		}
		if ep.Direction == gousb.EndpointDirectionOut && out == nil {
			if out, err = intf.OutEndpoint(ep.Number); err != nil {
				return nil, nil, fmt.Errorf("out endpoint: %w", err)
			}
		}
	}
	if in == nil || out == nil {
		return nil, nil, errors.New("status endpoints missing")
	}
	return in, out, nil
}

func (t *usbTransport) Status() (Status, error) {
	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()

	if _, err := t.out.WriteContext(ctx, []byte{msgFrame, msgHeadsetStatus}); err != nil {
		return Status{}, classifyUSBError("status request", err)
	}

	buf := make([]byte, t.in.Desc.MaxPacketSize)
	n, err := t.in.ReadContext(ctx, buf)
	if err != nil {
		return Status{}, classifyUSBError("status reply", err)
	}
	if n < statusReplyMin || buf[0] != msgFrame {
		return Status{}, fmt.Errorf("malformed status reply (%d bytes)", n)
	}

	return Status{
		On:     buf[statusOffsetOn] != 0,
		Docked: buf[statusOffsetDocked] != 0,
	}, nil
}

func (t *usbTransport) Close() error {
	if t.release != nil {
		t.release()
		t.release = nil
	}
	var err error
	if t.dev != nil {
		err = t.dev.Close()
		t.dev = nil
	}
	if t.ctx != nil {
		if cerr := t.ctx.Close(); err == nil {
			err = cerr
		}
		t.ctx = nil
	}
	return err
}

// classifyUSBError folds "device vanished" faults into ErrNotConnected so
// the controller sees a plain link loss when the dock is yanked mid-poll.
func classifyUSBError(op string, err error) error {
	if errors.Is(err, gousb.ErrorNoDevice) || errors.Is(err, gousb.ErrorNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotConnected)
	}
	return fmt.Errorf("%s: %w", op, err)
}
