package headset

import (
	"errors"
	"testing"
)

func TestConnectProbesBeforeReporting(t *testing.T) {
	ft := &FakeTransport{Script: []PollResult{
		{Status: Status{On: true, Docked: false}},
	}}
	link, err := Connect(func() (Transport, error) { return ft, nil })
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	st, err := link.Poll()
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if !st.On || st.Docked {
		t.Fatalf("Poll = %+v", st)
	}
}

func TestConnectClosesTransportOnProbeFailure(t *testing.T) {
	// A transport that opens but cannot answer the probe must be closed so
	// the kernel driver is reattached.
	ft := &FakeTransport{Script: []PollResult{
		{Err: errors.New("pipe error")},
	}}
	link, err := Connect(func() (Transport, error) { return ft, nil })
	if err == nil {
		t.Fatal("expected probe failure")
	}
	if link != nil {
		t.Fatal("expected nil link")
	}
	if ft.Closes != 1 {
		t.Fatalf("transport Closes = %d, want 1", ft.Closes)
	}
}

func TestConnectPropagatesNotConnected(t *testing.T) {
	_, err := Connect(func() (Transport, error) { return nil, ErrNotConnected })
	if !errors.Is(err, ErrNotConnected) {
		t.Fatalf("err = %v, want ErrNotConnected", err)
	}
}

func TestLinkCloseIdempotent(t *testing.T) {
	ft := &FakeTransport{Script: []PollResult{{Status: Status{Docked: true}}}}
	link, err := Connect(func() (Transport, error) { return ft, nil })
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	link.Close()
	link.Close()
	link.Close()
	if ft.Closes != 1 {
		t.Fatalf("transport Closes = %d, want 1", ft.Closes)
	}
}

func TestFakeTransportRepeatsLastResult(t *testing.T) {
	ft := &FakeTransport{Script: []PollResult{
		{Status: Status{Docked: true}},
		{Err: ErrNotConnected},
	}}
	ft.Status()
	for i := 0; i < 3; i++ {
		if _, err := ft.Status(); !errors.Is(err, ErrNotConnected) {
			t.Fatalf("poll %d: err = %v, want ErrNotConnected", i, err)
		}
	}
}
