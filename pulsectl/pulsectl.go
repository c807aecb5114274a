// Package pulsectl inspects PipeWire/PulseAudio endpoints and moves the
// system default sink and source, shelling out to the pactl/pw-cli/wpctl
// control surface.
package pulsectl

import (
	"os/exec"
	"strings"
)

// SinkKind classifies an output endpoint by its node name.
type SinkKind string

const (
	SinkHDMI   SinkKind = "hdmi"
	SinkAnalog SinkKind = "analog"
	SinkUSB    SinkKind = "usb"
	SinkOther  SinkKind = "other"
)

// SourceKind classifies an input endpoint by its node name.
type SourceKind string

const (
	SourceInternalMic SourceKind = "internal_mic"
	SourceExternalMic SourceKind = "external_mic"
	SourceMonitor     SourceKind = "monitor"
	SourceUSB         SourceKind = "usb"
	SourceOther       SourceKind = "other"
)

// SinkInfo describes one output endpoint. Available reflects port-level
// state: for HDMI sinks it is true only if some port reports a connected
// monitor; every other kind counts as always available once enumerated.
type SinkInfo struct {
	Name      string
	Kind      SinkKind
	Available bool
}

// SourceInfo describes one input endpoint.
type SourceInfo struct {
	Name string
	Kind SourceKind
}

// ClassifySink maps a sink name to its kind. Rules are ordered; first
// match wins.
func ClassifySink(name string) SinkKind {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "hdmi"):
		return SinkHDMI
	case strings.Contains(lower, "analog") || strings.Contains(lower, "speaker"):
		return SinkAnalog
	case strings.Contains(lower, "usb"):
		return SinkUSB
	default:
		return SinkOther
	}
}

// ClassifySource maps a source name to its kind. The ".monitor" check must
// come first: monitor sources are sink loopbacks, never real microphones,
// and their names often also contain "usb" or "hdmi".
func ClassifySource(name string) SourceKind {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, ".monitor"):
		return SourceMonitor
	case strings.Contains(lower, "usb"):
		return SourceUSB
	case strings.Contains(lower, "mic1") || strings.Contains(lower, "digital"):
		return SourceInternalMic
	case strings.Contains(lower, "mic2") || strings.Contains(lower, "mic") || strings.Contains(lower, "analog"):
		return SourceExternalMic
	default:
		return SourceOther
	}
}

// FormatNodeName shortens a node name for log lines:
// "alsa_output.pci-0000_c3_00.1.HiFi__HDMI1__sink" -> "HDMI1",
// "alsa_output.pci-0000_00_1f.3.analog-stereo" -> "analog-stereo".
func FormatNodeName(name string) string {
	if strings.Contains(name, "__") {
		parts := strings.Split(name, "__")
		if len(parts) >= 2 {
			return parts[1]
		}
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// runner executes an external command and returns its stdout. Injectable so
// parser tests run on captured fixture text.
type runner func(name string, args ...string) (string, error)

func execRunner(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

// Client talks to the audio control surface. The zero value is not usable;
// construct with NewClient.
type Client struct {
	run runner
}

func NewClient() *Client {
	return &Client{run: execRunner}
}
