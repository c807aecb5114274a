package pulsectl

import "testing"

const headsetSink = "alsa_output.usb-Astro_Gaming_Astro_A50-00.stereo-game"
const headsetSource = "alsa_input.usb-Astro_Gaming_Astro_A50-00.mono-chat"

func TestFallbackSinkPrefersAvailableHDMI(t *testing.T) {
	sinks := []SinkInfo{
		{Name: "hdmi1", Kind: SinkHDMI, Available: true},
		{Name: "speakers", Kind: SinkAnalog, Available: true},
	}
	if got := BestFallbackSink(sinks, headsetSink); got != "hdmi1" {
		t.Fatalf("got %q, want hdmi1", got)
	}
}

func TestFallbackSinkSkipsUnavailableHDMI(t *testing.T) {
	sinks := []SinkInfo{
		{Name: "hdmi1", Kind: SinkHDMI, Available: false},
		{Name: "speakers", Kind: SinkAnalog, Available: true},
	}
	if got := BestFallbackSink(sinks, headsetSink); got != "speakers" {
		t.Fatalf("got %q, want speakers", got)
	}
}

func TestFallbackSinkNeverReturnsExcluded(t *testing.T) {
	sinks := []SinkInfo{
		{Name: headsetSink, Kind: SinkUSB, Available: true},
		{Name: "hdmi1", Kind: SinkHDMI, Available: false},
	}
	if got := BestFallbackSink(sinks, headsetSink); got != "" {
		t.Fatalf("got %q, want none", got)
	}
}

func TestFallbackSinkLastResortSkipsUSB(t *testing.T) {
	sinks := []SinkInfo{
		{Name: "some-usb-dac", Kind: SinkUSB, Available: true},
		{Name: "weird-out", Kind: SinkOther, Available: true},
	}
	if got := BestFallbackSink(sinks, headsetSink); got != "weird-out" {
		t.Fatalf("got %q, want weird-out", got)
	}
}

func TestFallbackSinkEmptyList(t *testing.T) {
	if got := BestFallbackSink(nil, headsetSink); got != "" {
		t.Fatalf("got %q, want none", got)
	}
}

func TestFallbackSourcePrefersInternalMic(t *testing.T) {
	sources := []SourceInfo{
		{Name: "mic2", Kind: SourceExternalMic},
		{Name: "mic1", Kind: SourceInternalMic},
	}
	if got := BestFallbackSource(sources, headsetSource); got != "mic1" {
		t.Fatalf("got %q, want mic1", got)
	}
}

func TestFallbackSourceExternalWhenNoInternal(t *testing.T) {
	sources := []SourceInfo{
		{Name: "mic2", Kind: SourceExternalMic},
		{Name: "misc", Kind: SourceOther},
	}
	if got := BestFallbackSource(sources, headsetSource); got != "mic2" {
		t.Fatalf("got %q, want mic2", got)
	}
}

func TestFallbackSourceNeverReturnsMonitorOrExcluded(t *testing.T) {
	sources := []SourceInfo{
		{Name: headsetSource, Kind: SourceUSB},
		{Name: "speakers.monitor", Kind: SourceMonitor},
		{Name: "hdmi.monitor", Kind: SourceMonitor},
	}
	if got := BestFallbackSource(sources, headsetSource); got != "" {
		t.Fatalf("got %q, want none", got)
	}
}

func TestFallbackSourceLastResortSkipsUSB(t *testing.T) {
	sources := []SourceInfo{
		{Name: "other-usb-mic", Kind: SourceUSB},
		{Name: "misc", Kind: SourceOther},
	}
	if got := BestFallbackSource(sources, headsetSource); got != "misc" {
		t.Fatalf("got %q, want misc", got)
	}
}
