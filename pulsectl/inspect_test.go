package pulsectl

import (
	"errors"
	"testing"
)

const sinkReport = "Sink #43\n" +
	"\tState: SUSPENDED\n" +
	"\tName: alsa_output.pci-0000_00_1f.3.analog-stereo\n" +
	"\tDescription: Built-in Audio Analog Stereo\n" +
	"\tMute: no\n" +
	"\tPorts:\n" +
	"\t\tanalog-output-speaker: Speakers (type: Speaker, priority: 10000, availability unknown)\n" +
	"\tActive Port: analog-output-speaker\n" +
	"\tFormats:\n" +
	"\t\tpcm\n" +
	"Sink #57\n" +
	"\tState: RUNNING\n" +
	"\tName: alsa_output.pci-0000_c3_00.1.HiFi__HDMI1__sink\n" +
	"\tDescription: HDMI / DisplayPort 1 Output\n" +
	"\tPorts:\n" +
	"\t\t[Out] HDMI1: HDMI / DisplayPort 1 Output (type: HDMI, priority: 1100, availability group: HDMI/DP,pcm=3, not available)\n" +
	"\tActive Port: [Out] HDMI1\n" +
	"Sink #61\n" +
	"\tState: SUSPENDED\n" +
	"\tName: alsa_output.pci-0000_c3_00.1.HiFi__HDMI2__sink\n" +
	"\tPorts:\n" +
	"\t\tPort: HDMI Output (type: HDMI, priority: 0, available: yes)\n" +
	"Sink #70\n" +
	"\tState: IDLE\n" +
	"\tName: alsa_output.usb-Astro_Gaming_Astro_A50-00.stereo-game\n" +
	"\tDescription: Astro A50 Game\n"

const sourceReport = "Source #12\n" +
	"\tState: SUSPENDED\n" +
	"\tName: alsa_output.pci-0000_00_1f.3.analog-stereo.monitor\n" +
	"Source #13\n" +
	"\tState: RUNNING\n" +
	"\tName: alsa_input.pci-0000_c3_00.6.HiFi__Mic1__source\n" +
	"Source #14\n" +
	"\tState: SUSPENDED\n" +
	"\tName: alsa_input.usb-Astro_Gaming_Astro_A50-00.mono-chat\n"

func fixtureClient(out string, err error) *Client {
	return &Client{run: func(string, ...string) (string, error) {
		return out, err
	}}
}

func TestParseSinksBuffersBlocks(t *testing.T) {
	sinks := parseSinks(sinkReport)
	if len(sinks) != 4 {
		t.Fatalf("expected 4 sinks, got %d: %v", len(sinks), sinks)
	}

	analog := sinks[0]
	if analog.Kind != SinkAnalog || !analog.Available {
		t.Errorf("analog sink misparsed: %+v", analog)
	}

	hdmi1 := sinks[1]
	if hdmi1.Kind != SinkHDMI {
		t.Errorf("HDMI1 kind = %q", hdmi1.Kind)
	}
	// "not available" contains the substring "available"; the negative
	// phrasing must win.
	if hdmi1.Available {
		t.Errorf("HDMI1 with 'not available' port parsed as available")
	}

	hdmi2 := sinks[2]
	if !hdmi2.Available {
		t.Errorf("HDMI2 with 'available: yes' port parsed as unavailable")
	}

	usb := sinks[3]
	if usb.Kind != SinkUSB || !usb.Available {
		t.Errorf("USB sink misparsed: %+v", usb)
	}
}

func TestParseSinksLastBlockEmitted(t *testing.T) {
	sinks := parseSinks(sinkReport)
	last := sinks[len(sinks)-1]
	if last.Name != "alsa_output.usb-Astro_Gaming_Astro_A50-00.stereo-game" {
		t.Fatalf("last sink not emitted, got %q", last.Name)
	}
}

func TestParseSources(t *testing.T) {
	sources := parseSources(sourceReport)
	if len(sources) != 3 {
		t.Fatalf("expected 3 sources, got %d", len(sources))
	}
	wantKinds := []SourceKind{SourceMonitor, SourceInternalMic, SourceUSB}
	for i, want := range wantKinds {
		if sources[i].Kind != want {
			t.Errorf("source %d kind = %q, want %q", i, sources[i].Kind, want)
		}
	}
}

func TestEnumerationFailureYieldsEmpty(t *testing.T) {
	c := fixtureClient("", errors.New("pactl: command not found"))
	if got := c.Sinks(); len(got) != 0 {
		t.Errorf("Sinks on failure = %v, want empty", got)
	}
	if got := c.Sources(); len(got) != 0 {
		t.Errorf("Sources on failure = %v, want empty", got)
	}
}

func TestEmptyReportYieldsEmpty(t *testing.T) {
	c := fixtureClient("", nil)
	if got := c.Sinks(); len(got) != 0 {
		t.Errorf("Sinks on empty output = %v, want empty", got)
	}
}
