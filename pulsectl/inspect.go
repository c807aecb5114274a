package pulsectl

import (
	"regexp"
	"strings"
)

// pactl prints one indented block per endpoint. Field order within a block
// is not guaranteed (State: precedes Name:), so the parser buffers every
// field for the current block and only finalizes a SinkInfo when the next
// block header or end of input arrives.
//
// Port availability appears in two phrasings:
//
//	[Out] HDMI1: ... (type: HDMI, priority: 1100, ..., not available)
//	Port: HDMI Output (type: HDMI, priority: 0, available: yes)
//
// "not available" contains the substring "available", so the negative
// pattern is always checked first.
var (
	portUnavailableRe = regexp.MustCompile(`(?i)\bnot available\b|\bavailable:\s*no\b`)
	portAvailableRe   = regexp.MustCompile(`(?i)\bavailable\)|\bavailable:\s*yes\b`)
)

// Sinks enumerates output endpoints with port-level availability. A failed
// or empty enumeration yields an empty list, never an error: callers treat
// "no endpoints" as a valid degenerate state.
func (c *Client) Sinks() []SinkInfo {
	out, err := c.run("pactl", "list", "sinks")
	if err != nil {
		return nil
	}
	return parseSinks(out)
}

// Sources enumerates input endpoints. Same degradation contract as Sinks.
func (c *Client) Sources() []SourceInfo {
	out, err := c.run("pactl", "list", "sources")
	if err != nil {
		return nil
	}
	return parseSources(out)
}

func parseSinks(report string) []SinkInfo {
	var sinks []SinkInfo
	var currentName string
	var portsAvailable []bool
	inPorts := false

	finish := func() {
		if currentName == "" {
			return
		}
		kind := ClassifySink(currentName)
		available := true
		if kind == SinkHDMI {
			// HDMI carries audio only while a monitor is attached; any
			// available port means attached.
			available = false
			for _, a := range portsAvailable {
				if a {
					available = true
					break
				}
			}
		}
		sinks = append(sinks, SinkInfo{Name: currentName, Kind: kind, Available: available})
	}

	for line := range strings.Lines(report) {
		stripped := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(stripped, "Sink #"):
			finish()
			currentName = ""
			portsAvailable = nil
			inPorts = false

		case strings.HasPrefix(stripped, "Name:"):
			currentName = strings.TrimSpace(strings.TrimPrefix(stripped, "Name:"))

		case strings.HasPrefix(stripped, "Ports:"):
			inPorts = true

		case inPorts && !strings.HasPrefix(line, "\t\t") && strings.HasPrefix(line, "\t"):
			// Back at a top-level property: the ports section is over.
			if !strings.HasPrefix(stripped, "Port:") && strings.Contains(stripped, ":") {
				inPorts = false
			}

		case inPorts && strings.Contains(strings.ToLower(stripped), "available"):
			if portUnavailableRe.MatchString(stripped) {
				portsAvailable = append(portsAvailable, false)
			} else if portAvailableRe.MatchString(stripped) {
				portsAvailable = append(portsAvailable, true)
			}
		}
	}
	finish()

	return sinks
}

func parseSources(report string) []SourceInfo {
	var sources []SourceInfo
	var currentName string

	finish := func() {
		if currentName == "" {
			return
		}
		sources = append(sources, SourceInfo{Name: currentName, Kind: ClassifySource(currentName)})
	}

	for line := range strings.Lines(report) {
		stripped := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(stripped, "Source #"):
			finish()
			currentName = ""

		case strings.HasPrefix(stripped, "Name:"):
			currentName = strings.TrimSpace(strings.TrimPrefix(stripped, "Name:"))
		}
	}
	finish()

	return sources
}
