package pulsectl

import (
	"strings"

	"a50switch/log"
)

// nodeID resolves a node name to its current PipeWire object id via
// `pw-cli ls Node`. Ids are ephemeral (they change across replugs and
// restarts), so resolution is always fresh, never cached.
//
// pw-cli output interleaves object headers and properties:
//
//	id 43, type PipeWire:Interface:Node/3
//	        node.name = "alsa_output.pci-0000_00_1f.3.analog-stereo"
func (c *Client) nodeID(nodeName string) string {
	out, err := c.run("pw-cli", "ls", "Node")
	if err != nil {
		return ""
	}

	currentID := ""
	for line := range strings.Lines(out) {
		if strings.HasPrefix(line, "\tid") {
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				currentID = strings.TrimSuffix(fields[1], ",")
			}
		}
		if strings.Contains(line, `node.name = "`+nodeName+`"`) {
			return currentID
		}
	}
	return ""
}

// SetDefaultSink makes the named node the default output. Returns false
// without asserting anything if the name cannot currently be resolved —
// a normal outcome when the device disappeared between inspection and
// application, not an error.
func (c *Client) SetDefaultSink(nodeName string) bool {
	return c.setDefault(nodeName)
}

// SetDefaultSource makes the named node the default input. Same contract
// as SetDefaultSink.
func (c *Client) SetDefaultSource(nodeName string) bool {
	return c.setDefault(nodeName)
}

func (c *Client) setDefault(nodeName string) bool {
	id := c.nodeID(nodeName)
	if id == "" {
		return false
	}
	if _, err := c.run("wpctl", "set-default", id); err != nil {
		log.Warnf("wpctl set-default %s (%s): %v", id, nodeName, err)
		return false
	}
	return true
}
