package pulsectl

// BestFallbackSink picks the best non-headset output from sinks, scanning
// in enumeration order. Priority:
//
//  1. HDMI with a connected monitor
//  2. analog/speaker (always considered available)
//  3. any other available non-USB sink
//
// Returns "" when nothing qualifies; callers must then leave the default
// output untouched.
func BestFallbackSink(sinks []SinkInfo, exclude string) string {
	var candidates []SinkInfo
	for _, s := range sinks {
		if s.Name != exclude {
			candidates = append(candidates, s)
		}
	}

	for _, s := range candidates {
		if s.Kind == SinkHDMI && s.Available {
			return s.Name
		}
	}
	for _, s := range candidates {
		if s.Kind == SinkAnalog {
			return s.Name
		}
	}
	for _, s := range candidates {
		if s.Available && s.Kind != SinkUSB {
			return s.Name
		}
	}
	return ""
}

// BestFallbackSource picks the best non-headset microphone from sources.
// Monitor sources are sink loopbacks and are filtered out up front.
// Priority:
//
//  1. internal digital mic (laptop mic array)
//  2. external analog mic (3.5mm jack)
//  3. any remaining source that is neither USB nor monitor
//
// Returns "" when nothing qualifies.
func BestFallbackSource(sources []SourceInfo, exclude string) string {
	var candidates []SourceInfo
	for _, s := range sources {
		if s.Name != exclude && s.Kind != SourceMonitor {
			candidates = append(candidates, s)
		}
	}

	for _, s := range candidates {
		if s.Kind == SourceInternalMic {
			return s.Name
		}
	}
	for _, s := range candidates {
		if s.Kind == SourceExternalMic {
			return s.Name
		}
	}
	for _, s := range candidates {
		if s.Kind != SourceUSB {
			return s.Name
		}
	}
	return ""
}
