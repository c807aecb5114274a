package main

import "time"

// Config holds the tuning knobs. The headset node names are fixed,
// device-specific values that never change across reboots; everything else
// defaults to values that have proven fine in practice.
type Config struct {
	HeadsetSink    string        `dialsdesc:"Node name of the headset game sink"`
	HeadsetSource  string        `dialsdesc:"Node name of the headset chat source"`
	PollInterval   time.Duration `dialsdesc:"Delay between headset status polls"`
	BackoffFloor   time.Duration `dialsdesc:"Initial reconnect backoff"`
	BackoffCeiling time.Duration `dialsdesc:"Maximum reconnect backoff"`
	RecheckEvery   int           `dialsdesc:"Polls between fallback re-evaluations while docked"`
	LogLevel       string        `dialsdesc:"Log level (trace, debug, info, warn, error)"`
	Doctor         bool          `dialsdesc:"Run environment checks and exit"`
	Version        bool          `dialsdesc:"Print version and exit"`
}

func defaultConfig() *Config {
	return &Config{
		HeadsetSink:    "alsa_output.usb-Astro_Gaming_Astro_A50-00.stereo-game",
		HeadsetSource:  "alsa_input.usb-Astro_Gaming_Astro_A50-00.mono-chat",
		PollInterval:   time.Second,
		BackoffFloor:   2 * time.Second,
		BackoffCeiling: 30 * time.Second,
		RecheckEvery:   10,
		LogLevel:       "info",
	}
}
