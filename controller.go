package main

import (
	"context"
	"errors"
	"time"

	"a50switch/headset"
	"a50switch/log"
	"a50switch/pulsectl"
)

// audioControl is the slice of pulsectl.Client the controller uses.
// pulsectl.Fake implements it for tests.
type audioControl interface {
	Sinks() []pulsectl.SinkInfo
	Sources() []pulsectl.SourceInfo
	SetDefaultSink(name string) bool
	SetDefaultSource(name string) bool
}

// controller drives the routing state machine. Three observable phases:
// Disconnected (no link), Docked (linked, headset on the dock) and Active
// (linked, headset on and off the dock). All state lives here and is only
// touched from the single run loop.
type controller struct {
	cfg   *Config
	audio audioControl
	open  headset.Opener

	link               *headset.Link
	lastStatus         *headset.Status
	lastFallbackSink   string
	lastFallbackSource string
	backoff            time.Duration
	pollCount          int
}

func newController(cfg *Config, audio audioControl, open headset.Opener) *controller {
	return &controller{
		cfg:     cfg,
		audio:   audio,
		open:    open,
		backoff: cfg.BackoffFloor,
	}
}

// tick runs one iteration and returns how long to sleep before the next.
func (c *controller) tick() time.Duration {
	if c.link == nil {
		link, err := headset.Connect(c.open)
		if err != nil {
			if !errors.Is(err, headset.ErrNotConnected) {
				log.Warnf("connecting to base station: %v", err)
			}
			sleep := c.backoff
			c.backoff = min(c.backoff*2, c.cfg.BackoffCeiling)
			return sleep
		}
		log.Info("dock connected")
		c.backoff = c.cfg.BackoffFloor
		c.lastStatus = nil // force a transition evaluation on the next poll
		c.link = link
	}

	status, err := c.link.Poll()
	if err != nil {
		c.dropLink(err)
		// Headset audio just went away; falling back immediately is the
		// safe default.
		c.applyFallback()
		return c.backoff
	}

	c.pollCount++

	if c.lastStatus == nil || status != *c.lastStatus {
		c.transition(status)
		c.lastStatus = &status
		c.pollCount = 0
	} else if status.Docked && c.pollCount >= c.cfg.RecheckEvery {
		// Periodic re-evaluation catches hardware hotplug (a monitor
		// appearing or vanishing) without any headset status change.
		c.pollCount = 0
		c.recheckFallback()
	}

	return c.cfg.PollInterval
}

func (c *controller) dropLink(err error) {
	if errors.Is(err, headset.ErrNotConnected) {
		log.Transition("disconnected")
	} else {
		log.Warnf("base station poll failed: %v", err)
		log.Transition("disconnected")
	}
	c.link.Close()
	c.link = nil
	c.lastStatus = nil
}

func (c *controller) transition(status headset.Status) {
	switch {
	case status.On && !status.Docked:
		log.Transition("active")
		if !c.audio.SetDefaultSink(c.cfg.HeadsetSink) {
			log.Warnf("headset sink %s not resolvable", pulsectl.FormatNodeName(c.cfg.HeadsetSink))
		}
		if !c.audio.SetDefaultSource(c.cfg.HeadsetSource) {
			log.Warnf("headset source %s not resolvable", pulsectl.FormatNodeName(c.cfg.HeadsetSource))
		}
		// Stale memory here would suppress the next docked re-entry.
		c.lastFallbackSink = ""
		c.lastFallbackSource = ""

	case status.Docked:
		log.Transition("docked")
		c.applyFallback()
	}
}

// applyFallback recomputes and asserts both fallback directions, output
// first, and records exactly what was asserted. An empty choice leaves
// that direction unrouted.
func (c *controller) applyFallback() {
	sink := pulsectl.BestFallbackSink(c.audio.Sinks(), c.cfg.HeadsetSink)
	c.routeOutput(sink)

	source := pulsectl.BestFallbackSource(c.audio.Sources(), c.cfg.HeadsetSource)
	c.routeInput(source)
}

// recheckFallback re-applies only the direction(s) whose computed choice
// differs from what was last asserted.
func (c *controller) recheckFallback() {
	sink := pulsectl.BestFallbackSink(c.audio.Sinks(), c.cfg.HeadsetSink)
	source := pulsectl.BestFallbackSource(c.audio.Sources(), c.cfg.HeadsetSource)

	if sink == c.lastFallbackSink && source == c.lastFallbackSource {
		return
	}
	log.Info("fallback changed")
	if sink != c.lastFallbackSink {
		c.routeOutput(sink)
	}
	if source != c.lastFallbackSource {
		c.routeInput(source)
	}
}

func (c *controller) routeOutput(sink string) {
	if sink != "" {
		if !c.audio.SetDefaultSink(sink) {
			log.Warnf("fallback sink %s vanished before apply", pulsectl.FormatNodeName(sink))
		}
		log.Routing("output", pulsectl.FormatNodeName(sink))
	} else {
		log.Routing("output", "")
	}
	c.lastFallbackSink = sink
}

func (c *controller) routeInput(source string) {
	if source != "" {
		if !c.audio.SetDefaultSource(source) {
			log.Warnf("fallback source %s vanished before apply", pulsectl.FormatNodeName(source))
		}
		log.Routing("input", pulsectl.FormatNodeName(source))
	} else {
		log.Routing("input", "")
	}
	c.lastFallbackSource = source
}

// run loops tick/sleep until ctx is canceled, then closes any open link.
func (c *controller) run(ctx context.Context) {
	defer func() {
		if c.link != nil {
			c.link.Close()
		}
	}()

	for {
		sleep := c.tick()
		select {
		case <-ctx.Done():
			return
		case <-time.After(sleep):
		}
	}
}
