package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vimeo/dials"
	"github.com/vimeo/dials/sources/env"
	"github.com/vimeo/dials/sources/flag"

	"a50switch/doctor"
	"a50switch/headset"
	"a50switch/log"
	"a50switch/pulsectl"
	"a50switch/shutdown"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := defaultConfig()
	flagSrc, err := flag.NewCmdLineSet(flag.DefaultFlagNameConfig(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	d, err := dials.Config(ctx, cfg, &env.Source{}, flagSrc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = d.View()

	if cfg.Version {
		fmt.Printf("a50switch %s\n", version)
		return
	}

	if err := log.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Doctor {
		os.Exit(doctor.Run())
	}

	log.Infof("a50switch %s", version)

	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)
	go func() {
		<-sigChan
		log.Info("interrupted, exiting")
		cancel()
	}()

	c := newController(cfg, pulsectl.NewClient(), headset.OpenUSB)
	c.run(ctx)
}
