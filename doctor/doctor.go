// Package doctor checks that the environment has everything the daemon
// needs: the audio control tools, a reachable sound server and the A50
// base station.
package doctor

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/jfreymuth/pulse"

	"a50switch/headset"
)

// Run executes the diagnostic checks and returns an exit code (0=all pass,
// 1=any fail).
func Run() int {
	fmt.Println("a50switch doctor - environment diagnostics")
	fmt.Println("==========================================")

	allPass := true

	if !checkTools() {
		allPass = false
	}
	if !checkAudioServer() {
		allPass = false
	}
	if !checkBaseStation() {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkTools() bool {
	fmt.Println()
	fmt.Println("[1/3] Audio control tools")

	ok := true
	for _, tool := range []string{"pactl", "pw-cli", "wpctl"} {
		if path, err := exec.LookPath(tool); err != nil {
			fmt.Printf("  FAIL: %s not found on PATH\n", tool)
			ok = false
		} else {
			fmt.Printf("  PASS: %s (%s)\n", tool, path)
		}
	}
	return ok
}

func checkAudioServer() bool {
	fmt.Println()
	fmt.Println("[2/3] Sound server")

	client, err := pulse.NewClient(pulse.ClientApplicationName("a50switch-doctor"))
	if err != nil {
		fmt.Printf("  FAIL: cannot connect to sound server: %v\n", err)
		return false
	}
	defer client.Close()

	sinks, err := client.ListSinks()
	if err != nil {
		fmt.Printf("  FAIL: cannot list sinks: %v\n", err)
		return false
	}
	sources, err := client.ListSources()
	if err != nil {
		fmt.Printf("  FAIL: cannot list sources: %v\n", err)
		return false
	}
	fmt.Printf("  PASS: server reachable (%d sinks, %d sources)\n", len(sinks), len(sources))
	return true
}

func checkBaseStation() bool {
	fmt.Println()
	fmt.Println("[3/3] A50 base station")

	link, err := headset.Connect(headset.OpenUSB)
	if err != nil {
		if errors.Is(err, headset.ErrNotConnected) {
			fmt.Println("  FAIL: base station not found (dock unplugged?)")
		} else {
			fmt.Printf("  FAIL: base station not responding: %v\n", err)
		}
		return false
	}
	defer link.Close()

	status, err := link.Poll()
	if err != nil {
		fmt.Printf("  FAIL: status poll: %v\n", err)
		return false
	}
	fmt.Printf("  PASS: base station responding (on=%v docked=%v)\n", status.On, status.Docked)
	return true
}
