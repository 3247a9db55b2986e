// Command transitionctl inspects and replays interactive transitions.
package main

import (
	"os"

	"github.com/go-drift/transit/cmd/transitionctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
