// SmallRender Submit - command-line submission client for the SmallRender farm.
//
// Submits render jobs by publishing job descriptors into the farm's shared
// filesystem inbox. The on-site monitor/dispatcher consumes them; this tool
// only covers the client side of the protocol.
package main

import (
	"os"

	"github.com/smallrender/sr-submit/internal/cli"
	"github.com/smallrender/sr-submit/internal/version"
)

func main() {
	// Propagate version from the single source of truth (internal/version)
	cli.Version = version.Version
	cli.BuildTime = version.BuildTime

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
