// Command ops runs maintenance tasks against the configured backends.
package main

import (
	"os"

	"acredge/pkg/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
