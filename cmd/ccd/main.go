package main

import (
	"os"

	"github.com/ccd-dev/ccd/internal/cli"
	"github.com/ccd-dev/ccd/internal/ui"
)

func main() {
	if err := cli.Execute(); err != nil {
		ui.Fail("%v", err)
		os.Exit(1)
	}
}
