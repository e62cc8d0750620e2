package main

import (
	"os"

	"dotdrift/internal/cli"
	"dotdrift/internal/ui"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Drift and lint findings already printed their report; anything
		// else gets one line on stderr.
		if !cli.Silent(err) {
			ui.ErrorMsg("%v", err)
		}
		os.Exit(1)
	}
}
