// Package main is the entry point for the streamfmt application.
package main

import (
	"github.com/samber/lo"
	"github.com/streamfmt/streamfmt/cmd"
	"github.com/streamfmt/streamfmt/config"
	"github.com/streamfmt/streamfmt/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
