// Package main is the entry point of streamkit.
package main

import (
	"github.com/anisan-cli/streamkit/cmd"
	"github.com/anisan-cli/streamkit/config"
	"github.com/anisan-cli/streamkit/internal/cache"
	"github.com/anisan-cli/streamkit/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage()

	cmd.Execute()
}
