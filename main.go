package main

import (
	"github.com/abouramd/live-stream/cmd"
	"github.com/abouramd/live-stream/config"
	"github.com/abouramd/live-stream/internal/cache"
	"github.com/abouramd/live-stream/log"
	"github.com/abouramd/live-stream/where"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cache.CollectGarbage(where.Cache())

	cmd.Execute()
}
