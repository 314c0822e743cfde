package main

import (
	"github.com/urfave/cli/v2"
	"github.com/watchearn/backend/migration"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadContext()
	s.loadDatabase()

	if cctx.Bool("auto") {
		return migration.AutoMigrate(s.ctx)
	}

	return migration.Migrate(s.ctx)
}
