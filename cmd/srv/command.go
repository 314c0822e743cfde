package main

import "github.com/urfave/cli/v2"

// NewApp creates an app with sane defaults.
func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "WatchEarn"
	app.Usage = ""
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Flags:       []cli.Flag{},
			Category:    "Api",
			Description: `Used for start service api, it main service included all apis.`,
		},
		{
			Action:      server.startCron,
			Name:        "cron",
			Usage:       "Start cron jobs",
			Flags:       []cli.Flag{},
			Category:    "Worker",
			Description: `Used to start periodic jobs such as expiring outdated tasks.`,
		},
		{
			Action: server.startMigrate,
			Name:   "migrate",
			Usage:  "Migrate the database",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "auto",
					Usage: "use the gorm auto migrator instead of sql migration files",
				},
			},
			Category:    "Database",
			Description: `Used to apply database migrations before starting any service.`,
		},
	}

	s.app = app
}
