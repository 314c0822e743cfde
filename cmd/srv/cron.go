package main

import (
	"github.com/urfave/cli/v2"
	"github.com/watchearn/backend/internal/domain/cron"
)

func (s *srv) startCron(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadContext()
	s.loadDatabase()
	s.loadRepos()

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(cron.NewExpireTasksCronJob(s.taskRepo, s.configs.TaskExpiry.Interval))
	cronJobManager.Start(s.ctx)

	return nil
}
