package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/urfave/cli/v2"
	"github.com/watchearn/backend/internal/middleware"
	"github.com/watchearn/backend/pkg/router"
)

func (s *srv) startApi(ct *cli.Context) error {
	server.loadConfig()
	server.loadLogger()
	server.loadContext()
	server.loadDatabase()
	server.loadStorage()
	server.loadRepos()
	server.loadDomains()
	server.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	log.Printf("Starting server on port: %s\n", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	log.Printf("server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())
	s.router.Before(middleware.AllowCors())

	// Public API.
	{
		router.POST(s.router, "/register", s.authDomain.Register)
		router.POST(s.router, "/login", s.authDomain.Login)
		router.GET(s.router, "/getTask", s.taskDomain.Get)
		router.GET(s.router, "/getTasks", s.taskDomain.GetList)
	}

	// These following APIs need authentication with Access Token.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.NewAuthVerifier().WithAccessToken().Middleware())
	authRouter.Before(middleware.MustAuthenticated())
	{
		// User API
		router.GET(authRouter, "/getMe", s.userDomain.GetMe)
		router.GET(authRouter, "/getMyProfile", s.userDomain.GetMyProfile)
		router.GET(authRouter, "/getMyCompletions", s.userDomain.GetMyCompletions)

		// Completion API
		router.POST(authRouter, "/submitCompletion", s.completionDomain.Submit)

		// Image API
		router.POST(authRouter, "/uploadImage", s.fileDomain.UploadImage)
	}

	// These following APIs are only for admins. The domains verify the role
	// again before touching any data.
	adminRouter := authRouter.Branch()
	adminRouter.Before(middleware.NewOnlyAdmin(s.userRepo).Middleware())
	{
		router.POST(adminRouter, "/createTask", s.taskDomain.Create)
		router.GET(adminRouter, "/getPendingCompletions", s.completionDomain.GetPendingList)
		router.POST(adminRouter, "/reviewCompletion", s.completionDomain.Review)
	}
}
