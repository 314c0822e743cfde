package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"github.com/watchearn/backend/config"
	"github.com/watchearn/backend/internal/domain"
	"github.com/watchearn/backend/internal/repository"
	"github.com/watchearn/backend/pkg/logger"
	"github.com/watchearn/backend/pkg/router"
	"github.com/watchearn/backend/pkg/storage"
	"github.com/watchearn/backend/pkg/xcontext"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB
	storage storage.Storage

	userRepo       repository.UserRepository
	taskRepo       repository.TaskRepository
	completionRepo repository.TaskCompletionRepository
	profileRepo    repository.ProfileRepository
	fileRepo       repository.FileRepository

	authDomain       domain.AuthDomain
	userDomain       domain.UserDomain
	taskDomain       domain.TaskDomain
	completionDomain domain.TaskCompletionDomain
	fileDomain       domain.FileDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig() {
	godotenv.Load(".env")

	s.configs = &config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "mysql"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "mysql"),
			Password: getEnv("MYSQL_PASSWORD", "mysql"),
			Database: getEnv("MYSQL_DATABASE", "watchearn"),
		},
		ApiServer: config.ServerConfigs{
			Host:         getEnv("HOST", "localhost"),
			Port:         getEnv("PORT", "8080"),
			Cert:         getEnv("SERVER_CERT", "cert"),
			Key:          getEnv("SERVER_KEY", "key"),
			DefaultLimit: getEnvAsInt("API_DEFAULT_LIMIT", 10),
			MaxLimit:     getEnvAsInt("API_MAX_LIMIT", 50),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token_secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: getEnvAsDuration("ACCESS_TOKEN_DURATION", time.Hour*24),
			},
		},
		Storage: config.S3Configs{
			Region:         getEnv("STORAGE_REGION", "auto"),
			Endpoint:       getEnv("STORAGE_ENDPOINT", "http://localhost:9000"),
			PublicEndpoint: getEnv("STORAGE_PUBLIC_ENDPOINT", "http://localhost:9000"),
			AccessKey:      getEnv("STORAGE_ACCESS_KEY", "access_key"),
			SecretKey:      getEnv("STORAGE_SECRET_KEY", "secret_key"),
			Bucket:         getEnv("STORAGE_BUCKET", "watchearn"),
			SSLDisabled:    getEnvAsBool("STORAGE_SSL_DISABLED", true),
		},
		File: config.FileConfigs{
			MaxSize: int64(getEnvAsInt("MAX_UPLOAD_FILE_SIZE", 2*1024*1024)),
		},
		Reward: config.RewardConfigs{
			DefaultPricingMode: getEnv("DEFAULT_PRICING_MODE", "formula"),
		},
		TaskExpiry: config.TaskExpiryConfigs{
			Interval: getEnvAsDuration("TASK_EXPIRY_INTERVAL", time.Hour),
		},
	}

	// An optional TOML file overrides the environment defaults above.
	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if _, err := toml.DecodeFile(path, s.configs); err != nil {
			panic(err)
		}
	}
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger()
}

func (s *srv) loadContext() {
	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, *s.configs)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) newDatabase() *gorm.DB {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(), // data source name
		DefaultStringSize:         256,                                   // default size for string fields
		DisableDatetimePrecision:  true,                                  // disable datetime precision, which not supported before MySQL 5.6
		DontSupportRenameIndex:    true,                                  // drop & create when rename index, rename index not supported before MySQL 5.7, MariaDB
		DontSupportRenameColumn:   true,                                  // `change` when rename column, rename column not supported before MySQL 8, MariaDB
		SkipInitializeWithVersion: false,                                 // auto configure based on currently MySQL version
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) loadDatabase() {
	s.db = s.newDatabase()
	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) loadStorage() {
	s.storage = storage.NewS3Storage(s.configs.Storage)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.taskRepo = repository.NewTaskRepository()
	s.completionRepo = repository.NewTaskCompletionRepository()
	s.profileRepo = repository.NewProfileRepository()
	s.fileRepo = repository.NewFileRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.profileRepo, s.completionRepo, s.taskRepo)
	s.taskDomain = domain.NewTaskDomain(s.taskRepo, s.userRepo)
	s.completionDomain = domain.NewTaskCompletionDomain(
		s.completionRepo, s.taskRepo, s.userRepo, s.profileRepo)
	s.fileDomain = domain.NewFileDomain(s.fileRepo, s.storage)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}

	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}

	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}

	return fallback
}
