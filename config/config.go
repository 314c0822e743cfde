package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string `toml:"env" json:"env"`

	Database   DatabaseConfigs   `toml:"database" json:"database"`
	ApiServer  ServerConfigs     `toml:"api_server" json:"api_server"`
	Auth       AuthConfigs       `toml:"auth" json:"auth"`
	Storage    S3Configs         `toml:"storage" json:"storage"`
	File       FileConfigs       `toml:"file" json:"file"`
	Reward     RewardConfigs     `toml:"reward" json:"reward"`
	TaskExpiry TaskExpiryConfigs `toml:"task_expiry" json:"task_expiry"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host" json:"host"`
	Port     string `toml:"port" json:"port"`
	Database string `toml:"database" json:"database"`
	User     string `toml:"user" json:"user"`
	Password string `toml:"password" json:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host" json:"host"`
	Port string `toml:"port" json:"port"`
	Cert string `toml:"cert" json:"cert"`
	Key  string `toml:"key" json:"key"`

	DefaultLimit int `toml:"default_limit" json:"default_limit"`
	MaxLimit     int `toml:"max_limit" json:"max_limit"`
}

func (s *ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret" json:"token_secret"`
	AccessToken TokenConfigs `toml:"access_token" json:"access_token"`
}

type TokenConfigs struct {
	Name       string        `toml:"name" json:"name"`
	Expiration time.Duration `toml:"expiration" json:"expiration"`
}

type S3Configs struct {
	Region         string `toml:"region" json:"region"`
	Endpoint       string `toml:"endpoint" json:"endpoint"`
	PublicEndpoint string `toml:"public_endpoint" json:"public_endpoint"`
	AccessKey      string `toml:"access_key" json:"access_key"`
	SecretKey      string `toml:"secret_key" json:"secret_key"`
	Bucket         string `toml:"bucket" json:"bucket"`
	SSLDisabled    bool   `toml:"ssl_disabled" json:"ssl_disabled"`
}

type FileConfigs struct {
	MaxSize int64 `toml:"max_size" json:"max_size"`
}

type RewardConfigs struct {
	// DefaultPricingMode is applied when a create-task request does not
	// specify a pricing payload. Either "formula" or "flat".
	DefaultPricingMode string `toml:"default_pricing_mode" json:"default_pricing_mode"`
}

type TaskExpiryConfigs struct {
	Interval time.Duration `toml:"interval" json:"interval"`
}
