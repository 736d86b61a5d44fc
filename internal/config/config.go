package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string          `yaml:"env" env:"ENV" env-default:"local"`
	DatabaseUrl string          `yaml:"database_url" env:"DATABASE_URL" env-required:"true"`
	Server      ServerConfig    `yaml:"rest"`
	JWT         JWTSecret       `yaml:"jwt"`
	Company     CompanyConfig   `yaml:"company"`
	Lifecycle   LifecycleConfig `yaml:"lifecycle"`
}

type ServerConfig struct {
	Port           string   `yaml:"port" env:"PORT" env-default:"8080"`
	AllowedOrigins []string `yaml:"allowed_origins" env-default:"http://localhost:3000"`
}

type JWTSecret struct {
	Secret string `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
}

// CompanyConfig is the workspace identity substituted into template previews
// for the company-name and agent-name system placeholders.
type CompanyConfig struct {
	Name             string `yaml:"name" env-default:"Messagedesk"`
	DefaultAgentName string `yaml:"default_agent_name" env-default:"Support"`
}

// LifecycleConfig drives the background job that archives abandoned drafts.
type LifecycleConfig struct {
	Interval        time.Duration `yaml:"interval" env-default:"1h"`
	StaleDraftAfter time.Duration `yaml:"stale_draft_after" env-default:"720h"`
}

func MustLoad() *Config {
	path := fetchConfigPath()

	if path == "" {
		panic("config file path is empty")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		panic("config file not found: " + path)
	}

	var config Config
	log.Printf("loading config from %s", path)
	if err := cleanenv.ReadConfig(path, &config); err != nil {
		panic(err)
	}
	return &config
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "./config/local.yaml", "config path")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
