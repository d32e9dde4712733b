package config

import (
	"flag"
	"os"
	"time"

	"github.com/flightforesight/flightforesight/internal/tracing"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env     string         `yaml:"env" env:"ENV" env-default:"local"`
	Log     LogConfig      `yaml:"log"`
	Tracing tracing.Config `yaml:"tracing"`
	HTTP    HTTPConfig     `yaml:"http"`
	CORS    CORSConfig     `yaml:"cors"`
	Clients ClientsConfig  `yaml:"clients"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"70s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
}

type ClientsConfig struct {
	Prediction PredictionClientConfig `yaml:"prediction"`
	Airport    AirportClientConfig    `yaml:"airport"`
}

type PredictionClientConfig struct {
	Address string        `yaml:"address" env:"PREDICTION_ADDRESS" env-default:"localhost:44046"`
	Timeout time.Duration `yaml:"timeout" env:"PREDICTION_TIMEOUT" env-default:"10s"`
}

type AirportClientConfig struct {
	Address     string        `yaml:"address" env:"AIRPORT_ADDRESS" env-default:"localhost:44045"`
	Timeout     time.Duration `yaml:"timeout" env:"AIRPORT_TIMEOUT" env-default:"5s"`
	SyncTimeout time.Duration `yaml:"sync_timeout" env:"AIRPORT_SYNC_TIMEOUT" env-default:"60s"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read the config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}
