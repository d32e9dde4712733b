package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/flightforesight/flightforesight/internal/tracing"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env                string                 `yaml:"env" env:"ENV" env-default:"local"`
	Timezone           string                 `yaml:"timezone" env:"TIMEZONE" env-default:"UTC"`
	CruiseSpeedKmh     float64                `yaml:"cruise_speed_kmh" env:"CRUISE_SPEED_KMH" env-default:"880"`
	PredictionCacheTTL time.Duration          `yaml:"prediction_cache_ttl" env:"PREDICTION_CACHE_TTL" env-default:"30m"`
	Log                LogConfig              `yaml:"log"`
	Tracing            tracing.Config         `yaml:"tracing"`
	GRPC               GRPCConfig             `yaml:"grpc"`
	DB                 DBConfig               `yaml:"db"`
	Redis              RedisConfig            `yaml:"redis"`
	Kafka              KafkaConfig            `yaml:"kafka"`
	AirportDirectory   AirportDirectoryConfig `yaml:"airport_directory"`
	Model              ModelConfig            `yaml:"model"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type GRPCConfig struct {
	Host    string        `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port    int           `yaml:"port" env:"GRPC_PORT" env-default:"44046"`
	Timeout time.Duration `yaml:"timeout" env:"GRPC_TIMEOUT" env-default:"10s"`
}

type DBConfig struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Name     string `yaml:"name" env:"DB_NAME"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type KafkaConfig struct {
	Enabled bool          `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Brokers []string      `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:"," env-default:"localhost:9092"`
	Topic   string        `yaml:"topic" env:"KAFKA_TOPIC" env-default:"flightforesight.predictions"`
	Timeout time.Duration `yaml:"timeout" env:"KAFKA_TIMEOUT" env-default:"2s"`
}

type AirportDirectoryConfig struct {
	Host    string        `yaml:"host" env:"AIRPORT_DIRECTORY_HOST" env-default:"localhost"`
	Port    int           `yaml:"port" env:"AIRPORT_DIRECTORY_PORT" env-default:"44045"`
	Timeout time.Duration `yaml:"timeout" env:"AIRPORT_DIRECTORY_TIMEOUT" env-default:"3s"`
}

type ModelConfig struct {
	BaseURL string        `yaml:"base_url" env:"MODEL_BASE_URL" env-default:"http://localhost:8000"`
	Timeout time.Duration `yaml:"timeout" env:"MODEL_TIMEOUT" env-default:"5s"`
}

func (c AirportDirectoryConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DSN returns a postgres URL, or an empty string when no database is
// configured.
func (c DBConfig) DSN() string {
	if c.Name == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s", c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// Location resolves Timezone. Naive timestamps from clients are read in it.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
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
