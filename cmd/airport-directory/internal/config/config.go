package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/flightforesight/flightforesight/internal/tracing"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env             string          `yaml:"env" env:"ENV" env-default:"local"`
	AirportCacheTTL time.Duration   `yaml:"airport_cache_ttl" env:"AIRPORT_CACHE_TTL" env-default:"6h"`
	Log             LogConfig       `yaml:"log"`
	Tracing         tracing.Config  `yaml:"tracing"`
	GRPC            GRPCConfig      `yaml:"grpc"`
	DB              DBConfig        `yaml:"db"`
	Redis           RedisConfig     `yaml:"redis"`
	Reference       ReferenceConfig `yaml:"reference"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type GRPCConfig struct {
	Host    string        `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port    int           `yaml:"port" env:"GRPC_PORT" env-default:"44045"`
	Timeout time.Duration `yaml:"timeout" env:"GRPC_TIMEOUT" env-default:"10s"`
}

type DBConfig struct {
	DSN      string `yaml:"dsn" env:"DB_DSN"`
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Name     string `yaml:"name" env:"DB_NAME" env-default:"flightforesight"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

// DatabaseURL prefers an explicit DSN and otherwise assembles one from the
// individual fields.
func (c DBConfig) DatabaseURL() string {
	if c.DSN != "" {
		return c.DSN
	}

	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}

	q := u.Query()
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()

	return u.String()
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type ReferenceConfig struct {
	BaseURL      string        `yaml:"base_url" env:"REFERENCE_BASE_URL"`
	AirportsPath string        `yaml:"airports_path" env:"REFERENCE_AIRPORTS_PATH" env-default:"airports.json"`
	AirlinesPath string        `yaml:"airlines_path" env:"REFERENCE_AIRLINES_PATH" env-default:"airlines.json"`
	Timeout      time.Duration `yaml:"timeout" env:"REFERENCE_TIMEOUT" env-default:"10s"`
	MaxRetries   int           `yaml:"max_retries" env:"REFERENCE_MAX_RETRIES" env-default:"2"`
	Backoff      time.Duration `yaml:"backoff" env:"REFERENCE_BACKOFF" env-default:"500ms"`
	SyncOnStart  bool          `yaml:"sync_on_start" env:"REFERENCE_SYNC_ON_START" env-default:"false"`
}

func (c ReferenceConfig) Enabled() bool {
	return c.BaseURL != ""
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
