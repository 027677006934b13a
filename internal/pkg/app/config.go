package app

import (
	"time"

	"github.com/nil-go/konf"
	"github.com/nil-go/konf/provider/env"
	"github.com/nil-go/konf/provider/file"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type WebConfig struct {
	Host string
	Port string
}

type DBConfig struct {
	DriverName       string
	ConnectionString string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type StripeConfig struct {
	SecretKey string
}

type KafkaConfig struct {
	Addresses []string
	Topic     string
}

type LoggingConfig struct {
	Level int
}

type SentryConfig struct {
	DSN         string
	Environment string
}

type Config struct {
	Web     WebConfig
	DB      DBConfig
	JWT     JWTConfig
	Stripe  StripeConfig
	Kafka   KafkaConfig
	Logging LoggingConfig
	Sentry  SentryConfig
}

// ReadLocalConfig loads the yaml config file and applies CAMP_* environment
// overrides on top, so credentials and secrets never have to live in the file.
func ReadLocalConfig(path string) (Config, error) {
	var loader konf.Config

	err := loader.Load(file.New(path, file.WithUnmarshal(yaml.Unmarshal)))
	if err != nil {
		return Config{}, errors.Wrap(err, "load config file")
	}

	err = loader.Load(env.New(env.WithPrefix("CAMP_")))
	if err != nil {
		return Config{}, errors.Wrap(err, "load config env")
	}

	var config Config
	err = loader.Unmarshal("", &config)
	if err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	if config.JWT.TTL == 0 {
		config.JWT.TTL = time.Hour
	}

	return config, nil
}
