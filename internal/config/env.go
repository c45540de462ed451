package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultPort           = "3000"
	defaultRateLimitRPS   = 50
	defaultRateLimitBurst = 100
)

type Env struct {
	AppEnv                string
	AppPort               string
	BasicAuthUsername     string
	BasicAuthPassword     string
	BasicAuthPasswordHash string
	RateLimitRPS          float64
	RateLimitBurst        int
}

// LoadEnv reads .env when it exists and then the process environment.
func LoadEnv(logger *logrus.Logger) Env {
	if err := godotenv.Load(); err != nil {
		logger.WithField("error", err.Error()).Warn("No .env file loaded, using process environment")
	}

	return Env{
		AppEnv:                os.Getenv("APP_ENV"),
		AppPort:               getEnv("APP_PORT", defaultPort),
		BasicAuthUsername:     os.Getenv("BASIC_AUTH_USERNAME"),
		BasicAuthPassword:     os.Getenv("BASIC_AUTH_PASSWORD"),
		BasicAuthPasswordHash: os.Getenv("BASIC_AUTH_PASSWORD_HASH"),
		RateLimitRPS:          getFloat(logger, "RATE_LIMIT_RPS", defaultRateLimitRPS),
		RateLimitBurst:        int(getFloat(logger, "RATE_LIMIT_BURST", defaultRateLimitBurst)),
	}
}

func (e Env) IsProduction() bool {
	return e.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(logger *logrus.Logger, key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		logger.WithFields(logrus.Fields{
			"key":   key,
			"value": raw,
		}).Warn("Ignoring invalid numeric setting")
		return fallback
	}
	return v
}
