// Package config provides runtime configuration values for the service.
package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultPort            = 8000
	defaultServiceName     = "bookshop-service"
	defaultShutdownTimeout = 10
	defaultLogLevel        = "info"
	maxPort                = 65535
)

// Config holds configuration knobs for the HTTP server and logging.
type Config struct {
	Port            int
	HTTPAddr        string
	ServiceName     string
	ShutdownTimeout time.Duration
	LogLevel        string
}

// positive returns n, or def when n is not a positive number. Viper yields
// zero for values it cannot cast, so malformed input lands on the default.
func positive(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

// validPort returns p, or def when p is outside the TCP port range.
func validPort(p, def int) int {
	if p < 1 || p > maxPort {
		return def
	}
	return p
}

// Load collects configuration from environment with defaults.
func Load() Config {
	v := viper.New()
	v.SetDefault("port", defaultPort)
	v.SetDefault("service_name", defaultServiceName)
	v.SetDefault("shutdown_timeout", defaultShutdownTimeout)
	v.SetDefault("log_level", defaultLogLevel)
	v.AutomaticEnv()

	port := validPort(v.GetInt("port"), defaultPort)
	name := strings.TrimSpace(v.GetString("service_name"))
	if name == "" {
		name = defaultServiceName
	}
	return Config{
		Port:            port,
		HTTPAddr:        ":" + strconv.Itoa(port),
		ServiceName:     name,
		ShutdownTimeout: time.Duration(positive(v.GetInt("shutdown_timeout"), defaultShutdownTimeout)) * time.Second,
		LogLevel:        strings.ToLower(v.GetString("log_level")),
	}
}
