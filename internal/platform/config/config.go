// Package config resolves service settings from defaults, an optional YAML
// file, an optional .env file and the process environment (highest wins).
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys double as YAML keys and, upper-cased, as environment variable names.
const (
	KeyConfigFile      = "config_file"
	KeyPostgresDSN     = "postgres_dsn"
	KeyHTTPAddr        = "http_addr"
	KeyReportTimezone  = "report_timezone"
	KeyInferredRoles   = "inferred_roles"
	KeyShutdownTimeout = "shutdown_timeout"
)

type Config struct {
	PostgresDSN     string
	HTTPAddr        string
	ReportTimezone  string
	InferredRoles   []string
	ShutdownTimeout time.Duration
}

// Load reads the configuration. dotEnvPath is loaded into the environment
// when the file exists; variables already set are left untouched.
func Load(dotEnvPath string) (*Config, error) {
	if dotEnvPath != "" {
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				return nil, fmt.Errorf("config.godotenv(%s): %w", dotEnvPath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config.os.Stat(%s): %w", dotEnvPath, err)
		}
	}

	v := viper.New()
	v.SetDefault(KeyHTTPAddr, ":8080")
	v.SetDefault(KeyReportTimezone, "Africa/Cairo")
	v.SetDefault(KeyInferredRoles, "teacher")
	v.SetDefault(KeyShutdownTimeout, 5*time.Second)
	v.AutomaticEnv()

	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config.ReadInConfig(%s): %w", file, err)
		}
	}

	timeout := v.GetDuration(KeyShutdownTimeout)
	if timeout <= 0 {
		return nil, fmt.Errorf("config: %s must be a positive duration, got %q", KeyShutdownTimeout, v.GetString(KeyShutdownTimeout))
	}

	return &Config{
		PostgresDSN:     v.GetString(KeyPostgresDSN),
		HTTPAddr:        v.GetString(KeyHTTPAddr),
		ReportTimezone:  v.GetString(KeyReportTimezone),
		InferredRoles:   roles(v.Get(KeyInferredRoles)),
		ShutdownTimeout: timeout,
	}, nil
}

// roles accepts a comma separated string (env) or a YAML list.
func roles(raw any) []string {
	var items []string
	switch r := raw.(type) {
	case string:
		items = strings.Split(r, ",")
	case []string:
		items = r
	case []any:
		for _, it := range r {
			items = append(items, fmt.Sprint(it))
		}
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.ToLower(strings.TrimSpace(it)); it != "" {
			out = append(out, it)
		}
	}
	return out
}
