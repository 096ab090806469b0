package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	ErrJobNamesRequired     = errors.New("at least one job name is required")
	ErrInvalidCheckInterval = errors.New("check interval must be a positive number of seconds")
	ErrInvalidRestartDelay  = errors.New("restart delay must be a non-negative number of seconds")
)

type Config struct {
	Namespace      string
	CheckInterval  time.Duration
	RestartDelay   time.Duration
	SkipDelayOnOOM bool
	KubeConfig     string
	KubeMaster     string
	LogLevel       string
	LogFormat      string
	HTTPPort       string
	MetricsPort    string

	jobNames []string
}

// JobNames returns a copy of the configured job names in declaration order.
func (c Config) JobNames() []string {
	return slices.Clone(c.jobNames)
}

// Load reads the full controller configuration from the environment.
func Load() (*Config, error) {
	cfg := loadClusterAccess()

	cfg.jobNames = parseJobNames(os.Getenv(envKeyJobNames))
	if len(cfg.jobNames) == 0 {
		return nil, fmt.Errorf("%s: %w", envKeyJobNames, ErrJobNamesRequired)
	}

	cfg.SkipDelayOnOOM = parseBool(os.Getenv(envKeySkipDelayOnOOM))

	checkInterval, err := parseSeconds(getEnvOrDefault(envKeyCheckInterval, envDefaultCheckInterval))
	if err != nil || checkInterval <= 0 {
		return nil, fmt.Errorf("%s: %w", envKeyCheckInterval, errors.Join(ErrInvalidCheckInterval, err))
	}

	cfg.CheckInterval = checkInterval

	restartDelay, err := parseSeconds(getEnvOrDefault(envKeyRestartDelay, envDefaultRestartDelay))
	if err != nil || restartDelay < 0 {
		return nil, fmt.Errorf("%s: %w", envKeyRestartDelay, errors.Join(ErrInvalidRestartDelay, err))
	}

	cfg.RestartDelay = restartDelay

	return &cfg, nil
}

// LoadClusterAccess reads only the namespace, cluster connection and logging settings.
// One-shot commands use it and do not require JOB_NAMES.
func LoadClusterAccess() *Config {
	cfg := loadClusterAccess()

	return &cfg
}

func loadClusterAccess() Config {
	return Config{
		Namespace:   getEnvOrDefault(envKeyNamespace, envDefaultNamespace),
		KubeConfig:  strings.TrimSpace(os.Getenv(envKeyKubeConfig)),
		KubeMaster:  strings.TrimSpace(os.Getenv(envKeyKubeMaster)),
		LogLevel:    getEnvOrDefault(envKeyLogLevel, envDefaultLogLevel),
		LogFormat:   getEnvOrDefault(envKeyLogFormat, envDefaultLogFormat),
		HTTPPort:    strings.TrimSpace(os.Getenv(envKeyHTTPPort)),
		MetricsPort: strings.TrimSpace(os.Getenv(envKeyMetricsPort)),
	}
}

// parseJobNames splits a comma separated list, dropping blanks and repeats.
func parseJobNames(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))

	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" || slices.Contains(names, name) {
			continue
		}

		names = append(names, name)
	}

	return names
}

func parseSeconds(value string) (time.Duration, error) {
	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse seconds: %w", err)
	}

	return time.Duration(seconds) * time.Second, nil
}

func parseBool(value string) bool {
	return strings.ToLower(strings.TrimSpace(value)) == "true"
}

func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	return value
}
