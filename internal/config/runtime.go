package config

import (
	"github.com/caarlos0/env/v10"
)

// RuntimeConfig holds process-level settings for the pipeline binaries
type RuntimeConfig struct {
	// Logging configuration
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

func defaultRuntime() RuntimeConfig {
	return RuntimeConfig{
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// resolveRuntime parses the runtime group from the same snapshot as the rest
// of the config. String fields cannot fail to parse; if the parser ever
// reports an error the defaults are kept.
func resolveRuntime(environ Environ) RuntimeConfig {
	rt := RuntimeConfig{}
	if err := env.ParseWithOptions(&rt, env.Options{Environment: environ}); err != nil {
		return defaultRuntime()
	}
	return rt
}
