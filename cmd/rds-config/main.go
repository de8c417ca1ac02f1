package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/aescanero/rds-guard/internal/config"
	"github.com/aescanero/rds-guard/internal/logging"
	"github.com/aescanero/rds-guard/internal/publish"
	"github.com/aescanero/rds-guard/internal/topics"
)

var (
	// Version is set at build time
	Version = "dev"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], config.OSEnviron(), os.Stdout, os.Stderr))
}

// run resolves the configuration from environ and prints it to stdout.
// Logs go to stderr so the output can be eval'd by an entrypoint script.
func run(args []string, environ config.Environ, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("rds-config", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	format := flags.StringP("format", "f", string(config.FormatEnv), "output format: env, json or text")
	groupNames := flags.StringSliceP("group", "g", nil, "only print these groups (rtl-sdr, redsea, mqtt, publishing, web-ui, runtime)")
	showSecrets := flags.Bool("show-secrets", false, "print MQTT_PASSWORD instead of blanking it")
	showVersion := flags.Bool("version", false, "print version and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *showVersion {
		fmt.Fprintf(stdout, "rds-config %s (built %s)\n", Version, BuildTime)
		return 0
	}

	groups := make([]config.Group, 0, len(*groupNames))
	for _, name := range *groupNames {
		g, err := config.ParseGroup(name)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid --group: %v\n", err)
			return 1
		}
		groups = append(groups, g)
	}

	cfg := config.Resolve(environ)

	logger, err := logging.New(logging.Options{
		Level:  cfg.Runtime.LogLevel,
		Format: cfg.Runtime.LogFormat,
		Writer: stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("configuration resolved",
		zap.String("version", Version),
		zap.String("config", cfg.String()),
	)
	checkConfig(cfg, logger)

	switch config.Format(*format) {
	case "text":
		_, err = fmt.Fprintln(stdout, cfg.String())
	default:
		err = config.Render(stdout, cfg.Settings(), config.RenderOptions{
			Format:      config.Format(*format),
			Groups:      groups,
			ShowSecrets: *showSecrets,
		})
	}
	if err != nil {
		logger.Error("failed to write configuration", zap.Error(err))
		return 1
	}

	return 0
}

// checkConfig logs values that resolve fine but will surprise a collaborator
func checkConfig(cfg *config.Config, logger *zap.Logger) {
	selector, err := publish.NewSelector(cfg.Publishing.Mode)
	if err != nil {
		logger.Error("failed to build publish selector", zap.Error(err))
	} else if selector.Mode() != cfg.Publishing.Mode {
		logger.Warn("unrecognized publish mode, publisher will use essential",
			zap.String("publish_mode", string(cfg.Publishing.Mode)),
			zap.String("effective_mode", string(selector.Mode())),
		)
	}

	if !cfg.MQTT.Enabled {
		return
	}

	if cfg.MQTT.Host == "" {
		logger.Warn("mqtt enabled without MQTT_HOST")
	}

	layout, err := topics.New(cfg.MQTT.TopicPrefix)
	if err != nil {
		logger.Warn("mqtt topic prefix is not publishable",
			zap.String("topic_prefix", cfg.MQTT.TopicPrefix),
			zap.Error(err),
		)
		return
	}

	status, err := layout.Status()
	if err != nil {
		logger.Error("failed to render status topic", zap.Error(err))
		return
	}
	logger.Info("mqtt publishing",
		zap.String("host", cfg.MQTT.Host),
		zap.Int("port", cfg.MQTT.Port),
		zap.String("status_topic", status),
		zap.Int("status_interval_s", cfg.Publishing.StatusInterval),
	)
}
