package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/preston-bernstein/live-scores-service/internal/config"
	"github.com/preston-bernstein/live-scores-service/internal/logging"
	"github.com/preston-bernstein/live-scores-service/internal/server"
)

const (
	appName    = "live-scores-service"
	appVersion = "dev"
)

type options struct {
	configFile string
	envFile    string
	port       string
	provider   string
	version    bool
}

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	flagSet := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	flagSet.StringVarP(&opts.configFile, "config", "c", "", "path to a YAML config file (overrides CONFIG_FILE)")
	flagSet.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flagSet.StringVarP(&opts.port, "port", "p", "", "HTTP listen port (overrides PORT)")
	flagSet.StringVar(&opts.provider, "provider", "", "match provider: fixture or sportsfeed (overrides PROVIDER)")
	flagSet.BoolVar(&opts.version, "version", false, "print the version and exit")
	if err := flagSet.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func loadConfig(opts options) (config.Config, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return config.Config{}, fmt.Errorf("load env file: %w", err)
	}
	cfg, err := config.LoadFile(opts.configFile)
	if err != nil {
		return config.Config{}, err
	}
	if opts.port != "" {
		cfg.Port = opts.port
	}
	if opts.provider != "" {
		cfg.Provider = opts.provider
	}
	return cfg, nil
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if opts.version {
		fmt.Println(appName, appVersion)
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
	})
	logger.Info("configuration loaded",
		"provider", cfg.Provider,
		"port", cfg.Port,
		"poll_interval", cfg.PollInterval.String(),
		"cache_ttl", cfg.Feed.CacheTTL.String(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
	return nil
}
