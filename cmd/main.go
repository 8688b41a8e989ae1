// FILE: cmd/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/envconf"
	"go.uber.org/zap"
)

// AppConfig is the decoded view of the demo schema
type AppConfig struct {
	DatabaseURL  string        `env:"database_url" validate:"required"`
	AppName      string        `env:"app_name"`
	Port         int           `env:"port" validate:"gte=1,lte=65535"`
	ForceSSL     bool          `env:"force_ssl"`
	AllowedHosts []string      `env:"allowed_hosts"`
	Timeout      time.Duration `env:"timeout"`
}

func main() {
	dir := flag.String("dir", ".", "directory holding .env files")
	env := flag.String("env", envconf.DotenvEnvironment(), "dotenv environment name")
	prefix := flag.String("prefix", "", "key prefix")
	configFile := flag.String("config", "", "config file (TOML, YAML or JSON)")
	soft := flag.Bool("soft", false, "log missing mandatory keys instead of failing")
	verbose := flag.Bool("v", false, "log construction events")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	b := envconf.NewBuilder().WithDotenv(*dir, *env)
	if *configFile != "" {
		b.WithFile(*configFile)
	} else {
		b.WithFileDiscovery(envconf.DefaultDiscoveryOptions("app"), nil)
	}

	var app AppConfig
	cfg, err := b.
		WithArgs(flag.Args()).
		WithPrefix(*prefix).
		WithHardFail(!*soft).
		WithLogger(logger).
		WithSchema(declare).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(cfg.Report())

	if !cfg.Ready() {
		os.Exit(1)
	}
	if err := cfg.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Scan(&app); err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}

	dsn, _ := cfg.GetString("dsn")
	listen, _ := cfg.GetString("listen_addr")
	logger.Info("configuration ready",
		zap.String("app", app.AppName),
		zap.String("listen", listen),
		zap.Bool("force_ssl", app.ForceSSL),
		zap.Int("dsn_length", len(dsn)),
	)
}

func declare(s *envconf.Schema) {
	s.Mandatory("database_url", envconf.String(), envconf.Description("primary database DSN"), envconf.Aliases("dsn"))
	s.Optional("app_name", envconf.String(), "app")
	s.Optional("port", envconf.Int(), int64(8080))
	s.Optional("force_ssl", envconf.Bool(), true)
	s.Optional("allowed_hosts", envconf.Array(), nil, envconf.Aliases("hosts"))
	s.Optional("timeout", envconf.String(), "5s")

	cfg := s.Config()
	s.Property("listen_addr", envconf.Func(func() any {
		port, _ := cfg.GetInt64("port")
		return fmt.Sprintf(":%d", port)
	}))
}
