package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/pageza/recipe-finder/backend/config"
	"github.com/pageza/recipe-finder/backend/internal/logger"
	"github.com/pageza/recipe-finder/backend/internal/router"
	"github.com/pageza/recipe-finder/backend/internal/server"
	"github.com/pageza/recipe-finder/backend/internal/service"
)

// Execute runs the root command with the given context and arguments.
func Execute(ctx context.Context, args []string, version string) error {
	cmd := &cli.Command{
		Name:    "recipe-finder",
		Usage:   "RESTful API for searching recipes using Spoonacular",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a TOML config file, overrides CONFIG_FILE",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "listen port, overrides PORT",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (trace|debug|info|warn|error), overrides LOG_LEVEL",
			},
		},
		Action: serveAction,
	}

	return cmd.Run(ctx, args)
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := os.Getenv(config.ConfigFileEnv)
	if cmd.IsSet("config") {
		path = cmd.String("config")
	}

	cfg, err := config.LoadConfigFrom(path)
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("port") {
		cfg.Server.Port = cmd.Int("port")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid command line flags: %w", err)
	}
	return cfg, nil
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	if !cfg.Environment.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	recipes, err := service.NewSpoonacularService(cfg.Spoonacular.APIKey,
		service.WithBaseURL(cfg.Spoonacular.BaseURL),
		service.WithTimeout(cfg.Spoonacular.Timeout),
		service.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("failed to create recipe service: %w", err)
	}

	srv := server.New(cfg.Addr(), router.SetupRouter(cfg, log, recipes), cfg.Server.ShutdownTimeout, log)

	logStartup(log, cfg, cmd.Root().Version)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info().Msg("stopped gracefully")
	return nil
}

func logStartup(log zerolog.Logger, cfg *config.Config, version string) {
	log.Info().
		Str("version", version).
		Str("environment", string(cfg.Environment)).
		Str("addr", cfg.Addr()).
		Strs("endpoints", []string{
			"GET /",
			"GET /health",
			"GET /metrics",
			"GET /recipes/search?query={query}&number={number}",
			"GET /recipes/random?tags={tags}&number={number}",
			"GET /recipes/ingredients?query={query}&number={number}",
			"GET /recipes/{id}",
		}).
		Msg("Recipe Finder API starting")
}
