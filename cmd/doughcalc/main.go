package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/artpar/doughcalc/internal/core/dough"
	"github.com/artpar/doughcalc/internal/shell/recipefile"
	"github.com/google/uuid"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to config file")
	showVersion := flag.Bool("version", false, "Print version and exit")
	recipePath := flag.String("recipe", "", "Derive the given recipe file once and print it as YAML")
	flag.Parse()

	// Handle version flag
	if *showVersion {
		fmt.Printf("doughcalc %s (built %s)\n", Version, BuildTime)
		return ExitSuccess
	}

	// Load configuration
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return ExitConfigError
	}

	// Setup logger
	logger := SetupLogger(cfg)

	if *recipePath != "" {
		return deriveOnce(*recipePath, cfg, logger, os.Stdout)
	}

	logger.Info("starting doughcalc",
		"version", Version,
		"config", *configPath,
	)

	// Create server
	server, err := NewServer(cfg, logger)
	if err != nil {
		if sErr, ok := err.(*ServerError); ok {
			logger.Error("failed to create server",
				"error", sErr.Err,
				"operation", sErr.Op,
			)
			return sErr.ExitCode
		}
		logger.Error("failed to create server", "error", err)
		return ExitConfigError
	}

	// Start server
	ctx := context.Background()
	if err := server.Start(ctx); err != nil {
		if sErr, ok := err.(*ServerError); ok {
			logger.Error("server error",
				"error", sErr.Err,
				"operation", sErr.Op,
			)
			return sErr.ExitCode
		}
		logger.Error("server error", "error", err)
		return ExitHTTPServerError
	}

	return ExitSuccess
}

// deriveOnce loads a recipe file on top of the configured defaults, derives
// it and writes the report to out.
func deriveOnce(path string, cfg *Config, logger *slog.Logger, out io.Writer) int {
	id := "calc_" + uuid.New().String()[:8]

	in, err := recipefile.Load(path, cfg.Recipe.Inputs())
	if err != nil {
		logger.Error("failed to load recipe", "calculation_id", id, "path", path, "error", err)
		return ExitRecipeError
	}

	recipe, err := dough.Derive(in)
	if err != nil {
		logger.Error("failed to derive recipe", "calculation_id", id, "path", path, "error", err)
		return ExitRecipeError
	}

	for _, n := range recipe.Notices {
		logger.Warn("recipe notice", "calculation_id", id, "notice", string(n))
	}

	if err := recipefile.Encode(out, recipe); err != nil {
		logger.Error("failed to write recipe", "calculation_id", id, "error", err)
		return ExitRecipeError
	}

	logger.Debug("recipe derived", "calculation_id", id, "path", path)
	return ExitSuccess
}
