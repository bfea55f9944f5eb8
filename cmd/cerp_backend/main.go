package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/SscSPs/construct_erp/internal/platform/config"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "cerp_backend"
)

// BuildTime is overridden with -ldflags at release time.
var BuildTime = "dev"

// @title Construct ERP API
// @version 1.0
// @description Backend for construction site management: clients, projects, finance, inventory and daily logs.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Construction ERP backend",
		Long: `Serves the construction ERP API: clients, projects, finance,
inventory with purchase approvals, and daily site logs.

Without PGSQL_URL the server runs on in-memory demo data.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	cmd.AddCommand(serveCmd(), migrateCmd(), userCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// bootstrap loads the configuration and installs the JSON logger as default.
func bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
