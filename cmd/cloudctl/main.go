// cloudctl — инструмент командной строки для управления аккаунтами,
// проектами, компонентами, воркерами и публикациями API через cloud API.
//
// Использование:
//
//	cloudctl [--cloud-url URL] [--format json|yaml] [-v] <command> <subcommand> [flags]
//
// Учётные данные: CLOUD_TOKEN_FILE (JSON с токеном и секретом) или
// CLOUD_TOKEN_SECRET.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shaiso/cloudctl/internal/cli"
	"github.com/shaiso/cloudctl/internal/config"
	"github.com/shaiso/cloudctl/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	metrics := telemetry.NewMetrics()
	rootCmd := cli.NewRootCmd(cli.Options{
		Config:  cfg,
		Metrics: metrics,
		Version: version,
	})

	executed, err := rootCmd.ExecuteContextC(ctx)
	if executed != nil {
		metrics.ObserveCommand(executed.CommandPath(), err)
	}
	if cfg.MetricsTextfile != "" {
		if werr := metrics.WriteTextfile(cfg.MetricsTextfile); werr != nil {
			fmt.Fprintln(os.Stderr, "warning: write metrics:", werr)
		}
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
