package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/cloudctl/internal/config"
	"github.com/shaiso/cloudctl/internal/domain"
	"github.com/shaiso/cloudctl/internal/handler"
	"github.com/shaiso/cloudctl/internal/telemetry"
)

// Options — параметры корневой команды.
type Options struct {
	Config  config.Config
	Metrics *telemetry.Metrics
	Version string

	Stdout io.Writer
	Stderr io.Writer

	// Session подменяет создание Session, например fake-клиентами в тестах.
	Session SessionFunc
}

// NewRootCmd создаёт корневую команду cloudctl со всеми группами.
func NewRootCmd(opts Options) *cobra.Command {
	cfg := opts.Config
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	format := domain.FormatJSON
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "cloudctl",
		Short:         "cloudctl: command-line client for the cloud management API",
		Version:       opts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := telemetry.SetupLogger(stderr, telemetry.LogConfig{
				Level:   cfg.LogLevel,
				Format:  cfg.LogFormat,
				Verbose: verbose,
			})
			logger = telemetry.WithCommand(logger, cmd.CommandPath())
			cmd.SetContext(telemetry.WithLogger(cmd.Context(), logger))
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.CloudURL, "cloud-url", cfg.CloudURL, "Cloud API URL (env CLOUD_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.GatewayURL, "gateway-url", cfg.GatewayURL, "API gateway URL, defaults to the cloud URL (env CLOUD_GATEWAY_URL)")
	rootCmd.PersistentFlags().Var(&format, "format", `Output format: "json" or "yaml"`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log HTTP requests to stderr")

	sessionFn := opts.Session
	if sessionFn == nil {
		sessionFn = func(ctx context.Context) (*Session, error) {
			c := cfg
			if err := c.Validate(); err != nil {
				return nil, err
			}
			return NewSession(ctx, c, opts.Metrics, telemetry.FromContext(ctx))
		}
	}
	outputFn := func() *Output { return NewOutput(format, stdout) }

	rootCmd.AddCommand(
		NewAccountCmd(sessionFn, outputFn),
		NewTokenCmd(sessionFn, outputFn),
		NewGrantCmd(sessionFn, outputFn),
		NewProjectCmd(sessionFn, outputFn),
		NewPolicyCmd(sessionFn, outputFn),
		NewShareCmd(sessionFn, outputFn),
		NewComponentCmd(sessionFn, outputFn),
		NewWorkerCmd(sessionFn, outputFn),
		NewDeploymentCmd(sessionFn, outputFn),
	)

	return rootCmd
}

// execute открывает Session, выполняет fn и выводит результат.
func execute(cmd *cobra.Command, sessionFn SessionFunc, outputFn func() *Output, fn func(ctx context.Context, s *Session) (handler.Result, error)) error {
	ctx := cmd.Context()
	s, err := sessionFn(ctx)
	if err != nil {
		return err
	}
	res, err := fn(ctx, s)
	if err != nil {
		return err
	}
	return outputFn().Print(res)
}
