package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mj1618/keycycle/internal/driver"
	"github.com/mj1618/keycycle/internal/logging"
	"github.com/mj1618/keycycle/internal/output"
	"github.com/mj1618/keycycle/internal/platform"
	"github.com/mj1618/keycycle/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keycycle",
	Short: "Periodically send select-all/copy/delete/paste/save to a VS Code window",
	Long: `Find a running Visual Studio Code window and, every 60 seconds, post the
key-chords ctrl+a, ctrl+c, ctrl+a, delete, ctrl+v, ctrl+s into it until
interrupted with Ctrl+C.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runLoop,
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format for list/once: yaml, json")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log every injected chord to stderr")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		level := "info"
		if verbose {
			level = "debug"
		}
		logger, err := logging.New(logging.Options{Level: level, Output: cmd.ErrOrStderr()})
		if err != nil {
			return err
		}
		slog.SetDefault(logger)

		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}

// newDriver builds a Driver over the current platform provider, writing
// status lines to the command's stdout.
func newDriver(cmd *cobra.Command) (*driver.Driver, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return driver.NewFromProvider(provider, driver.Options{
		Out:    cmd.OutOrStdout(),
		Logger: slog.Default(),
	})
}

func runLoop(cmd *cobra.Command, args []string) error {
	d, err := newDriver(cmd)
	if err != nil {
		return err
	}
	return d.Run(cmd.Context())
}
