package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/mj1618/keycycle/internal/driver"
	"github.com/mj1618/keycycle/internal/model"
	"github.com/mj1618/keycycle/internal/output"
	"github.com/spf13/cobra"
)

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Run a single key-chord cycle and exit",
	Long:  "Resolve the Visual Studio Code window, send one ctrl+a, ctrl+c, ctrl+a, delete, ctrl+v, ctrl+s cycle and print the result.",
	Args:  cobra.NoArgs,
	RunE:  runOnce,
}

func init() {
	rootCmd.AddCommand(onceCmd)
	onceCmd.Flags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
}

func runOnce(cmd *cobra.Command, args []string) error {
	d, err := newDriver(cmd)
	if err != nil {
		return err
	}
	result, err := executeCycle(cmd.Context(), d)
	if err != nil {
		_ = output.Print(result)
		return err
	}
	return output.Print(result)
}

// executeCycle resolves and attaches to the target window, then runs one
// cycle. The result is filled in even when an error is returned.
func executeCycle(ctx context.Context, d *driver.Driver) (output.CycleResult, error) {
	result := output.CycleResult{Action: "cycle", Keys: []string{}}
	start := time.Now()

	target, err := d.FindTarget(driver.TitlePattern)
	if err != nil {
		result.Error = err.Error()
		return finish(&result, start), err
	}
	result.Handle = uint64(target.Handle)
	result.Title = target.Title

	w, err := d.Attach(target.Handle)
	if err != nil {
		result.Error = err.Error()
		return finish(&result, start), err
	}
	if err := d.RunCycle(ctx, w); err != nil {
		result.Error = err.Error()
		return finish(&result, start), err
	}

	result.OK = true
	result.Keys = model.ChordStrings(driver.Cycle)
	return finish(&result, start), nil
}

func finish(result *output.CycleResult, start time.Time) output.CycleResult {
	result.Elapsed = fmt.Sprintf("%.2fs", time.Since(start).Seconds())
	return *result
}
