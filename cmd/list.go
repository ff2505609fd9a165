package cmd

import (
	"fmt"
	"regexp"

	"github.com/mj1618/keycycle/internal/driver"
	"github.com/mj1618/keycycle/internal/model"
	"github.com/mj1618/keycycle/internal/output"
	"github.com/mj1618/keycycle/internal/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the windows keycycle would target",
	Long:  "List top-level windows whose title matches the Visual Studio Code pattern, in the order the window manager enumerates them. The first entry is the one keycycle attaches to.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("all", false, "List every top-level window, not just matching ones")
	listCmd.Flags().Bool("visible", false, "Only list visible windows")
	listCmd.Flags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.WindowFinder == nil {
		return fmt.Errorf("window enumeration not available on this platform")
	}

	all, _ := cmd.Flags().GetBool("all")
	visible, _ := cmd.Flags().GetBool("visible")

	result, err := listWindows(provider.WindowFinder, all, visible)
	if err != nil {
		return err
	}
	return output.Print(result)
}

func listWindows(finder platform.WindowFinder, all, visible bool) (output.ListResult, error) {
	opts := platform.ListOptions{VisibleOnly: visible}
	var result output.ListResult
	if !all {
		opts.Title = regexp.MustCompile(driver.TitlePattern)
		opts.Backend = driver.Backend
		result.Pattern = driver.TitlePattern
		result.Backend = driver.Backend
	}

	windows, err := finder.ListWindows(opts)
	if err != nil {
		return output.ListResult{}, err
	}
	result.Windows = windows
	if result.Windows == nil {
		result.Windows = []model.Window{}
	}
	return result, nil
}
