package cmd

import (
	"github.com/mj1618/keycycle/internal/driver"
	"github.com/mj1618/keycycle/internal/model"
	"github.com/mj1618/keycycle/internal/output"
	"github.com/spf13/cobra"
)

// SendResult is the output of a successful send command.
type SendResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Handle uint64 `yaml:"hwnd"   json:"hwnd"`
	Key    string `yaml:"key"    json:"key"`
}

var sendCmd = &cobra.Command{
	Use:   "send <chord>",
	Short: "Send a single key-chord to the Visual Studio Code window",
	Long:  "Resolve the Visual Studio Code window the same way the loop does and post one key-chord (e.g. \"ctrl+s\", \"delete\", \"ctrl+shift+p\") to it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
}

func runSend(cmd *cobra.Command, args []string) error {
	chord, err := model.ParseChord(args[0])
	if err != nil {
		return err
	}
	d, err := newDriver(cmd)
	if err != nil {
		return err
	}
	result, err := sendChord(d, chord)
	if err != nil {
		return err
	}
	return output.Print(result)
}

func sendChord(d *driver.Driver, chord model.Chord) (SendResult, error) {
	handle, err := d.FindTargetWindow(driver.TitlePattern)
	if err != nil {
		return SendResult{}, err
	}
	w, err := d.Attach(handle)
	if err != nil {
		return SendResult{}, err
	}
	if err := w.Send(chord); err != nil {
		return SendResult{}, err
	}
	return SendResult{
		OK:     true,
		Action: "key",
		Handle: uint64(handle),
		Key:    chord.String(),
	}, nil
}
