package cli

import (
	"github.com/spf13/cobra"

	"github.com/d1nch8g/stompbox/audio"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List audio devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		devices, err := audio.Devices()
		if err != nil {
			return err
		}
		audio.PrintDevices(cmd.OutOrStdout(), devices)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
