package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop <n>",
	Short: "Switch to desktop n (0-based), or move a window there",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid desktop %q", args[0])
		}

		b, err := newBuilder()
		if err != nil {
			return err
		}

		window, _ := cmd.Flags().GetString("window")
		count, _ := cmd.Flags().GetInt("count")
		switch {
		case count > 0:
			b.SetNumDesktops(count)
		case window != "":
			b.SetDesktopForWindow(window, n)
		default:
			b.SetDesktop(n)
		}
		// Read back so the caller sees where things ended up.
		if window != "" {
			b.GetDesktopForWindow(window)
		} else {
			b.GetDesktop()
		}

		res, err := execute(b)
		if err != nil {
			return fmt.Errorf("failed to set desktop: %w", err)
		}
		return printValues(cmd.OutOrStdout(), res.Values)
	},
}

func init() {
	desktopCmd.Flags().StringP("window", "w", "", "Move this window to desktop n instead of switching")
	desktopCmd.Flags().Int("count", 0, "Set the number of desktops instead (n is ignored)")
	rootCmd.AddCommand(desktopCmd)
}
