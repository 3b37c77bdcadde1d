package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simon/xdoctl/internal/xdo"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Act on a window (id or stack reference such as %1)",
}

// runWindowAction queues one action and runs it as its own batch.
func runWindowAction(cmd *cobra.Command, queue func(b *xdo.Builder, opts []xdo.Option)) error {
	b, err := newBuilder()
	if err != nil {
		return err
	}
	var opts []xdo.Option
	if sync, _ := cmd.Flags().GetBool("sync"); sync {
		opts = append(opts, xdo.Flag("sync"))
	}
	queue(b, opts)
	if _, err := execute(b); err != nil {
		return fmt.Errorf("%s failed: %w", cmd.Name(), err)
	}
	return nil
}

func simpleWindowCommand(use, short string, queue func(b *xdo.Builder, window string, opts []xdo.Option)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <window>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindowAction(cmd, func(b *xdo.Builder, opts []xdo.Option) {
				queue(b, args[0], opts)
			})
		},
	}
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = n
	}
	return out, nil
}

var windowMoveCmd = &cobra.Command{
	Use:   "move <window> <x> <y>",
	Short: "Move a window",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		xy, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		return runWindowAction(cmd, func(b *xdo.Builder, opts []xdo.Option) {
			b.WindowMove(args[0], xy[0], xy[1], opts...)
		})
	},
}

var windowSizeCmd = &cobra.Command{
	Use:   "size <window> <width> <height>",
	Short: "Resize a window",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		wh, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		return runWindowAction(cmd, func(b *xdo.Builder, opts []xdo.Option) {
			b.WindowSize(args[0], wh[0], wh[1], opts...)
		})
	},
}

var windowKillCmd = &cobra.Command{
	Use:   "kill <window>",
	Short: "Kill the client owning a window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Fprintf(cmd.OutOrStdout(), "Kill window %s? [y/N] ", args[0])
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, _ := reader.ReadString('\n')
			if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
		}

		if err := runWindowAction(cmd, func(b *xdo.Builder, _ []xdo.Option) {
			b.WindowKill(args[0])
		}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Killed window %s\n", args[0])
		return nil
	},
}

func init() {
	windowCmd.PersistentFlags().Bool("sync", false, "Wait until the window manager has applied the change")
	windowKillCmd.Flags().BoolP("force", "f", false, "Skip confirmation")

	windowCmd.AddCommand(
		simpleWindowCommand("activate", "Activate a window, switching desktops if needed",
			func(b *xdo.Builder, w string, opts []xdo.Option) { b.WindowActivate(w, opts...) }),
		simpleWindowCommand("focus", "Give a window input focus",
			func(b *xdo.Builder, w string, opts []xdo.Option) { b.WindowFocus(w, opts...) }),
		simpleWindowCommand("map", "Map (show) a window",
			func(b *xdo.Builder, w string, opts []xdo.Option) { b.WindowMap(w, opts...) }),
		simpleWindowCommand("unmap", "Unmap (hide) a window",
			func(b *xdo.Builder, w string, opts []xdo.Option) { b.WindowUnmap(w, opts...) }),
		simpleWindowCommand("minimize", "Minimize a window",
			func(b *xdo.Builder, w string, opts []xdo.Option) { b.WindowMinimize(w, opts...) }),
		simpleWindowCommand("raise", "Raise a window to the top of the stack",
			func(b *xdo.Builder, w string, _ []xdo.Option) { b.WindowRaise(w) }),
		windowMoveCmd,
		windowSizeCmd,
		windowKillCmd,
	)
	rootCmd.AddCommand(windowCmd)
}
