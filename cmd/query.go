package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simon/xdoctl/internal/xdo"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query window, pointer and desktop state",
}

type querySpec struct {
	use   string
	short string
	args  cobra.PositionalArgs
	queue func(b *xdo.Builder, cmd *cobra.Command, args []string)
}

// windowArg returns the optional window argument; empty means the window stack.
func windowArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

var querySpecs = []querySpec{
	{"active", "Print the active window id", cobra.NoArgs,
		func(b *xdo.Builder, _ *cobra.Command, _ []string) { b.GetActiveWindow() }},
	{"focus", "Print the focused window id", cobra.NoArgs,
		func(b *xdo.Builder, _ *cobra.Command, _ []string) { b.GetWindowFocus() }},
	{"name [window]", "Print a window's name", cobra.MaximumNArgs(1),
		func(b *xdo.Builder, _ *cobra.Command, args []string) { b.GetWindowName(windowArg(args)) }},
	{"pid [window]", "Print a window's process id", cobra.MaximumNArgs(1),
		func(b *xdo.Builder, _ *cobra.Command, args []string) { b.GetWindowPID(windowArg(args)) }},
	{"geometry [window]", "Print a window's position and size", cobra.MaximumNArgs(1),
		func(b *xdo.Builder, _ *cobra.Command, args []string) { b.GetWindowGeometry(windowArg(args)) }},
	{"display", "Print the display size", cobra.NoArgs,
		func(b *xdo.Builder, _ *cobra.Command, _ []string) { b.GetDisplayGeometry() }},
	{"mouse", "Print the pointer location", cobra.NoArgs,
		func(b *xdo.Builder, _ *cobra.Command, _ []string) { b.GetMouseLocation() }},
	{"desktop", "Print the current desktop", cobra.NoArgs,
		func(b *xdo.Builder, _ *cobra.Command, _ []string) { b.GetDesktop() }},
	{"desktops", "Print the number of desktops", cobra.NoArgs,
		func(b *xdo.Builder, _ *cobra.Command, _ []string) { b.GetNumDesktops() }},
	{"window-desktop [window]", "Print the desktop a window is on", cobra.MaximumNArgs(1),
		func(b *xdo.Builder, _ *cobra.Command, args []string) { b.GetDesktopForWindow(windowArg(args)) }},
	{"select", "Click a window and print its id", cobra.NoArgs,
		func(b *xdo.Builder, _ *cobra.Command, _ []string) { b.SelectWindow() }},
	{"search <pattern>", "Print the first window matching pattern", cobra.ExactArgs(1),
		func(b *xdo.Builder, cmd *cobra.Command, args []string) {
			var opts []xdo.Option
			by, _ := cmd.Flags().GetString("by")
			if by != "" {
				opts = append(opts, xdo.Flag(by))
			}
			if visible, _ := cmd.Flags().GetBool("onlyvisible"); visible {
				opts = append(opts, xdo.Flag("onlyvisible"))
			}
			b.Search(args[0], opts...)
		}},
}

func newQueryCommand(q querySpec) *cobra.Command {
	return &cobra.Command{
		Use:   q.use,
		Short: q.short,
		Args:  q.args,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBuilder()
			if err != nil {
				return err
			}
			q.queue(b, cmd, args)

			res, err := execute(b)
			if err != nil {
				return fmt.Errorf("query failed: %w", err)
			}
			return printValues(cmd.OutOrStdout(), res.Values)
		},
	}
}

func init() {
	for _, q := range querySpecs {
		c := newQueryCommand(q)
		if c.Name() == "search" {
			c.Flags().String("by", "", "Match only against: name, class, classname or role")
			c.Flags().Bool("onlyvisible", false, "Only match visible windows")
		}
		queryCmd.AddCommand(c)
	}
	rootCmd.AddCommand(queryCmd)
}
