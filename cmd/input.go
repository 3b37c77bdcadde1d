package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simon/xdoctl/internal/xdo"
)

// inputOptions collects the flags shared by the keyboard commands.
func inputOptions(cmd *cobra.Command) []xdo.Option {
	var opts []xdo.Option
	if w, _ := cmd.Flags().GetString("window"); w != "" {
		opts = append(opts, xdo.Opt("window", w))
	}
	if d, _ := cmd.Flags().GetInt("delay"); d > 0 {
		opts = append(opts, xdo.Opt("delay", d))
	}
	if c, _ := cmd.Flags().GetBool("clearmodifiers"); c {
		opts = append(opts, xdo.Flag("clearmodifiers"))
	}
	return opts
}

func addInputFlags(c *cobra.Command) {
	c.Flags().StringP("window", "w", "", "Send to this window instead of the focused one")
	c.Flags().Int("delay", 0, "Delay between keystrokes in milliseconds")
	c.Flags().Bool("clearmodifiers", false, "Clear active modifiers before sending")
}

var typeCmd = &cobra.Command{
	Use:   "type <text...>",
	Short: "Type text as keystrokes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBuilder()
		if err != nil {
			return err
		}
		text := strings.Join(args, " ")
		b.Type(text, inputOptions(cmd)...)
		if _, err := execute(b); err != nil {
			return fmt.Errorf("failed to type: %w", err)
		}
		return nil
	},
}

var keyCmd = &cobra.Command{
	Use:   "key <keysym...>",
	Short: "Press keys, e.g. ctrl+alt+t or Return",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBuilder()
		if err != nil {
			return err
		}
		b.Key(args, inputOptions(cmd)...)
		if _, err := execute(b); err != nil {
			return fmt.Errorf("failed to send keys: %w", err)
		}
		return nil
	},
}

var clickCmd = &cobra.Command{
	Use:   "click [button]",
	Short: "Click a mouse button (1 left, 2 middle, 3 right)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		button := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid button %q", args[0])
			}
			button = n
		}
		b, err := newBuilder()
		if err != nil {
			return err
		}
		var opts []xdo.Option
		if r, _ := cmd.Flags().GetInt("repeat"); r > 1 {
			opts = append(opts, xdo.Opt("repeat", r))
		}
		b.Click(button, opts...)
		if _, err := execute(b); err != nil {
			return fmt.Errorf("failed to click: %w", err)
		}
		return nil
	},
}

var mouseMoveCmd = &cobra.Command{
	Use:   "mousemove <x> <y>",
	Short: "Move the pointer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		xy, err := parseInts(args)
		if err != nil {
			return err
		}
		b, err := newBuilder()
		if err != nil {
			return err
		}
		if rel, _ := cmd.Flags().GetBool("relative"); rel {
			b.MouseMoveRelative(xy[0], xy[1])
		} else {
			b.MouseMove(xy[0], xy[1])
		}
		if _, err := execute(b); err != nil {
			return fmt.Errorf("failed to move pointer: %w", err)
		}
		return nil
	},
}

func init() {
	addInputFlags(typeCmd)
	addInputFlags(keyCmd)
	clickCmd.Flags().Int("repeat", 1, "Number of clicks")
	mouseMoveCmd.Flags().BoolP("relative", "r", false, "Move relative to the current position")

	rootCmd.AddCommand(typeCmd, keyCmd, clickCmd, mouseMoveCmd)
}
