package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/simon/xdoctl/internal/state"
)

var (
	historyHeader = lipgloss.NewStyle().Bold(true)
	historyFailed = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B31D28", Dark: "#FF5555"})
	historyDim    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#777777", Dark: "#6272A4"})
)

func writeHistory(w io.Writer, runs []state.Run) {
	fmt.Fprintln(w, historyHeader.Render(fmt.Sprintf("%-6s %-19s %-8s %-4s %s", "ID", "TIME", "HOST", "EXIT", "COMMAND")))
	for _, r := range runs {
		host := r.Host
		if host == "" {
			host = "local"
		}
		exit := strconv.Itoa(r.ExitCode)
		if r.ParseError != "" {
			exit = "parse"
		}
		line := fmt.Sprintf("%-6d %-19s %-8s %-4s %s",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04:05"), host, exit, strings.Join(r.Argv, " "))
		if r.ExitCode != 0 || r.ParseError != "" {
			line = historyFailed.Render(line)
		}
		fmt.Fprintln(w, line)
	}
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded xdotool runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := state.Open()
		if err != nil {
			return fmt.Errorf("failed to open history db: %w", err)
		}
		defer store.Close()

		runs, err := store.List(limit)
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
			return nil
		}
		writeHistory(cmd.OutOrStdout(), runs)
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the full output of a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		store, err := state.Open()
		if err != nil {
			return fmt.Errorf("failed to open history db: %w", err)
		}
		defer store.Close()

		r, err := store.Get(id)
		if err != nil {
			return fmt.Errorf("run %d: %w", id, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "command:  %s\n", strings.Join(r.Argv, " "))
		fmt.Fprintf(out, "exit:     %d\n", r.ExitCode)
		fmt.Fprintf(out, "queries:  %d\n", r.Queries)
		if r.ParseError != "" {
			fmt.Fprintf(out, "parse:    %s\n", historyFailed.Render(r.ParseError))
		}
		fmt.Fprintln(out, historyDim.Render("--- stdout"))
		fmt.Fprint(out, r.Stdout)
		if r.Stderr != "" {
			fmt.Fprintln(out, historyDim.Render("--- stderr"))
			fmt.Fprint(out, r.Stderr)
		}
		return nil
	},
}

var historyReplayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Run a recorded command line again and print its raw output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		store, err := state.Open()
		if err != nil {
			return fmt.Errorf("failed to open history db: %w", err)
		}
		r, err := store.Get(id)
		store.Close()
		if err != nil {
			return fmt.Errorf("run %d: %w", id, err)
		}
		if len(r.Argv) < 2 {
			return fmt.Errorf("run %d has no sub-commands to replay", id)
		}

		b, err := newBuilder()
		if err != nil {
			return err
		}
		// argv[0] is the binary recorded at the time; the builder supplies its own.
		b.Append(r.Argv[1:]...)
		res, err := execute(b)
		if res != nil {
			fmt.Fprint(cmd.OutOrStdout(), res.Stdout)
		}
		return err
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
	historyCmd.AddCommand(historyShowCmd, historyReplayCmd)
	rootCmd.AddCommand(historyCmd)
}
