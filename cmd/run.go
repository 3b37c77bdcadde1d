package cmd

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/simon/xdoctl/internal/script"
)

// expandScripts resolves each argument as a glob; arguments without matches
// are kept as literal paths so a missing file reports a clear error.
func expandScripts(patterns []string) ([]string, error) {
	var paths []string
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			paths = append(paths, p)
			continue
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

var runCmd = &cobra.Command{
	Use:   "run <script.yaml|glob>...",
	Short: "Run YAML scripts, one xdotool batch per script",
	Long: "Each script is compiled into a single xdotool invocation. Query results are\n" +
		"printed as YAML. Patterns such as 'scripts/**/*.yaml' are expanded.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := expandScripts(args)
		if err != nil {
			return err
		}
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		out := cmd.OutOrStdout()

		for _, path := range paths {
			s, err := script.Load(path)
			if err != nil {
				return err
			}
			b, err := newBuilder()
			if err != nil {
				return err
			}
			if err := script.Compile(s, b); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			if dryRun {
				printArgv(out, b.Args())
				continue
			}

			log.Debug("Running script", "path", path, "steps", len(s.Steps))
			res, err := execute(b)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if len(paths) > 1 {
				fmt.Fprintf(out, "# %s\n", path)
			}
			if err := printValues(out, res.Values); err != nil {
				return err
			}
		}
		return nil
	},
}

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the sub-commands scripts may use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range script.Commands() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolP("dry-run", "n", false, "Print the xdotool command line instead of running it")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(commandsCmd)
}
