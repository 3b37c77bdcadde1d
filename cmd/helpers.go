package cmd

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/simon/xdoctl/internal/config"
	"github.com/simon/xdoctl/internal/state"
	"github.com/simon/xdoctl/internal/xdo"
)

// historyKeep bounds the run history; older runs are pruned after each record.
const historyKeep = 500

func currentConfig() *config.Config {
	if cfg == nil {
		cfg, _ = config.Load(configPath)
	}
	return cfg
}

// resolveRunner returns a runner for the given host nickname.
// Empty host returns a LocalRunner.
func resolveRunner(host string) (xdo.Runner, error) {
	c := currentConfig()
	if host == "" {
		return &xdo.LocalRunner{Display: c.Display}, nil
	}

	h, ok := c.Hosts[host]
	if !ok {
		return nil, fmt.Errorf("unknown host %q (add it under hosts: in the config)", host)
	}

	return &xdo.SSHRunner{
		Nickname: host,
		Host:     h.Host,
		User:     h.User,
		SSHKey:   h.SSHKey,
		Display:  h.Display,
	}, nil
}

func binaryFor(host string) string {
	c := currentConfig()
	if h, ok := c.Hosts[host]; ok && host != "" {
		return h.Binary
	}
	return c.Binary
}

// newBuilder returns a builder for the --host target.
func newBuilder() (*xdo.Builder, error) {
	runner, err := resolveRunner(hostFlag)
	if err != nil {
		return nil, err
	}
	return xdo.New(
		xdo.WithRunner(runner),
		xdo.WithBinary(binaryFor(hostFlag)),
		xdo.WithLogger(log),
	), nil
}

// execute runs b, records it in the history and turns a non-zero exit into an error.
func execute(b *xdo.Builder) (*xdo.Result, error) {
	res, err := b.Execute()
	if res != nil {
		recordRun(b, res, err)
	}
	if err != nil {
		return res, err
	}
	return res, res.Err()
}

func recordRun(b *xdo.Builder, res *xdo.Result, parseErr error) {
	if !currentConfig().HistoryEnabled() {
		return
	}
	store, err := state.Open()
	if err != nil {
		log.Warn("History unavailable", "error", err.Error())
		return
	}
	defer store.Close()

	run := state.Run{
		Host:     b.Runner().HostName(),
		Argv:     res.Args,
		Queries:  b.Queries(),
		ExitCode: res.ExitCode,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
	}
	if parseErr != nil {
		run.ParseError = parseErr.Error()
	}
	id, err := store.Record(run)
	if err != nil {
		log.Warn("Failed to record run", "error", err.Error())
		return
	}
	log.Debug("Recorded run", "id", id)
	if _, err := store.Prune(historyKeep); err != nil {
		log.Warn("Failed to prune history", "error", err.Error())
	}
}

// printValues writes parsed results as a YAML list.
func printValues(w io.Writer, values []xdo.Fields) error {
	if len(values) == 0 {
		return nil
	}
	out, err := yaml.Marshal(values)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// printArgv writes argv with shell-style quoting for --dry-run.
func printArgv(w io.Writer, argv []string) {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t\n'\"\\$`;&|<>()*?") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		quoted[i] = a
	}
	fmt.Fprintln(w, strings.Join(quoted, " "))
}
