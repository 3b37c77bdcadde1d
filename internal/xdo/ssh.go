package xdo

import (
	"fmt"
	"os/exec"
	"strings"
)

// SSHRunner runs the binary on a remote X display over SSH.
type SSHRunner struct {
	Nickname string
	Host     string
	User     string
	SSHKey   string
	Display  string
}

func (s *SSHRunner) HostName() string { return s.Nickname }

func (s *SSHRunner) sshArgs() []string {
	args := []string{
		"-o", "ControlMaster=auto",
		"-o", "ControlPath=/tmp/xdoctl-ssh-%r@%h:%p",
		"-o", "ControlPersist=60",
		"-o", "StrictHostKeyChecking=accept-new",
	}
	if s.SSHKey != "" {
		args = append(args, "-i", s.SSHKey)
	}
	if s.User != "" {
		args = append(args, fmt.Sprintf("%s@%s", s.User, s.Host))
	} else {
		args = append(args, s.Host)
	}
	return args
}

// RemoteCommand is the shell line executed on the remote host.
func (s *SSHRunner) RemoteCommand(bin string, args []string) string {
	parts := make([]string, 0, len(args)+2)
	if s.Display != "" {
		parts = append(parts, "DISPLAY="+shellQuote(s.Display))
	}
	parts = append(parts, shellQuote(bin))
	for _, a := range args {
		parts = append(parts, shellQuote(a))
	}
	return strings.Join(parts, " ")
}

// Run executes the batch remotely. ssh itself exits 255 on connection
// failure, which surfaces as an ordinary non-zero exit.
func (s *SSHRunner) Run(bin string, args []string) (Output, error) {
	sshArgs := append(s.sshArgs(), s.RemoteCommand(bin, args))
	return runCommand(exec.Command("ssh", sshArgs...))
}

// shellQuote wraps a string in single quotes, escaping any single quotes inside.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}
