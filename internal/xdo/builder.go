package xdo

import (
	"fmt"

	"github.com/simon/xdoctl/internal/logger"
)

// Builder accumulates xdotool sub-commands into a single invocation.
//
// A Builder is mutated in place by every call and returned for chaining;
// it must have a single owner at a time.
type Builder struct {
	bin          string
	runner       Runner
	log          *logger.Logger
	instructions []string
	parsers      []Parser
	err          error
}

type BuilderOption func(*Builder)

// WithRunner sets where the batch runs. The default is a LocalRunner.
func WithRunner(r Runner) BuilderOption {
	return func(b *Builder) { b.runner = r }
}

// WithBinary overrides the executable name.
func WithBinary(bin string) BuilderOption {
	return func(b *Builder) {
		if bin != "" {
			b.bin = bin
		}
	}
}

func WithLogger(l *logger.Logger) BuilderOption {
	return func(b *Builder) { b.log = l }
}

func New(opts ...BuilderOption) *Builder {
	b := &Builder{
		bin:    DefaultBinary,
		runner: &LocalRunner{},
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Append adds raw instruction tokens without registering a parser.
func (b *Builder) Append(args ...string) *Builder {
	b.instructions = append(b.instructions, args...)
	return b
}

// Query adds instruction tokens whose output p will parse, and returns the
// slot its value will occupy in Result.Values.
func (b *Builder) Query(p Parser, args ...string) Ref {
	b.instructions = append(b.instructions, args...)
	b.parsers = append(b.parsers, p)
	return Ref(len(b.parsers) - 1)
}

// Args returns the full argv, binary first.
func (b *Builder) Args() []string {
	return append([]string{b.bin}, b.instructions...)
}

// Queries reports how many results Execute will produce.
func (b *Builder) Queries() int { return len(b.parsers) }

// Runner returns the runner the batch will use.
func (b *Builder) Runner() Runner { return b.runner }

// Err returns the first error recorded while building.
func (b *Builder) Err() error { return b.err }

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Execute runs every queued sub-command in one process and parses its output.
//
// A non-zero exit returns the raw streams with nil Values and a nil error;
// use Result.Err to turn it into an error. Parse failures return the
// partially filled Result (Values nil) together with the error.
func (b *Builder) Execute() (*Result, error) {
	if b.err != nil {
		return nil, b.err
	}

	args := b.Args()
	b.log.Debug("Executing batch", "host", b.runner.HostName(), "argv", args, "queries", len(b.parsers))

	out, err := b.runner.Run(b.bin, b.instructions)
	if err != nil {
		b.log.Error("Failed to run batch", err, "argv", args)
		return nil, err
	}

	res := &Result{
		Args:     args,
		Stdout:   out.Stdout,
		Stderr:   out.Stderr,
		ExitCode: out.ExitCode,
	}
	if out.ExitCode != 0 {
		b.log.Warn("Batch exited non-zero", "exit_code", out.ExitCode, "stderr", out.Stderr)
		return res, nil
	}

	cur := NewCursor(out.Stdout)
	values := make([]Fields, 0, len(b.parsers))
	for i, p := range b.parsers {
		v, err := p(cur)
		if err != nil {
			b.log.Error("Failed to parse batch output", err, "query", i, "stdout", out.Stdout)
			return res, fmt.Errorf("parse result %d: %w", i, err)
		}
		values = append(values, v)
	}
	if n := cur.Remaining(); n > 0 {
		b.log.Debug("Unconsumed output lines", "count", n)
	}
	res.Values = values
	return res, nil
}
