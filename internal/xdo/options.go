package xdo

import "fmt"

// Option is a named sub-command flag. A true value renders a bare --name,
// false renders nothing, anything else renders --name followed by the value.
type Option struct {
	Name  string
	Value any
}

// Flag returns a bare boolean option, e.g. Flag("sync") renders --sync.
func Flag(name string) Option {
	return Option{Name: name, Value: true}
}

// Opt returns an option with a value, e.g. Opt("delay", 50) renders --delay 50.
func Opt(name string, value any) Option {
	return Option{Name: name, Value: value}
}

// Tokens translates opts into argv tokens, preserving their order.
func Tokens(opts ...Option) []string {
	var out []string
	for _, o := range opts {
		switch v := o.Value.(type) {
		case bool:
			if v {
				out = append(out, "--"+o.Name)
			}
		default:
			out = append(out, "--"+o.Name, fmt.Sprint(v))
		}
	}
	return out
}

func hasOption(opts []Option, name string) bool {
	for _, o := range opts {
		if o.Name == name {
			return true
		}
	}
	return false
}
