package script

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/simon/xdoctl/internal/xdo"
)

// Script is a list of xdotool steps run as one batch.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is a single sub-command. In YAML it is either a bare name
// ("getactivewindow") or a one-key mapping from name to Args.
type Step struct {
	Command string
	Args    Args
	line    int
}

type Args struct {
	Window   string   `yaml:"window"`
	X        int      `yaml:"x"`
	Y        int      `yaml:"y"`
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	Button   int      `yaml:"button"`
	Keys     []string `yaml:"keys"`
	Text     string   `yaml:"text"`
	Pattern  string   `yaml:"pattern"`
	Desktop  int      `yaml:"desktop"`
	Count    int      `yaml:"count"`
	Seconds  float64  `yaml:"seconds"`
	Relative bool     `yaml:"relative"`
	Parent   string   `yaml:"parent"`
	Options  Options  `yaml:"options"`
}

// Options keeps flags in file order so the generated argv is stable.
type Options []xdo.Option

func (o *Options) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: options must be a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		var v any
		if err := n.Content[i+1].Decode(&v); err != nil {
			return err
		}
		*o = append(*o, xdo.Opt(n.Content[i].Value, v))
	}
	return nil
}

func (s *Step) UnmarshalYAML(n *yaml.Node) error {
	s.line = n.Line
	switch n.Kind {
	case yaml.ScalarNode:
		s.Command = n.Value
		return nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return fmt.Errorf("line %d: step must have exactly one command", n.Line)
		}
		s.Command = n.Content[0].Value
		val := n.Content[1]
		if val.Tag == "!!null" {
			return nil
		}
		return val.Decode(&s.Args)
	default:
		return fmt.Errorf("line %d: step must be a name or a mapping", n.Line)
	}
}

// Parse decodes a script from YAML.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("script has no steps")
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Compile queues every step of s on b.
func Compile(s *Script, b *xdo.Builder) error {
	for i, st := range s.Steps {
		fn, ok := commands[st.Command]
		if !ok {
			return fmt.Errorf("step %d (line %d): unknown command %q", i+1, st.line, st.Command)
		}
		if err := fn(b, st.Args); err != nil {
			return fmt.Errorf("step %d (line %d) %s: %w", i+1, st.line, st.Command, err)
		}
		if err := b.Err(); err != nil {
			return fmt.Errorf("step %d (line %d): %w", i+1, st.line, err)
		}
	}
	return nil
}

// Commands lists the sub-command names a script may use.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
