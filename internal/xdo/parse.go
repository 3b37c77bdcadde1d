package xdo

import (
	"fmt"
	"strconv"
	"strings"
)

// Fields is one parsed result. Nested groups (geometry) are Fields too.
type Fields map[string]any

// Int returns the integer stored under key.
func (f Fields) Int(key string) (int, bool) {
	v, ok := f[key].(int)
	return v, ok
}

// String returns the string stored under key.
func (f Fields) String(key string) (string, bool) {
	v, ok := f[key].(string)
	return v, ok
}

// Group returns the nested Fields stored under key.
func (f Fields) Group(key string) (Fields, bool) {
	v, ok := f[key].(Fields)
	return v, ok
}

// Parser consumes the lines one sub-command printed and returns its result.
type Parser func(c *Cursor) (Fields, error)

// Compose applies parsers in order to the same cursor and merges their fields.
func Compose(parsers ...Parser) Parser {
	return func(c *Cursor) (Fields, error) {
		out := Fields{}
		for _, p := range parsers {
			f, err := p(c)
			if err != nil {
				return nil, err
			}
			for k, v := range f {
				out[k] = v
			}
		}
		return out, nil
	}
}

// Nest wraps the result of p under key.
func Nest(key string, p Parser) Parser {
	return func(c *Cursor) (Fields, error) {
		f, err := p(c)
		if err != nil {
			return nil, err
		}
		return Fields{key: f}, nil
	}
}

// IntField parses a line holding a single integer into {key: n}.
func IntField(key string) Parser {
	return func(c *Cursor) (Fields, error) {
		line, err := c.Next()
		if err != nil {
			return nil, err
		}
		n, err := parseInt(line, "integer")
		if err != nil {
			return nil, err
		}
		return Fields{key: n}, nil
	}
}

// LineField stores the raw line under key.
func LineField(key string) Parser {
	return func(c *Cursor) (Fields, error) {
		line, err := c.Next()
		if err != nil {
			return nil, err
		}
		return Fields{key: line}, nil
	}
}

// Skip consumes one line and contributes nothing.
func Skip(c *Cursor) (Fields, error) {
	if _, err := c.Next(); err != nil {
		return nil, err
	}
	return Fields{}, nil
}

// Position parses "Position: X,Y (screen: S)".
func Position(c *Cursor) (Fields, error) {
	line, err := c.Next()
	if err != nil {
		return nil, err
	}
	_, rest, ok := strings.Cut(line, ":")
	if !ok {
		return nil, &FormatError{Line: line, Want: "position"}
	}
	rest, _, _ = strings.Cut(rest, "(")
	xs, ys, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, &FormatError{Line: line, Want: "position"}
	}
	x, err := parseInt(xs, "position")
	if err != nil {
		return nil, err
	}
	y, err := parseInt(ys, "position")
	if err != nil {
		return nil, err
	}
	return Fields{"x": x, "y": y}, nil
}

// Size parses "Geometry: WxH".
func Size(c *Cursor) (Fields, error) {
	line, err := c.Next()
	if err != nil {
		return nil, err
	}
	_, rest, ok := strings.Cut(line, ":")
	if !ok {
		return nil, &FormatError{Line: line, Want: "geometry"}
	}
	ws, hs, ok := strings.Cut(rest, "x")
	if !ok {
		return nil, &FormatError{Line: line, Want: "geometry"}
	}
	w, err := parseInt(ws, "geometry")
	if err != nil {
		return nil, err
	}
	h, err := parseInt(hs, "geometry")
	if err != nil {
		return nil, err
	}
	return Fields{"width": w, "height": h}, nil
}

// WindowGeometry parses the three lines of getwindowgeometry.
var WindowGeometry = Nest("window_geometry", Compose(Skip, Position, Size))

// DisplayGeometry parses "W H" as printed by getdisplaygeometry.
var DisplayGeometry = Nest("window_geometry", func(c *Cursor) (Fields, error) {
	line, err := c.Next()
	if err != nil {
		return nil, err
	}
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return nil, &FormatError{Line: line, Want: "display geometry"}
	}
	x, err := parseInt(parts[0], "display geometry")
	if err != nil {
		return nil, err
	}
	y, err := parseInt(parts[1], "display geometry")
	if err != nil {
		return nil, err
	}
	return Fields{"x": x, "y": y}, nil
})

// MouseLocation parses "x:1 y:2 screen:0 window:1234".
func MouseLocation(c *Cursor) (Fields, error) {
	line, err := c.Next()
	if err != nil {
		return nil, err
	}
	out := Fields{}
	for _, tok := range strings.Fields(line) {
		k, v, ok := strings.Cut(tok, ":")
		if !ok {
			return nil, &FormatError{Line: line, Want: "mouse location"}
		}
		n, err := parseInt(v, "mouse location")
		if err != nil {
			return nil, err
		}
		out[k] = n
	}
	for _, k := range []string{"x", "y", "screen", "window"} {
		if _, ok := out[k]; !ok {
			return nil, &FormatError{Line: line, Want: "mouse location", Err: fmt.Errorf("missing %s", k)}
		}
	}
	return out, nil
}

func parseInt(s, want string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &FormatError{Line: s, Want: want, Err: err}
	}
	return n, nil
}
