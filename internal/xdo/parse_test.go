package xdo

import (
	"errors"
	"reflect"
	"testing"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want []string
	}{
		{"true is bare flag", []Option{Flag("sync")}, []string{"--sync"}},
		{"false is omitted", []Option{Opt("sync", false)}, nil},
		{"value follows flag", []Option{Opt("delay", 50)}, []string{"--delay", "50"}},
		{"string value", []Option{Opt("window", "%1")}, []string{"--window", "%1"}},
		{
			"order preserved",
			[]Option{Opt("delay", 12), Flag("clearmodifiers"), Opt("repeat", false), Opt("name", "x")},
			[]string{"--delay", "12", "--clearmodifiers", "--name", "x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokens(tt.opts...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokens() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCursor(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"a", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		c := NewCursor(tt.in)
		var got []string
		for c.Remaining() > 0 {
			line, err := c.Next()
			if err != nil {
				t.Fatal(err)
			}
			got = append(got, line)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NewCursor(%q) lines = %q, want %q", tt.in, got, tt.want)
		}
		if _, err := c.Next(); !errors.Is(err, ErrStreamExhausted) {
			t.Errorf("Next past end = %v, want ErrStreamExhausted", err)
		}
	}
}

func TestComposeSharesCursor(t *testing.T) {
	p := Compose(IntField("a"), Skip, LineField("b"))
	c := NewCursor("1\nignored\nname\nleft\n")

	got, err := p(c)
	if err != nil {
		t.Fatal(err)
	}
	want := Fields{"a": 1, "b": "name"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
	if c.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", c.Remaining())
	}
}

func TestComposeStopsOnError(t *testing.T) {
	p := Compose(IntField("a"), IntField("b"))
	if _, err := p(NewCursor("1\n")); !errors.Is(err, ErrStreamExhausted) {
		t.Errorf("err = %v, want ErrStreamExhausted", err)
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		line    string
		want    Fields
		wantErr bool
	}{
		{"Position: 10,20 (screen 0)", Fields{"x": 10, "y": 20}, false},
		{"  Position: 0,-4 (screen: 1)", Fields{"x": 0, "y": -4}, false},
		{"Position: 10;20", nil, true},
		{"Position 10,20", nil, true},
	}
	for _, tt := range tests {
		got, err := Position(NewCursor(tt.line))
		if (err != nil) != tt.wantErr {
			t.Errorf("Position(%q) err = %v", tt.line, err)
			continue
		}
		if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Position(%q) = %#v, want %#v", tt.line, got, tt.want)
		}
	}
}

func TestFieldsAccessors(t *testing.T) {
	f := Fields{"n": 3, "s": "x", "g": Fields{"x": 1}}
	if n, ok := f.Int("n"); !ok || n != 3 {
		t.Error("Int")
	}
	if _, ok := f.Int("s"); ok {
		t.Error("Int on string should fail")
	}
	if s, ok := f.String("s"); !ok || s != "x" {
		t.Error("String")
	}
	if g, ok := f.Group("g"); !ok || g["x"] != 1 {
		t.Error("Group")
	}
}
