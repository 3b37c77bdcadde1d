package xdo

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type fakeRunner struct {
	out   Output
	err   error
	calls int
	bin   string
	args  []string
}

func (f *fakeRunner) HostName() string { return "fake" }

func (f *fakeRunner) Run(bin string, args []string) (Output, error) {
	f.calls++
	f.bin = bin
	f.args = args
	return f.out, f.err
}

func stdout(s string) *fakeRunner {
	return &fakeRunner{out: Output{Stdout: s}}
}

func TestExecuteParsesQueries(t *testing.T) {
	tests := []struct {
		name   string
		build  func(b *Builder)
		stdout string
		want   []Fields
	}{
		{
			name:   "current desktop",
			build:  func(b *Builder) { b.GetDesktop() },
			stdout: "3\n",
			want:   []Fields{{"desktop": 3}},
		},
		{
			name:   "display geometry",
			build:  func(b *Builder) { b.GetDisplayGeometry() },
			stdout: "1920 1080\n",
			want:   []Fields{{"window_geometry": Fields{"x": 1920, "y": 1080}}},
		},
		{
			name:   "window geometry",
			build:  func(b *Builder) { b.GetWindowGeometry("") },
			stdout: "Window 123\nPosition: 10,20 (screen 0)\nGeometry: 800x600\n",
			want: []Fields{{"window_geometry": Fields{
				"x": 10, "y": 20, "width": 800, "height": 600,
			}}},
		},
		{
			name:   "window geometry indented as xdotool prints it",
			build:  func(b *Builder) { b.GetWindowGeometry("42") },
			stdout: "Window 42\n  Position: -5,0 (screen: 1)\n  Geometry: 1280x720\n",
			want: []Fields{{"window_geometry": Fields{
				"x": -5, "y": 0, "width": 1280, "height": 720,
			}}},
		},
		{
			name:   "mouse location",
			build:  func(b *Builder) { b.GetMouseLocation() },
			stdout: "x:100 y:200 screen:0 window:6291462\n",
			want:   []Fields{{"x": 100, "y": 200, "screen": 0, "window": 6291462}},
		},
		{
			name: "two queries stay aligned",
			build: func(b *Builder) {
				b.GetActiveWindow().GetWindowName("%1")
			},
			stdout: "6291462\nTerminal - vim\n",
			want: []Fields{
				{"window": 6291462},
				{"window_name": "Terminal - vim"},
			},
		},
		{
			name: "actions between queries do not consume output",
			build: func(b *Builder) {
				b.GetNumDesktops().SetDesktop(1).GetDesktop().GetWindowPID("")
			},
			stdout: "4\n1\n777\n",
			want: []Fields{
				{"n_desktop": 4},
				{"desktop": 1},
				{"window_pid": 777},
			},
		},
		{
			name:   "empty window name",
			build:  func(b *Builder) { b.GetWindowName("1") },
			stdout: "\n",
			want:   []Fields{{"window_name": ""}},
		},
		{
			name:   "search keeps first id",
			build:  func(b *Builder) { b.Search("firefox", Opt("class", true)) },
			stdout: "123\n",
			want:   []Fields{{"window": 123}},
		},
		{
			name: "select window then desktop for window",
			build: func(b *Builder) {
				b.SelectWindow().GetDesktopForWindow("%1")
			},
			stdout: "99\n2\n",
			want:   []Fields{{"window": 99}, {"desktop": 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithRunner(stdout(tt.stdout)))
			tt.build(b)
			res, err := b.Execute()
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if !reflect.DeepEqual(res.Values, tt.want) {
				t.Errorf("Values = %#v, want %#v", res.Values, tt.want)
			}
			if res.Stdout != tt.stdout {
				t.Errorf("Stdout = %q, want %q", res.Stdout, tt.stdout)
			}
		})
	}
}

func TestExecuteActionsOnly(t *testing.T) {
	r := stdout("")
	b := New(WithRunner(r)).
		WindowActivate("123", Flag("sync")).
		Key([]string{"ctrl+l"}, Flag("clearmodifiers")).
		Type("hello world").
		MouseMove(10, 20)

	res, err := b.Execute()
	if err != nil {
		t.Fatal(err)
	}
	if res.ExitCode != 0 || !res.OK() {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if res.Values == nil || len(res.Values) != 0 {
		t.Errorf("Values = %#v, want empty non-nil", res.Values)
	}
	if r.bin != "xdotool" {
		t.Errorf("bin = %q", r.bin)
	}
	want := []string{
		"windowactivate", "--sync", "123",
		"key", "--clearmodifiers", "ctrl+l",
		"type", "hello world",
		"mousemove", "--", "10", "20",
	}
	if !reflect.DeepEqual(r.args, want) {
		t.Errorf("args = %q, want %q", r.args, want)
	}
}

func TestExecuteNonZeroExit(t *testing.T) {
	r := &fakeRunner{out: Output{Stdout: "partial\n", Stderr: "XGetWindowProperty failed", ExitCode: 1}}
	res, err := New(WithRunner(r)).GetActiveWindow().GetDesktop().Execute()
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Values != nil {
		t.Errorf("Values = %#v, want nil", res.Values)
	}
	if res.Stdout != "partial\n" || res.Stderr != "XGetWindowProperty failed" {
		t.Errorf("raw streams not kept: %+v", res)
	}
	var exitErr *ExitError
	if !errors.As(res.Err(), &exitErr) || exitErr.Code != 1 {
		t.Errorf("Err() = %v, want *ExitError code 1", res.Err())
	}
	if !strings.Contains(res.Err().Error(), "XGetWindowProperty") {
		t.Errorf("Err() = %q, want stderr in message", res.Err())
	}
}

func TestExecuteParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		build  func(b *Builder)
		stdout string
		check  func(error) bool
	}{
		{
			name:   "missing line",
			build:  func(b *Builder) { b.GetActiveWindow().GetDesktop() },
			stdout: "5\n",
			check:  func(err error) bool { return errors.Is(err, ErrStreamExhausted) },
		},
		{
			name:   "geometry truncated",
			build:  func(b *Builder) { b.GetWindowGeometry("") },
			stdout: "Window 1\nPosition: 1,2 (screen: 0)\n",
			check:  func(err error) bool { return errors.Is(err, ErrStreamExhausted) },
		},
		{
			name:   "not a number",
			build:  func(b *Builder) { b.GetDesktop() },
			stdout: "three\n",
			check: func(err error) bool {
				var fe *FormatError
				return errors.As(err, &fe)
			},
		},
		{
			name:   "bad geometry",
			build:  func(b *Builder) { b.GetWindowGeometry("") },
			stdout: "Window 1\nPosition: 1,2\nGeometry: 800-600\n",
			check: func(err error) bool {
				var fe *FormatError
				return errors.As(err, &fe) && fe.Want == "geometry"
			},
		},
		{
			name:   "mouse location missing window",
			build:  func(b *Builder) { b.GetMouseLocation() },
			stdout: "x:1 y:2 screen:0\n",
			check: func(err error) bool {
				var fe *FormatError
				return errors.As(err, &fe)
			},
		},
		{
			name:   "display geometry with one number",
			build:  func(b *Builder) { b.GetDisplayGeometry() },
			stdout: "1920\n",
			check: func(err error) bool {
				var fe *FormatError
				return errors.As(err, &fe)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithRunner(stdout(tt.stdout)))
			tt.build(b)
			res, err := b.Execute()
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
			if res == nil || res.Values != nil {
				t.Errorf("Result = %+v, want raw result without values", res)
			}
		})
	}
}

func TestNotImplementedIsSticky(t *testing.T) {
	for name, call := range map[string]func(*Builder) *Builder{
		"behave":               (*Builder).Behave,
		"behave_screen_edge":   (*Builder).BehaveScreenEdge,
		"set_desktop_viewport": (*Builder).SetDesktopViewport,
		"get_desktop_viewport": (*Builder).GetDesktopViewport,
	} {
		t.Run(name, func(t *testing.T) {
			r := stdout("")
			b := call(New(WithRunner(r)).GetDesktop()).Sleep(1)
			if !errors.Is(b.Err(), ErrNotImplemented) {
				t.Fatalf("Err() = %v", b.Err())
			}
			if _, err := b.Execute(); !errors.Is(err, ErrNotImplemented) {
				t.Errorf("Execute error = %v", err)
			}
			if r.calls != 0 {
				t.Errorf("runner called %d times, want 0", r.calls)
			}
		})
	}
}

func TestRunnerError(t *testing.T) {
	boom := errors.New("exec: not found")
	_, err := New(WithRunner(&fakeRunner{err: boom})).GetDesktop().Execute()
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestQueryRefs(t *testing.T) {
	b := New(WithRunner(stdout("7\nfoo\n")))
	b.Append("set_desktop", "2")
	first := b.Query(IntField("desktop"), "get_desktop")
	second := b.Query(LineField("window_name"), "getwindowname")

	if b.Queries() != 2 {
		t.Fatalf("Queries() = %d", b.Queries())
	}
	res, err := b.Execute()
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := res.Get(first).Int("desktop"); n != 7 {
		t.Errorf("first = %v", res.Get(first))
	}
	if s, _ := res.Get(second).String("window_name"); s != "foo" {
		t.Errorf("second = %v", res.Get(second))
	}
	if res.Get(Ref(5)) != nil {
		t.Error("out of range ref should be nil")
	}
}

func TestArgsAndBinary(t *testing.T) {
	b := New(WithBinary("/usr/local/bin/xdotool")).
		WindowMove("%1", 0, 0).
		WindowSize("", 640, 480, Flag("usehints")).
		KeyUp([]string{"shift"}).
		WindowReparent("", "555").
		SetDesktopForWindow("12", 3).
		Sleep(0.25)

	want := []string{
		"/usr/local/bin/xdotool",
		"windowmove", "%1", "0", "0",
		"windowsize", "--usehints", "640", "480",
		"keyup", "shift",
		"windowreparent", "555",
		"set_desktop_for_window", "12", "3",
		"sleep", "0.25",
	}
	if got := b.Args(); !reflect.DeepEqual(got, want) {
		t.Errorf("Args() = %q\nwant %q", got, want)
	}
}

func TestSearchLimit(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want []string
	}{
		{"default limit", []Option{Flag("name")}, []string{"search", "--limit", "1", "--name", "term"}},
		{"caller limit", []Option{Opt("limit", 3)}, []string{"search", "--limit", "3", "term"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New().Search("term", tt.opts...).Args()[1:]
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeysRequired(t *testing.T) {
	b := New().Key(nil)
	if b.Err() == nil {
		t.Error("expected error for empty key list")
	}
}
