package xdo

import (
	"fmt"
	"strconv"
)

// Window arguments accept an id or a window stack reference. An empty
// window is omitted so xdotool falls back to its default (usually %1).
const (
	StackTop = "%1"
	StackAll = "%@"
)

func cmdArgs(name string, opts []Option, positional ...string) []string {
	args := append([]string{name}, Tokens(opts...)...)
	for _, p := range positional {
		if p != "" {
			args = append(args, p)
		}
	}
	return args
}

func itoa(n int) string { return strconv.Itoa(n) }

// --- queries ---

func (b *Builder) GetActiveWindow() *Builder {
	b.Query(IntField("window"), "getactivewindow")
	return b
}

func (b *Builder) GetWindowFocus(opts ...Option) *Builder {
	b.Query(IntField("window"), cmdArgs("getwindowfocus", opts)...)
	return b
}

func (b *Builder) GetWindowName(window string) *Builder {
	b.Query(LineField("window_name"), cmdArgs("getwindowname", nil, window)...)
	return b
}

func (b *Builder) GetWindowPID(window string) *Builder {
	b.Query(IntField("window_pid"), cmdArgs("getwindowpid", nil, window)...)
	return b
}

func (b *Builder) GetWindowGeometry(window string) *Builder {
	b.Query(WindowGeometry, cmdArgs("getwindowgeometry", nil, window)...)
	return b
}

func (b *Builder) GetDisplayGeometry() *Builder {
	b.Query(DisplayGeometry, "getdisplaygeometry")
	return b
}

// Search queues a window search and keeps only the first match. Unless the
// caller passes its own limit, --limit 1 keeps the output to one line.
func (b *Builder) Search(pattern string, opts ...Option) *Builder {
	if !hasOption(opts, "limit") {
		opts = append([]Option{Opt("limit", 1)}, opts...)
	}
	b.Query(IntField("window"), append(cmdArgs("search", opts), pattern)...)
	return b
}

// SelectWindow waits for the user to click a window.
func (b *Builder) SelectWindow() *Builder {
	b.Query(IntField("window"), "selectwindow")
	return b
}

func (b *Builder) GetMouseLocation() *Builder {
	b.Query(MouseLocation, "getmouselocation")
	return b
}

func (b *Builder) GetNumDesktops() *Builder {
	b.Query(IntField("n_desktop"), "get_num_desktops")
	return b
}

func (b *Builder) GetDesktop() *Builder {
	b.Query(IntField("desktop"), "get_desktop")
	return b
}

func (b *Builder) GetDesktopForWindow(window string) *Builder {
	b.Query(IntField("desktop"), cmdArgs("get_desktop_for_window", nil, window)...)
	return b
}

// --- mouse ---

func (b *Builder) Click(button int, opts ...Option) *Builder {
	return b.Append(append(cmdArgs("click", opts), itoa(button))...)
}

func (b *Builder) MouseDown(button int, opts ...Option) *Builder {
	return b.Append(append(cmdArgs("mousedown", opts), itoa(button))...)
}

func (b *Builder) MouseUp(button int, opts ...Option) *Builder {
	return b.Append(append(cmdArgs("mouseup", opts), itoa(button))...)
}

// MouseMove moves the pointer to absolute coordinates.
func (b *Builder) MouseMove(x, y int, opts ...Option) *Builder {
	return b.Append(append(cmdArgs("mousemove", opts), "--", itoa(x), itoa(y))...)
}

// MouseMoveRelative moves the pointer by dx, dy; "--" lets negative offsets through.
func (b *Builder) MouseMoveRelative(dx, dy int, opts ...Option) *Builder {
	return b.Append(append(cmdArgs("mousemove_relative", opts), "--", itoa(dx), itoa(dy))...)
}

// --- keyboard ---

func (b *Builder) Key(keys []string, opts ...Option) *Builder {
	return b.keys("key", keys, opts)
}

func (b *Builder) KeyDown(keys []string, opts ...Option) *Builder {
	return b.keys("keydown", keys, opts)
}

func (b *Builder) KeyUp(keys []string, opts ...Option) *Builder {
	return b.keys("keyup", keys, opts)
}

func (b *Builder) keys(name string, keys []string, opts []Option) *Builder {
	if len(keys) == 0 {
		return b.fail(fmt.Errorf("%s: at least one key is required", name))
	}
	return b.Append(append(cmdArgs(name, opts), keys...)...)
}

func (b *Builder) Type(text string, opts ...Option) *Builder {
	return b.Append(append(cmdArgs("type", opts), text)...)
}

// --- windows ---

// SetWindow changes window properties such as --name or --class.
func (b *Builder) SetWindow(window string, opts ...Option) *Builder {
	return b.Append(cmdArgs("set_window", opts, window)...)
}

func (b *Builder) WindowActivate(window string, opts ...Option) *Builder {
	return b.Append(cmdArgs("windowactivate", opts, window)...)
}

func (b *Builder) WindowFocus(window string, opts ...Option) *Builder {
	return b.Append(cmdArgs("windowfocus", opts, window)...)
}

func (b *Builder) WindowKill(window string) *Builder {
	return b.Append(cmdArgs("windowkill", nil, window)...)
}

func (b *Builder) WindowMap(window string, opts ...Option) *Builder {
	return b.Append(cmdArgs("windowmap", opts, window)...)
}

func (b *Builder) WindowMinimize(window string, opts ...Option) *Builder {
	return b.Append(cmdArgs("windowminimize", opts, window)...)
}

func (b *Builder) WindowMove(window string, x, y int, opts ...Option) *Builder {
	return b.Append(append(cmdArgs("windowmove", opts, window), itoa(x), itoa(y))...)
}

func (b *Builder) WindowRaise(window string) *Builder {
	return b.Append(cmdArgs("windowraise", nil, window)...)
}

// WindowReparent moves source (default %1) under destination.
func (b *Builder) WindowReparent(source, destination string) *Builder {
	if destination == "" {
		return b.fail(fmt.Errorf("windowreparent: destination window is required"))
	}
	return b.Append(cmdArgs("windowreparent", nil, source, destination)...)
}

func (b *Builder) WindowSize(window string, width, height int, opts ...Option) *Builder {
	return b.Append(append(cmdArgs("windowsize", opts, window), itoa(width), itoa(height))...)
}

func (b *Builder) WindowUnmap(window string, opts ...Option) *Builder {
	return b.Append(cmdArgs("windowunmap", opts, window)...)
}

// --- desktops ---

func (b *Builder) SetNumDesktops(n int) *Builder {
	return b.Append("set_num_desktops", itoa(n))
}

func (b *Builder) SetDesktop(n int, opts ...Option) *Builder {
	return b.Append(append(cmdArgs("set_desktop", opts), itoa(n))...)
}

func (b *Builder) SetDesktopForWindow(window string, n int) *Builder {
	return b.Append(append(cmdArgs("set_desktop_for_window", nil, window), itoa(n))...)
}

// --- misc ---

func (b *Builder) Sleep(seconds float64) *Builder {
	return b.Append("sleep", strconv.FormatFloat(seconds, 'f', -1, 64))
}

// --- unsupported ---

func (b *Builder) Behave() *Builder {
	return b.fail(fmt.Errorf("behave: %w", ErrNotImplemented))
}

func (b *Builder) BehaveScreenEdge() *Builder {
	return b.fail(fmt.Errorf("behave_screen_edge: %w", ErrNotImplemented))
}

func (b *Builder) SetDesktopViewport() *Builder {
	return b.fail(fmt.Errorf("set_desktop_viewport: %w", ErrNotImplemented))
}

func (b *Builder) GetDesktopViewport() *Builder {
	return b.fail(fmt.Errorf("get_desktop_viewport: %w", ErrNotImplemented))
}
