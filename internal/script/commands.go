package script

import (
	"errors"

	"github.com/simon/xdoctl/internal/xdo"
)

type stepFunc func(b *xdo.Builder, a Args) error

var (
	errNoText    = errors.New("text is required")
	errNoPattern = errors.New("pattern is required")
	errNoKeys    = errors.New("keys are required")
	errNoParent  = errors.New("parent is required")
	errNoCount   = errors.New("count must be positive")
)

func button(a Args) int {
	if a.Button == 0 {
		return 1
	}
	return a.Button
}

func keyStep(fn func(b *xdo.Builder, keys []string, opts ...xdo.Option) *xdo.Builder) stepFunc {
	return func(b *xdo.Builder, a Args) error {
		if len(a.Keys) == 0 {
			return errNoKeys
		}
		fn(b, a.Keys, a.Options...)
		return nil
	}
}

func windowStep(fn func(b *xdo.Builder, window string, opts ...xdo.Option) *xdo.Builder) stepFunc {
	return func(b *xdo.Builder, a Args) error {
		fn(b, a.Window, a.Options...)
		return nil
	}
}

var commands = map[string]stepFunc{
	"getactivewindow": func(b *xdo.Builder, a Args) error { b.GetActiveWindow(); return nil },
	"getwindowfocus":  func(b *xdo.Builder, a Args) error { b.GetWindowFocus(a.Options...); return nil },
	"getwindowname":   func(b *xdo.Builder, a Args) error { b.GetWindowName(a.Window); return nil },
	"getwindowpid":    func(b *xdo.Builder, a Args) error { b.GetWindowPID(a.Window); return nil },
	"getwindowgeometry": func(b *xdo.Builder, a Args) error {
		b.GetWindowGeometry(a.Window)
		return nil
	},
	"getdisplaygeometry": func(b *xdo.Builder, a Args) error { b.GetDisplayGeometry(); return nil },
	"search": func(b *xdo.Builder, a Args) error {
		if a.Pattern == "" {
			return errNoPattern
		}
		b.Search(a.Pattern, a.Options...)
		return nil
	},
	"selectwindow":     func(b *xdo.Builder, a Args) error { b.SelectWindow(); return nil },
	"getmouselocation": func(b *xdo.Builder, a Args) error { b.GetMouseLocation(); return nil },
	"get_num_desktops": func(b *xdo.Builder, a Args) error { b.GetNumDesktops(); return nil },
	"get_desktop":      func(b *xdo.Builder, a Args) error { b.GetDesktop(); return nil },
	"get_desktop_for_window": func(b *xdo.Builder, a Args) error {
		b.GetDesktopForWindow(a.Window)
		return nil
	},

	"click":     func(b *xdo.Builder, a Args) error { b.Click(button(a), a.Options...); return nil },
	"mousedown": func(b *xdo.Builder, a Args) error { b.MouseDown(button(a), a.Options...); return nil },
	"mouseup":   func(b *xdo.Builder, a Args) error { b.MouseUp(button(a), a.Options...); return nil },
	"mousemove": func(b *xdo.Builder, a Args) error {
		if a.Relative {
			b.MouseMoveRelative(a.X, a.Y, a.Options...)
		} else {
			b.MouseMove(a.X, a.Y, a.Options...)
		}
		return nil
	},
	"mousemove_relative": func(b *xdo.Builder, a Args) error {
		b.MouseMoveRelative(a.X, a.Y, a.Options...)
		return nil
	},

	"key":     keyStep((*xdo.Builder).Key),
	"keydown": keyStep((*xdo.Builder).KeyDown),
	"keyup":   keyStep((*xdo.Builder).KeyUp),
	"type": func(b *xdo.Builder, a Args) error {
		if a.Text == "" {
			return errNoText
		}
		b.Type(a.Text, a.Options...)
		return nil
	},

	"set_window":     windowStep((*xdo.Builder).SetWindow),
	"windowactivate": windowStep((*xdo.Builder).WindowActivate),
	"windowfocus":    windowStep((*xdo.Builder).WindowFocus),
	"windowmap":      windowStep((*xdo.Builder).WindowMap),
	"windowminimize": windowStep((*xdo.Builder).WindowMinimize),
	"windowunmap":    windowStep((*xdo.Builder).WindowUnmap),
	"windowkill":     func(b *xdo.Builder, a Args) error { b.WindowKill(a.Window); return nil },
	"windowraise":    func(b *xdo.Builder, a Args) error { b.WindowRaise(a.Window); return nil },
	"windowmove": func(b *xdo.Builder, a Args) error {
		b.WindowMove(a.Window, a.X, a.Y, a.Options...)
		return nil
	},
	"windowsize": func(b *xdo.Builder, a Args) error {
		b.WindowSize(a.Window, a.Width, a.Height, a.Options...)
		return nil
	},
	"windowreparent": func(b *xdo.Builder, a Args) error {
		if a.Parent == "" {
			return errNoParent
		}
		b.WindowReparent(a.Window, a.Parent)
		return nil
	},

	"set_num_desktops": func(b *xdo.Builder, a Args) error {
		if a.Count <= 0 {
			return errNoCount
		}
		b.SetNumDesktops(a.Count)
		return nil
	},
	"set_desktop": func(b *xdo.Builder, a Args) error { b.SetDesktop(a.Desktop, a.Options...); return nil },
	"set_desktop_for_window": func(b *xdo.Builder, a Args) error {
		b.SetDesktopForWindow(a.Window, a.Desktop)
		return nil
	},
	"sleep": func(b *xdo.Builder, a Args) error { b.Sleep(a.Seconds); return nil },

	"behave":               func(b *xdo.Builder, a Args) error { b.Behave(); return nil },
	"behave_screen_edge":   func(b *xdo.Builder, a Args) error { b.BehaveScreenEdge(); return nil },
	"set_desktop_viewport": func(b *xdo.Builder, a Args) error { b.SetDesktopViewport(); return nil },
	"get_desktop_viewport": func(b *xdo.Builder, a Args) error { b.GetDesktopViewport(); return nil },
}
