package tui

import (
	"fmt"
	"strconv"

	"github.com/simon/xdoctl/internal/xdo"
)

// Snapshot is one poll of the desktop state.
type Snapshot struct {
	Window   int
	Name     string
	PID      int // 0 when the window has no _NET_WM_PID
	X, Y     int
	Width    int
	Height   int
	Desktop  int // desktop of the active window
	Mouse    xdo.Fields
	Current  int
	Desktops int
	DisplayW int
	DisplayH int
}

// BuilderFunc returns a fresh builder bound to the target runner.
type BuilderFunc func() *xdo.Builder

func run(b *xdo.Builder) (*xdo.Result, error) {
	res, err := b.Execute()
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// TakeSnapshot queries the desktop in three batches. getactivewindow goes
// last in the first batch since xdotool only prints it reliably at the end
// of a chain; window details use the explicit id so they always print.
func TakeSnapshot(newBuilder BuilderFunc) (Snapshot, error) {
	var s Snapshot

	global, err := run(newBuilder().
		GetMouseLocation().
		GetDesktop().
		GetNumDesktops().
		GetDisplayGeometry().
		GetActiveWindow())
	if err != nil {
		return s, fmt.Errorf("desktop query: %w", err)
	}
	s.Mouse = global.Values[0]
	s.Current, _ = global.Values[1].Int("desktop")
	s.Desktops, _ = global.Values[2].Int("n_desktop")
	if g, ok := global.Values[3].Group("window_geometry"); ok {
		s.DisplayW, _ = g.Int("x")
		s.DisplayH, _ = g.Int("y")
	}
	s.Window, _ = global.Values[4].Int("window")

	id := strconv.Itoa(s.Window)
	details, err := run(newBuilder().
		GetWindowName(id).
		GetWindowGeometry(id).
		GetDesktopForWindow(id))
	if err != nil {
		return s, fmt.Errorf("window %s: %w", id, err)
	}
	s.Name, _ = details.Values[0].String("window_name")
	if g, ok := details.Values[1].Group("window_geometry"); ok {
		s.X, _ = g.Int("x")
		s.Y, _ = g.Int("y")
		s.Width, _ = g.Int("width")
		s.Height, _ = g.Int("height")
	}
	s.Desktop, _ = details.Values[2].Int("desktop")

	// Not every window advertises a pid; a failure here is not fatal.
	if pid, err := run(newBuilder().GetWindowPID(id)); err == nil {
		s.PID, _ = pid.Values[0].Int("window_pid")
	}
	return s, nil
}
