package state

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := OpenPath(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := openTemp(t)

	first := Run{Argv: []string{"xdotool", "get_desktop"}, Queries: 1, Stdout: "2\n"}
	second := Run{Host: "lab", Argv: []string{"xdotool", "type", "a b"}, ExitCode: 1, Stderr: "no display"}

	id1, err := s.Record(first)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := s.Record(second)
	if err != nil {
		t.Fatal(err)
	}
	if id2 <= id1 {
		t.Errorf("ids not increasing: %d, %d", id1, id2)
	}

	runs, err := s.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].ID != id2 || runs[0].Host != "lab" || runs[0].ExitCode != 1 {
		t.Errorf("newest run = %+v", runs[0])
	}
	if !reflect.DeepEqual(runs[0].Argv, second.Argv) {
		t.Errorf("argv = %q, want %q", runs[0].Argv, second.Argv)
	}
	if runs[1].Stdout != "2\n" || runs[1].Queries != 1 {
		t.Errorf("oldest run = %+v", runs[1])
	}
	if runs[1].CreatedAt.IsZero() || time.Since(runs[1].CreatedAt) > 24*time.Hour {
		t.Errorf("created_at = %v", runs[1].CreatedAt)
	}
}

func TestGet(t *testing.T) {
	s := openTemp(t)
	id, err := s.Record(Run{Argv: []string{"xdotool", "getmouselocation"}, ParseError: "exhausted"})
	if err != nil {
		t.Fatal(err)
	}
	r, err := s.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if r.ParseError != "exhausted" || r.Argv[1] != "getmouselocation" {
		t.Errorf("Get = %+v", r)
	}
	if _, err := s.Get(id + 100); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestPrune(t *testing.T) {
	s := openTemp(t)
	for i := 0; i < 5; i++ {
		if _, err := s.Record(Run{Argv: []string{"xdotool", "sleep", "1"}}); err != nil {
			t.Fatal(err)
		}
	}
	n, err := s.Prune(2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("pruned %d, want 3", n)
	}
	runs, _ := s.List(10)
	if len(runs) != 2 {
		t.Errorf("remaining %d, want 2", len(runs))
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	for _, in := range []string{"2024-03-01 12:30:00", "2024-03-01T12:30:00Z"} {
		if got := parseTimestamp(in); !got.Equal(want) {
			t.Errorf("parseTimestamp(%q) = %v", in, got)
		}
	}
	if !parseTimestamp("garbage").IsZero() {
		t.Error("garbage should parse to zero time")
	}
}
