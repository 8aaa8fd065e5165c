package display_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/jacentio/canopy/display"
	"github.com/jacentio/canopy/store"
)

func newStore() *store.Store[string] {
	cfg := store.DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s := store.New[string](cfg)
	s.Create("/root", "nothing")
	s.Create("/root/child1", "childdata 1")
	s.Create("/root/child2", "childdata 2")
	s.Create("/root/child1/subchild1", "subchild1_data")
	return s
}

func TestIsTerminal_Buffer(t *testing.T) {
	if display.IsTerminal(&bytes.Buffer{}) {
		t.Error("expected buffer not to be a terminal")
	}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	p := display.NewPrinter(&buf)

	if err := display.Levels(p, newStore().Dump()); err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		"Level 0:",
		"  /root = nothing",
		"Level 1:",
		"  /root/child1 = childdata 1",
		"  /root/child2 = childdata 2",
		"Level 2:",
		"  /root/child1/subchild1 = subchild1_data",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

func TestLevels_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := display.NewPrinter(&buf)

	if err := display.Levels[string](p, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "(empty)\n" {
		t.Errorf("expected '(empty)', got %q", buf.String())
	}
}

func TestChildren(t *testing.T) {
	var buf bytes.Buffer
	p := display.NewPrinter(&buf)
	s := newStore()

	children, err := s.Children("/root")
	if err != nil {
		t.Fatal(err)
	}
	if err := display.Children(p, "root", children); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Children of root: child1 child2\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestListener(t *testing.T) {
	var buf bytes.Buffer
	p := display.NewPrinter(&buf)
	s := newStore()

	if err := s.AddListener("/root", display.Listener[string](p)); err != nil {
		t.Fatal(err)
	}
	s.Create("/root/child3", "childdata 3")

	expected := `Event : "Node Added" Node Name "child3" Node Value "childdata 3"` + "\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestSetColor(t *testing.T) {
	var buf bytes.Buffer
	p := display.NewPrinter(&buf)
	p.SetColor(true)

	if err := display.Children[string](p, "root", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestPrinter_WriteError(t *testing.T) {
	p := display.NewPrinter(failingWriter{})

	err := display.Levels(p, newStore().Dump())
	if err == nil || err.Error() != "boom" {
		t.Errorf("expected 'boom', got %v", err)
	}
	if p.Err() == nil {
		t.Error("expected Err to retain the failure")
	}
}
