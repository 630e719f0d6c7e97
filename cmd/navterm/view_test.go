package main

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/imcore"
)

func newTestModel() *model {
	return newModel(slog.New(slog.NewTextHandler(io.Discard, nil)), imcore.DefaultConfig(), nil)
}

func TestView_DrawsWindowsAndItems(t *testing.T) {
	m := newTestModel()
	out := m.View()

	for _, want := range []string{"Demo", "Inspector", "Click me", "File", "Mute"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected the view to contain %q", want)
		}
	}
	// 24 rows for the display plus the status line.
	if n := strings.Count(out, "\n"); n != 24 {
		t.Errorf("Expected 25 lines, got %d", n+1)
	}
}

func TestUpdate_ArrowKeyTakesNavFocus(t *testing.T) {
	m := newTestModel()
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.ctx.NavID() == 0 || !m.ctx.NavHighlightVisible() {
		t.Error("Expected an arrow key to focus and highlight an item")
	}
}

func TestUpdate_TabStepsFocus(t *testing.T) {
	m := newTestModel()
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	first := m.ctx.NavID()
	if first == 0 || !m.ctx.NavHighlightVisible() {
		t.Fatal("Expected Tab to focus and highlight an item")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.ctx.NavID() == first {
		t.Error("Expected a second Tab to move to the next tab stop")
	}
}

func TestUpdate_Resize(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 31})
	if m.ctx.DisplaySize != (imcore.Vec2{X: 100, Y: 30}) {
		t.Errorf("Expected a 100x30 display, got %v", m.ctx.DisplaySize)
	}
	if n := strings.Count(m.View(), "\n"); n != 30 {
		t.Errorf("Expected 31 lines after resize, got %d", n+1)
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel()
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("Expected q to return the quit command")
	}
}

func TestKeyFor(t *testing.T) {
	tests := []struct {
		in   string
		want imcore.Key
		ok   bool
	}{
		{"up", imcore.KeyUp, true},
		{"enter", imcore.KeyEnter, true},
		{" ", imcore.KeySpace, true},
		{"f10", imcore.KeyAlt, true},
		{"x", imcore.KeyNone, false},
	}
	for _, tt := range tests {
		got, ok := keyFor(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("keyFor(%q): Expected %v,%v got %v,%v", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}
