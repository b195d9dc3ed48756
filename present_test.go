package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestANSIPresenterFrameLayout(t *testing.T) {
	var buf bytes.Buffer
	p := newANSIPresenter(&buf)
	frame := NewRenderer(DefaultConfig()).Render(0)

	if err := p.Present(frame); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	out := buf.String()
	if !strings.HasSuffix(out, "\x1b[40A") {
		t.Fatalf("output does not end with cursor up: %q", out[max(0, len(out)-10):])
	}
	body := strings.TrimSuffix(out, "\x1b[40A")
	lines := strings.Split(body, "\n")
	// trailing newline leaves one empty element
	if len(lines) != ScreenHeight+1 || lines[ScreenHeight] != "" {
		t.Fatalf("expected %d newline-terminated lines, got %d", ScreenHeight, len(lines)-1)
	}
	for i, line := range lines[:ScreenHeight] {
		if len(line) != ScreenWidth {
			t.Errorf("line %d has %d characters, want %d", i, len(line), ScreenWidth)
		}
	}
	if body != frame.String() {
		t.Error("printed rows do not match the frame")
	}
}

func TestANSIPresenterClose(t *testing.T) {
	t.Run("After frames", func(t *testing.T) {
		var buf bytes.Buffer
		p := newANSIPresenter(&buf)
		_ = p.Present(NewFrame(ScreenWidth, ScreenHeight))
		_ = p.Present(NewFrame(ScreenWidth, ScreenHeight))
		buf.Reset()

		if err := p.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if got := buf.String(); got != "\x1b[40B" {
			t.Errorf("Close() wrote %q, want cursor down 40", got)
		}
	})

	t.Run("Without frames", func(t *testing.T) {
		var buf bytes.Buffer
		p := newANSIPresenter(&buf)
		if err := p.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("Close() wrote %q, want nothing", buf.String())
		}
	})
}

func TestANSIPresenterWriteError(t *testing.T) {
	p := newANSIPresenter(failingWriter{})
	if err := p.Present(NewFrame(ScreenWidth, ScreenHeight)); err == nil {
		t.Error("expected error from failing writer")
	}
}

func TestTcellPresenterDrawsFrame(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	screen.SetSize(ScreenWidth, ScreenHeight)

	p := newTcellPresenter(screen)
	defer p.Close()

	frame := NewRenderer(DefaultConfig()).Render(0)
	if err := p.Present(frame); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	for row := 0; row < ScreenHeight; row++ {
		for col := 0; col < ScreenWidth; col++ {
			mainc, _, _, _ := screen.GetContent(col, row)
			if want := rune(frame.At(row, col)); mainc != want {
				t.Fatalf("cell (%d, %d) = %q, want %q", row, col, mainc, want)
			}
		}
	}
}

func TestANSIPresenterWriteErrorMidFrame(t *testing.T) {
	// larger than the writer buffer, so the failure happens before Flush
	p := newANSIPresenter(failingWriter{})
	if err := p.Present(NewFrame(200, 100)); err == nil {
		t.Error("expected error to surface from a frame larger than the buffer")
	}
	if err := p.Close(); err == nil {
		t.Error("expected Close to report the earlier write error")
	}
}
