package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// Presenter shows finished frames.
type Presenter interface {
	Present(f *Frame) error
	Close() error
}

// ansiPresenter prints frames to a plain text stream and moves the cursor back
// up after each one so the next frame overwrites it.
type ansiPresenter struct {
	w      *bufio.Writer
	height int // rows of the last frame shown
}

func newANSIPresenter(w io.Writer) *ansiPresenter {
	return &ansiPresenter{w: bufio.NewWriterSize(w, (ScreenWidth+1)*ScreenHeight+16)}
}

func (p *ansiPresenter) Present(f *Frame) error {
	// bufio write errors are sticky and surface from Flush
	for row := 0; row < f.Height; row++ {
		p.w.Write(f.Row(row))
		p.w.WriteByte('\n')
	}
	writeCursorMove(p.w, f.Height, 'A')
	p.height = f.Height
	return p.w.Flush()
}

// Close leaves the cursor below the last frame
func (p *ansiPresenter) Close() error {
	if p.height > 0 {
		writeCursorMove(p.w, p.height, 'B')
		p.height = 0
	}
	return p.w.Flush()
}

// writeCursorMove writes CSI n <dir>; 'A' is up, 'B' is down
func writeCursorMove(w *bufio.Writer, n int, dir byte) {
	var buf [24]byte
	seq := append(buf[:0], "\x1b["...)
	seq = strconv.AppendInt(seq, int64(n), 10)
	seq = append(seq, dir)
	w.Write(seq)
}

// tcellPresenter draws frames onto a tcell screen starting at the top-left corner.
type tcellPresenter struct {
	screen tcell.Screen
	style  tcell.Style
}

func newTcellPresenter(screen tcell.Screen) *tcellPresenter {
	return &tcellPresenter{screen: screen, style: tcell.StyleDefault}
}

func (p *tcellPresenter) Present(f *Frame) error {
	for row := 0; row < f.Height; row++ {
		for col, ch := range f.Row(row) {
			p.screen.SetContent(col, row, rune(ch), nil, p.style)
		}
	}
	p.screen.Show()
	return nil
}

func (p *tcellPresenter) Close() error {
	p.screen.Fini()
	return nil
}

// newTcellScreen creates and initializes the terminal screen
func newTcellScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}
