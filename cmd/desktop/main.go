package main

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"gobf/pkg/bf"
	"gobf/pkg/grid"
)

const (
	// The view shows the first tapeCells cells as a tapeCols-wide bitmap.
	tapeCells = 4096
	tapeCols  = 64
	cellScale = 4

	// snapshotOps is how many instructions may run between two tape
	// snapshots. I/O instructions always snapshot.
	snapshotOps = 2048

	consoleX     = 264
	consoleLines = 16
)

// tapeView is the handoff between the interpreter goroutine and the
// renderer: the machine publishes its visible tape prefix and cursor under
// the mutex, and Draw copies them back out under the same mutex. The
// renderer never touches the machine directly.
type tapeView struct {
	mu     sync.Mutex
	cells  [tapeCells]bf.Cell
	cursor int
}

// publish copies the machine's display state into the view. It must run on
// the goroutine executing the machine.
func (v *tapeView) publish(m *bf.Machine) {
	v.mu.Lock()
	defer v.mu.Unlock()
	copy(v.cells[:], m.Tape[:tapeCells])
	v.cursor = int(m.Ptr)
}

// snapshot returns the most recently published state.
func (v *tapeView) snapshot() ([tapeCells]bf.Cell, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cells, v.cursor
}

type Game struct {
	view    *tapeView
	console *console
	keys    chan byte

	done   <-chan error
	runErr error
	halted bool

	inputClosed bool
	tapeImg     *ebiten.Image
	face        font.Face
}

func (g *Game) pushKey(b byte) {
	if g.inputClosed {
		return
	}
	// Drop keystrokes the program is not reading.
	select {
	case g.keys <- b:
	default:
	}
}

func (g *Game) Update() error {
	for _, r := range ebiten.AppendInputChars(nil) {
		if r > 0 && r < 256 {
			g.pushKey(byte(r))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.pushKey(10) // ASCII newline
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.pushKey(8) // ASCII backspace
	}
	// Escape ends the input stream; further Reads see end of input.
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !g.inputClosed {
		g.inputClosed = true
		close(g.keys)
	}

	if !g.halted {
		select {
		case err := <-g.done:
			g.halted = true
			g.runErr = err
		default:
		}
	}
	return nil
}

// drawTape renders the published tape prefix as a grayscale bitmap, with
// the cell under the cursor in green.
func (g *Game) drawTape(screen *ebiten.Image, cells *[tapeCells]bf.Cell, cursor int) {
	if g.tapeImg == nil {
		g.tapeImg = ebiten.NewImage(tapeCols, tapeCells/tapeCols)
	}

	pixels := make([]byte, tapeCells*4)
	for i := 0; i < tapeCells; i++ {
		v := byte(cells[i])
		r, gc, b := v, v, v
		if i == cursor {
			r, gc, b = 0, 255, 0
		}
		pixels[i*4] = r
		pixels[i*4+1] = gc
		pixels[i*4+2] = b
		pixels[i*4+3] = 0xFF
	}
	g.tapeImg.WritePixels(pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cellScale, cellScale)
	screen.DrawImage(g.tapeImg, op)
}

func (g *Game) Draw(screen *ebiten.Image) {
	cells, cursor := g.view.snapshot()
	visible := cursor % tapeCells
	g.drawTape(screen, &cells, visible)

	x, y := grid.GetGridCoords(visible, tapeCols)
	status := fmt.Sprintf("ptr=%d cell=%d view=(%d,%d)", cursor, cells[visible], x, y)
	switch {
	case g.runErr != nil:
		status += fmt.Sprintf("  [failed: %v]", g.runErr)
	case g.halted:
		status += "  [done]"
	case g.inputClosed:
		status += "  [input closed]"
	}
	ebitenutil.DebugPrintAt(screen, status, consoleX, 8)

	lineHeight := g.face.Metrics().Height.Ceil()
	for i, line := range g.console.Tail(consoleLines) {
		text.Draw(screen, line, g.face, consoleX, 40+i*lineHeight, color.White)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 640, tapeCells / tapeCols * cellScale
}

// console collects program output for on-screen display.
type console struct {
	mu  sync.Mutex
	buf []byte
}

func (c *console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = append(c.buf, p...)
	return len(p), nil
}

// Tail returns the last max lines written so far.
func (c *console) Tail(max int) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := strings.Split(string(c.buf), "\n")
	if len(lines) > max {
		lines = lines[len(lines)-max:]
	}
	return lines
}

// keyReader adapts the keystroke channel to the machine's input stream.
// It blocks until a key arrives, so the interpreter goroutine sleeps
// between Reads instead of spinning.
type keyReader struct {
	keys <-chan byte
}

func (r *keyReader) Read(p []byte) (int, error) {
	b, ok := <-r.keys
	if !ok {
		return 0, io.EOF
	}
	p[0] = b
	return 1, nil
}

// traceSnapshots wires the machine's Trace hook to the view: every
// snapshotOps instructions, and on every I/O instruction so the display is
// current whenever the program pauses for input.
func traceSnapshots(m *bf.Machine, view *tapeView) {
	var ops int
	m.Trace = func(op bf.Op) {
		ops++
		switch op.(type) {
		case *bf.Read, *bf.Write:
		default:
			if ops%snapshotOps != 0 {
				return
			}
		}
		view.publish(m)
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: desktop <program.b>")
		os.Exit(2)
	}

	sourceBytes, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read source file: %v", err)
	}

	prog, err := bf.Parse(string(sourceBytes))
	if err != nil {
		log.Fatalf("Parse failed: %v", err)
	}

	keys := make(chan byte, 256)
	out := &console{}
	view := &tapeView{}

	machine := bf.NewMachine()
	machine.Input = &keyReader{keys: keys}
	machine.Output = out
	traceSnapshots(machine, view)
	view.publish(machine)

	done := make(chan error, 1)
	go func() {
		err := machine.Run(prog)
		view.publish(machine)
		done <- err
	}()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 512)
	ebiten.SetWindowTitle("gobf Desktop")

	game := &Game{
		view:    view,
		console: out,
		keys:    keys,
		done:    done,
		face:    basicfont.Face7x13,
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
