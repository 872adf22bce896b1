// Command grux renders a TOML scene of boxes, fills and lines as text.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"grux/art"
	"grux/canvas"
	"grux/core"
	"grux/grid"
	"grux/scene"
	"grux/terminal"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/gdamore/tcell/v2"
)

//go:embed sample.toml
var sampleScene string

// Backends selectable with -backend.
const (
	backendArray  = "array"
	backendRows   = "rows"
	backendText   = "text"
	backendBuffer = "buffer"
)

type options struct {
	scenePath  string
	backend    string
	styled     bool
	color      string
	bold       bool
	screen     bool
	listStyles bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("grux: ")

	var opts options
	flag.StringVar(&opts.scenePath, "scene", "", "Scene file (TOML); renders a built-in sample when empty")
	flag.StringVar(&opts.backend, "backend", backendArray, "Grid backend: array, rows, text, buffer")
	flag.BoolVar(&opts.styled, "styled", false, "Render with ANSI styling (uses the buffer backend)")
	flag.StringVar(&opts.color, "color", "", "Foreground color for -styled, e.g. 12 or #ff8800")
	flag.BoolVar(&opts.bold, "bold", false, "Bold text for -styled")
	flag.BoolVar(&opts.screen, "screen", false, "Draw on the terminal screen and wait for a key")
	flag.BoolVar(&opts.listStyles, "list-styles", false, "List the named border styles and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Renders a scene of boxes, fills and lines as text.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                          # Render the built-in sample\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -scene box.toml          # Render a scene file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -backend text            # Draw into a flat string grid\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -styled -color 12 -bold  # Colored output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -screen                  # Show on the terminal screen\n", os.Args[0])
	}

	flag.Parse()

	if opts.listStyles {
		listStyles(os.Stdout)
		return
	}

	s, err := loadScene(opts.scenePath)
	if err != nil {
		log.Fatal(err)
	}

	if opts.screen {
		err = runScreen(s)
	} else {
		err = run(os.Stdout, s, opts)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Load(strings.NewReader(sampleScene))
	}
	return scene.LoadFile(path)
}

func listStyles(w io.Writer) {
	for _, name := range art.StyleNames() {
		style, _ := art.LookupStyle(name)
		fmt.Fprintf(w, "%-8s %s\n", name, style)
	}
}

// run draws s onto the selected backend and writes the result to w.
func run(w io.Writer, s *scene.Scene, opts options) error {
	if opts.styled {
		buf := canvas.NewBuffer(cellbuf.NewBuffer(s.Width, s.Height), textStyle(opts))
		if err := fillBackground(buf, s); err != nil {
			return err
		}
		if err := drawScene(s, buf); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, buf.Styled())
		return err
	}

	g, err := newGrid(s, opts.backend)
	if err != nil {
		return err
	}
	if err := drawScene(s, g); err != nil {
		return err
	}
	_, err = g.WriteTo(w)
	return err
}

func textStyle(opts options) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(opts.bold)
	if opts.color != "" {
		style = style.Foreground(lipgloss.Color(opts.color))
	}
	return style
}

// newGrid allocates a blank scene-sized grid on the named backend.
func newGrid(s *scene.Scene, backend string) (grid.Grid[rune], error) {
	fill, err := s.FillRune()
	if err != nil {
		return nil, err
	}

	switch backend {
	case backendArray:
		a, err := s.NewArray()
		if err != nil {
			return nil, err
		}
		return a, nil
	case backendRows:
		rows := make(grid.Rows[rune], s.Height)
		for y := range rows {
			rows[y] = []rune(strings.Repeat(string(fill), s.Width))
		}
		return rows, nil
	case backendText:
		t, err := grid.BlankText(s.Width, s.Height, fill)
		if err != nil {
			return nil, err
		}
		return t, nil
	case backendBuffer:
		buf := canvas.NewBuffer(cellbuf.NewBuffer(s.Width, s.Height), lipgloss.NewStyle())
		if err := fillBackground(buf, s); err != nil {
			return nil, err
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s, %s, %s or %s)",
			backend, backendArray, backendRows, backendText, backendBuffer)
	}
}

// fillBackground paints the scene's fill character over a grid that starts
// out blank. A space fill is a no-op.
func fillBackground(g grid.Writer[rune], s *scene.Scene) error {
	fill, err := s.FillRune()
	if err != nil {
		return err
	}
	if fill == ' ' {
		return nil
	}
	rect, err := art.NewFillRect(s.Width, s.Height, fill)
	if err != nil {
		return err
	}
	if err := rect.Draw(g, core.Point{}); err != nil {
		return fmt.Errorf("fill background: %w", err)
	}
	return nil
}

func drawScene(s *scene.Scene, g grid.Writer[rune]) error {
	if err := s.Draw(g); err != nil {
		return fmt.Errorf("draw scene: %w", err)
	}
	return nil
}

// runScreen draws s on the terminal and waits for any key.
func runScreen(s *scene.Scene) error {
	ts, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := ts.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer ts.Fini()

	if err := showScene(ts, s); err != nil {
		return err
	}

	for {
		switch ts.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return nil
		case *tcell.EventResize:
			ts.Sync()
		}
	}
}

// showScene clears ts and shows s drawn over the scene background.
func showScene(ts tcell.Screen, s *scene.Scene) error {
	screen := terminal.NewScreen(ts, tcell.StyleDefault)
	screen.Clear()
	if err := fillBackground(screen, s); err != nil {
		return err
	}
	if err := drawScene(s, screen); err != nil {
		return err
	}
	screen.Show()
	return nil
}
