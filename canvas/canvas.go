// Package canvas adapts terminal cell buffers from charmbracelet/x/cellbuf to
// the grid capabilities, so shapes from package art can be drawn into a
// buffer that is later composed onto a screen with styling intact.
package canvas
