package render

import (
	"io"
	"strconv"

	"smoothlife/internal/core"
)

// Levels is the glyph palette ordered from empty to saturated.
const Levels = " .-=coaA@#"

const (
	clearScreen = "\x1B[1J"
	cursorHome  = "\x1B[H"
	resetStyle  = "\x1B[0m"
	upperHalf   = "▀"
)

// Renderer draws one frame of a grid.
type Renderer interface {
	Render(size core.Size, cells []float64) error
}

// Glyph maps an intensity to its palette character via floor(v*9). Values
// outside [0, 1] saturate at the palette ends.
func Glyph(v float64) byte {
	if !(v > 0) {
		return Levels[0]
	}
	idx := int(v * float64(len(Levels)-1))
	if idx >= len(Levels) {
		idx = len(Levels) - 1
	}
	return Levels[idx]
}

// AppendFrame appends the glyph rendering of cells to dst: every cell as its
// glyph twice, one line per grid row.
func AppendFrame(dst []byte, size core.Size, cells []float64) []byte {
	for y := 0; y < size.H; y++ {
		row := cells[y*size.W : (y+1)*size.W]
		for _, v := range row {
			c := Glyph(v)
			dst = append(dst, c, c)
		}
		dst = append(dst, '\n')
	}
	return dst
}

// TextRenderer writes glyph frames to a terminal stream.
type TextRenderer struct {
	out  io.Writer
	buf  []byte
	home bool
}

// NewTextRenderer returns a renderer writing to out. When home is set the
// cursor is moved to the top-left corner before each frame so frames overwrite
// each other instead of scrolling.
func NewTextRenderer(out io.Writer, home bool) *TextRenderer {
	return &TextRenderer{out: out, home: home}
}

// Render clears the screen and writes one frame in a single Write call.
func (r *TextRenderer) Render(size core.Size, cells []float64) error {
	r.buf = append(r.buf[:0], clearScreen...)
	if r.home {
		r.buf = append(r.buf, cursorHome...)
	}
	r.buf = AppendFrame(r.buf, size, cells)
	_, err := r.out.Write(r.buf)
	return err
}

// ANSIRenderer draws two grid rows per terminal line using 24-bit colour upper
// half blocks: the foreground carries row y-1 and the background row y. An odd
// final row is not drawn.
type ANSIRenderer struct {
	out  io.Writer
	buf  []byte
	home bool
}

// NewANSIRenderer returns a truecolour renderer writing to out.
func NewANSIRenderer(out io.Writer, home bool) *ANSIRenderer {
	return &ANSIRenderer{out: out, home: home}
}

// Render writes one frame in a single Write call.
func (r *ANSIRenderer) Render(size core.Size, cells []float64) error {
	r.buf = append(r.buf[:0], clearScreen...)
	if r.home {
		r.buf = append(r.buf, cursorHome...)
	}
	r.buf = AppendHalfBlocks(r.buf, size, cells)
	_, err := r.out.Write(r.buf)
	return err
}

// AppendHalfBlocks appends the truecolour half-block rendering of cells to dst.
func AppendHalfBlocks(dst []byte, size core.Size, cells []float64) []byte {
	for y := 1; y < size.H; y += 2 {
		for x := 0; x < size.W; x++ {
			curr := int64(Shade(cells[(y-1)*size.W+x]))
			next := int64(Shade(cells[y*size.W+x]))
			dst = append(dst, "\x1B[38;2;"...)
			dst = appendGray(dst, curr)
			dst = append(dst, "m\x1B[48;2;"...)
			dst = appendGray(dst, next)
			dst = append(dst, 'm')
			dst = append(dst, upperHalf...)
		}
		dst = append(dst, resetStyle...)
		dst = append(dst, '\n')
	}
	return append(dst, resetStyle...)
}

func appendGray(dst []byte, v int64) []byte {
	dst = strconv.AppendInt(dst, v, 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, v, 10)
	dst = append(dst, ';')
	return strconv.AppendInt(dst, v, 10)
}
