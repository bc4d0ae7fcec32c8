package render

import (
	"github.com/gdamore/tcell/v2"

	"smoothlife/internal/core"
)

// ScreenRenderer draws frames on a tcell screen, two terminal cells per grid
// cell, with the glyph tinted by the cell's grey level.
type ScreenRenderer struct {
	screen tcell.Screen
}

// NewScreenRenderer wraps an initialised screen.
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Render draws one frame and shows it. Cells beyond the screen are clipped by
// tcell.
func (r *ScreenRenderer) Render(size core.Size, cells []float64) error {
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			v := cells[y*size.W+x]
			g := int32(Shade(v))
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(g, g, g)).
				Background(tcell.ColorBlack)
			glyph := rune(Glyph(v))
			r.screen.SetContent(x*2, y, glyph, nil, style)
			r.screen.SetContent(x*2+1, y, glyph, nil, style)
		}
	}
	r.screen.Show()
	return nil
}

// Listen polls screen events on a goroutine and calls quit when q, Esc or
// Ctrl-C is pressed. The goroutine exits once the screen is finalised.
func (r *ScreenRenderer) Listen(quit func()) {
	go func() {
		for {
			switch ev := r.screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					quit()
				}
			case *tcell.EventResize:
				r.screen.Sync()
			}
		}
	}()
}
