package render

import (
	"image"
	"image/color"

	"smoothlife/internal/core"
)

// Shade converts an intensity to an 8-bit grey level via int(v*255).
func Shade(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// fillGrayRGBA converts intensities into opaque grey RGBA pixels in buf.
func fillGrayRGBA(buf []byte, cells []float64) {
	for i, v := range cells {
		base := i * 4
		g := Shade(v)
		buf[base+0] = g
		buf[base+1] = g
		buf[base+2] = g
		buf[base+3] = 0xff
	}
}

// GrayImage renders cells into a grey image, each cell scale*scale pixels.
func GrayImage(size core.Size, cells []float64, scale int) *image.Gray {
	if scale <= 0 {
		scale = 1
	}
	img := image.NewGray(image.Rect(0, 0, size.W*scale, size.H*scale))
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			g := color.Gray{Y: Shade(cells[y*size.W+x])}
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					img.SetGray(x*scale+sx, y*scale+sy, g)
				}
			}
		}
	}
	return img
}
