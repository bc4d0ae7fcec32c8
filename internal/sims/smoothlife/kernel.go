package smoothlife

import (
	"fmt"

	"smoothlife/internal/core"
)

// Offset is a displacement from the centre cell.
type Offset struct {
	DX, DY int
}

// Kernel lists the offsets of the inner disk and the outer ring in scan order
// (rows of dy, then dx).
type Kernel struct {
	Ra    float64
	Ri    float64
	Inner []Offset
	Outer []Offset
}

// NewKernel classifies every offset in the scan window for the outer radius ra.
// The window runs from int(-(ra-1)) while the offset is <= ra-1, so a
// fractional ra is truncated rather than rounded.
func NewKernel(ra float64) (Kernel, error) {
	if !(ra > 0) {
		return Kernel{}, fmt.Errorf("%w: ra must be positive, got %g", ErrInvalidParameters, ra)
	}
	k := Kernel{Ra: ra, Ri: ra / 3}
	limit := ra - 1
	lo := int(-limit)
	ri2 := k.Ri * k.Ri
	ra2 := ra * ra
	for dy := lo; float64(dy) <= limit; dy++ {
		for dx := lo; float64(dx) <= limit; dx++ {
			d2 := float64(dx*dx + dy*dy)
			if d2 <= ri2 {
				k.Inner = append(k.Inner, Offset{DX: dx, DY: dy})
			} else if d2 <= ra2 {
				k.Outer = append(k.Outer, Offset{DX: dx, DY: dy})
			}
		}
	}
	if err := k.Validate(); err != nil {
		return Kernel{}, err
	}
	return k, nil
}

// Validate reports ErrInvalidParameters when either ring is empty.
func (k Kernel) Validate() error {
	if len(k.Inner) == 0 {
		return fmt.Errorf("%w: inner ring is empty for ra=%g", ErrInvalidParameters, k.Ra)
	}
	if len(k.Outer) == 0 {
		return fmt.Errorf("%w: outer ring is empty for ra=%g", ErrInvalidParameters, k.Ra)
	}
	return nil
}

// M returns the number of inner-disk offsets.
func (k Kernel) M() int { return len(k.Inner) }

// N returns the number of outer-ring offsets.
func (k Kernel) N() int { return len(k.Outer) }

// Convolver computes the unnormalised inner and outer neighbourhood sums of
// src for every cell. Implementations are bound to one grid size and kernel.
type Convolver interface {
	Name() string
	Sums(src, inner, outer []float64)
}

// DirectConvolver visits every kernel offset for every cell.
type DirectConvolver struct {
	w, h   int
	kernel Kernel
}

// NewDirectConvolver returns a convolver for a w*h torus.
func NewDirectConvolver(w, h int, k Kernel) *DirectConvolver {
	return &DirectConvolver{w: w, h: h, kernel: k}
}

// Name identifies the backend.
func (c *DirectConvolver) Name() string { return ConvolverDirect }

// Sums accumulates src over the inner disk and outer ring of each cell.
func (c *DirectConvolver) Sums(src, inner, outer []float64) {
	w, h := c.w, c.h
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			var m, n float64
			for _, o := range c.kernel.Inner {
				x := core.Mod(cx+o.DX, w)
				y := core.Mod(cy+o.DY, h)
				m += src[y*w+x]
			}
			for _, o := range c.kernel.Outer {
				x := core.Mod(cx+o.DX, w)
				y := core.Mod(cy+o.DY, h)
				n += src[y*w+x]
			}
			idx := cy*w + cx
			inner[idx] = m
			outer[idx] = n
		}
	}
}
