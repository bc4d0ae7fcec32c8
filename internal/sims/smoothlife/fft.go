package smoothlife

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"smoothlife/internal/core"
)

// FFTConvolver computes the neighbourhood sums as circular convolutions in the
// frequency domain: a real FFT along each row and a complex FFT along each
// column. Only w/2+1 coefficients are kept per row.
type FFTConvolver struct {
	w, h  int
	halfC int
	norm  float64

	rows *fourier.FFT
	cols *fourier.CmplxFFT

	innerFreq []complex128
	outerFreq []complex128
	freq      []complex128
	work      []complex128
	col       []complex128
	row       []float64
}

// NewFFTConvolver pre-transforms the inner and outer kernels for a w*h torus.
func NewFFTConvolver(w, h int, k Kernel) *FFTConvolver {
	halfC := w/2 + 1
	c := &FFTConvolver{
		w:         w,
		h:         h,
		halfC:     halfC,
		norm:      1.0 / float64(w*h),
		rows:      fourier.NewFFT(w),
		cols:      fourier.NewCmplxFFT(h),
		innerFreq: make([]complex128, h*halfC),
		outerFreq: make([]complex128, h*halfC),
		freq:      make([]complex128, h*halfC),
		work:      make([]complex128, h*halfC),
		col:       make([]complex128, h),
		row:       make([]float64, w),
	}
	c.forward(c.innerFreq, kernelField(w, h, k.Inner))
	c.forward(c.outerFreq, kernelField(w, h, k.Outer))
	return c
}

// kernelField places a unit weight at every offset, wrapped onto the torus.
// Offsets that wrap onto the same cell accumulate, matching the direct sum.
func kernelField(w, h int, offsets []Offset) []float64 {
	field := make([]float64, w*h)
	for _, o := range offsets {
		x := core.Mod(o.DX, w)
		y := core.Mod(o.DY, h)
		field[y*w+x]++
	}
	return field
}

// Name identifies the backend.
func (c *FFTConvolver) Name() string { return ConvolverFFT }

// Sums convolves src with both kernels. The kernels are point-symmetric so
// convolution and correlation coincide.
func (c *FFTConvolver) Sums(src, inner, outer []float64) {
	c.forward(c.freq, src)
	c.apply(inner, c.innerFreq)
	c.apply(outer, c.outerFreq)
}

func (c *FFTConvolver) apply(dst []float64, kernelFreq []complex128) {
	for i := range c.freq {
		c.work[i] = c.freq[i] * kernelFreq[i]
	}
	c.inverse(dst, c.work)
}

func (c *FFTConvolver) forward(dst []complex128, src []float64) {
	w, h, halfC := c.w, c.h, c.halfC
	for y := 0; y < h; y++ {
		c.rows.Coefficients(dst[y*halfC:(y+1)*halfC], src[y*w:(y+1)*w])
	}
	for x := 0; x < halfC; x++ {
		for y := 0; y < h; y++ {
			c.col[y] = dst[y*halfC+x]
		}
		c.cols.Coefficients(c.col, c.col)
		for y := 0; y < h; y++ {
			dst[y*halfC+x] = c.col[y]
		}
	}
}

// inverse overwrites freq with intermediate column results.
func (c *FFTConvolver) inverse(dst []float64, freq []complex128) {
	w, h, halfC := c.w, c.h, c.halfC
	for x := 0; x < halfC; x++ {
		for y := 0; y < h; y++ {
			c.col[y] = freq[y*halfC+x]
		}
		c.cols.Sequence(c.col, c.col)
		for y := 0; y < h; y++ {
			freq[y*halfC+x] = c.col[y]
		}
	}
	for y := 0; y < h; y++ {
		c.rows.Sequence(c.row, freq[y*halfC:(y+1)*halfC])
		for x := 0; x < w; x++ {
			dst[y*w+x] = c.row[x] * c.norm
		}
	}
}
