package ui

import "math"

type deltaProvider interface {
	Delta() []float64
}

const maxMaskAlpha = 140.0

// fillDeltaMask writes premultiplied RGBA tints for rate-of-change values in
// [-1,1] into buf. Non-finite and zero values are transparent.
func fillDeltaMask(buf []byte, delta []float64) {
	for i, d := range delta {
		base := i * 4
		buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
		if math.IsNaN(d) || d == 0 {
			continue
		}
		intensity := clamp01(math.Abs(d))
		alpha := uint8(math.Round(maxMaskAlpha * math.Sqrt(intensity)))
		if d > 0 {
			buf[base+1] = alpha
		} else {
			buf[base+0] = alpha
		}
		buf[base+3] = alpha
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
