package smoothlife

import "math"

// Sigma is a smooth step centred at a with width alpha.
func Sigma(x, a, alpha float64) float64 {
	return 1.0 / (1.0 + math.Exp(-(x-a)*4/alpha))
}

// SigmaN is a smooth band-pass that is high for a < x < b.
func (p Params) SigmaN(x, a, b float64) float64 {
	return Sigma(x, a, p.AlphaN) * (1 - Sigma(x, b, p.AlphaN))
}

// SigmaM blends x towards y as m rises past 0.5.
func (p Params) SigmaM(x, y, m float64) float64 {
	return x*(1-Sigma(m, 0.5, p.AlphaM)) + y*Sigma(m, 0.5, p.AlphaM)
}

// Transition maps the outer-ring average n and inner-disk average m to a
// target intensity. The birth interval [b1, b2] is used where m is low and the
// survival interval [d1, d2] where m is high.
func (p Params) Transition(n, m float64) float64 {
	return p.SigmaN(n, p.SigmaM(p.B1, p.D1, m), p.SigmaM(p.B2, p.D2, m))
}
