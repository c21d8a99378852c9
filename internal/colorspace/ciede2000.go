package colorspace

import "math"

// pow25to7 is 25^7.
const pow25to7 = 6103515625.0

// CIEDE2000 returns the CIE ΔE00 color difference between two LAB colors
// with unit weighting factors (kL = kC = kH = 1).
//
// The mean hue follows Lindbloom's formulation: when the two hue primes are
// more than 180° apart, 360° is added before halving. The result is always
// non-negative, exactly zero for identical inputs, and symmetric in its
// arguments.
func CIEDE2000(lab1, lab2 LAB) float64 {
	avgLp := (lab1.L + lab2.L) / 2

	c1 := math.Sqrt(lab1.A*lab1.A + lab1.B*lab1.B)
	c2 := math.Sqrt(lab2.A*lab2.A + lab2.B*lab2.B)
	avgC := (c1 + c2) / 2
	avgC7 := math.Pow(avgC, 7)
	g := 0.5 * (1 - math.Sqrt(avgC7/(avgC7+pow25to7)))

	a1p := (1 + g) * lab1.A
	a2p := (1 + g) * lab2.A
	c1p := math.Sqrt(a1p*a1p + lab1.B*lab1.B)
	c2p := math.Sqrt(a2p*a2p + lab2.B*lab2.B)
	avgCp := (c1p + c2p) / 2

	h1p := hueDegrees(lab1.B, a1p)
	h2p := hueDegrees(lab2.B, a2p)

	dhp := h2p - h1p
	if dhp > 180 {
		dhp -= 360
	}
	if dhp < -180 {
		dhp += 360
	}

	dLp := lab2.L - lab1.L
	dCp := c2p - c1p
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(radians(dhp)/2)

	avgHp := h1p + h2p
	if math.Abs(h1p-h2p) > 180 {
		avgHp += 360
	}
	avgHp /= 2

	t := 1 -
		0.17*math.Cos(radians(avgHp-30)) +
		0.24*math.Cos(radians(2*avgHp)) +
		0.32*math.Cos(radians(3*avgHp+6)) -
		0.20*math.Cos(radians(4*avgHp-63))

	lm50 := (avgLp - 50) * (avgLp - 50)
	sl := 1 + 0.015*lm50/math.Sqrt(20+lm50)
	sc := 1 + 0.045*avgCp
	sh := 1 + 0.015*avgCp*t

	hd := (avgHp - 275) / 25
	dTheta := 30 * math.Exp(-hd*hd)
	avgCp7 := math.Pow(avgCp, 7)
	rc := 2 * math.Sqrt(avgCp7/(avgCp7+pow25to7))
	rt := -rc * math.Sin(radians(2*dTheta))

	const kL, kC, kH = 1.0, 1.0, 1.0
	lTerm := dLp / (kL * sl)
	cTerm := dCp / (kC * sc)
	hTerm := dHp / (kH * sh)

	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rt*cTerm*hTerm)
}

// HueAngle returns the hue of c in degrees, normalized to [0,360).
func HueAngle(c LAB) float64 {
	return hueDegrees(c.B, c.A)
}

// hueDegrees returns atan2(y, x) in degrees within [0,360).
func hueDegrees(y, x float64) float64 {
	h := math.Atan2(y, x) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	// -tiny + 360 can round up to exactly 360.
	if h >= 360 {
		h -= 360
	}
	return h
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
