package colorspace

import "math"

// DeviceWhitePoint is the LAB reading the colorimeter reports for its own
// calibration cap.
var DeviceWhitePoint = LAB{L: 96.78, A: -0.48, B: -0.09}

// TargetWhite is the neutral reference the device reading is corrected to.
// L is kept at the device value so luminance is not stretched.
var TargetWhite = LAB{L: 96.78, A: 0, B: 0}

// CompensateLab shifts a raw device reading by TargetWhite - DeviceWhitePoint.
//
// L is clamped to [0,100] and every channel is rounded to two decimals.
func CompensateLab(raw LAB) LAB {
	dL := TargetWhite.L - DeviceWhitePoint.L
	dA := TargetWhite.A - DeviceWhitePoint.A
	dB := TargetWhite.B - DeviceWhitePoint.B

	return LAB{
		L: roundTo(math.Min(100, math.Max(0, raw.L+dL)), 2),
		A: roundTo(raw.A+dA, 2),
		B: roundTo(raw.B+dB, 2),
	}
}
