package colorspace

import (
	"math"
	"testing"
)

// Reference pairs from Sharma, Wu & Dalal (2005), as tabulated by Lindbloom.
var sharmaPairs = []struct {
	lab1, lab2 LAB
	want       float64
}{
	{LAB{50, 2.6772, -79.7751}, LAB{50, 0, -82.7485}, 2.0425},
	{LAB{50, 3.1571, -77.2803}, LAB{50, 0, -82.7485}, 2.8615},
	{LAB{50, 2.8361, -74.0200}, LAB{50, 0, -82.7485}, 3.4412},
	{LAB{50, -1.3802, -84.2814}, LAB{50, 0, -82.7485}, 1.0000},
	{LAB{50, 0, 0}, LAB{50, -1, 2}, 2.3669},
	{LAB{50, -1, 2}, LAB{50, 0, 0}, 2.3669},
	{LAB{50, 2.49, -0.001}, LAB{50, -2.49, 0.0009}, 7.1792},
	{LAB{50, 2.5, 0}, LAB{50, 0, -2.5}, 4.3065},
	{LAB{50, 2.5, 0}, LAB{73, 25, -18}, 27.1492},
	{LAB{50, 2.5, 0}, LAB{61, -5, 29}, 22.8977},
	{LAB{50, 2.5, 0}, LAB{56, -27, -3}, 31.9030},
	{LAB{60.2574, -34.0099, 36.2677}, LAB{60.4626, -34.1751, 39.4387}, 1.2644},
	{LAB{2.0776, 0.0795, -1.1350}, LAB{0.9033, -0.0636, -0.5514}, 0.9082},
}

func TestCIEDE2000_ReferencePairs(t *testing.T) {
	for i, p := range sharmaPairs {
		got := CIEDE2000(p.lab1, p.lab2)
		if math.Abs(got-p.want) > 1e-4 {
			t.Errorf("pair %d: CIEDE2000(%+v, %+v) = %.6f, want %.4f", i+1, p.lab1, p.lab2, got, p.want)
		}
	}
}

// Full-precision values for pairs whose mean hue is the same under the
// Sharma and Lindbloom conventions, from an independent double-precision
// implementation of the Sharma, Wu & Dalal equations.
var precisePairs = []struct {
	lab1, lab2 LAB
	want       float64
}{
	{LAB{50, 2.6772, -79.7751}, LAB{50, 0, -82.7485}, 2.0424596802},
	{LAB{50, 3.1571, -77.2803}, LAB{50, 0, -82.7485}, 2.8615101747},
	{LAB{50, 2.8361, -74.0200}, LAB{50, 0, -82.7485}, 3.4411905987},
	{LAB{50, -1.3802, -84.2814}, LAB{50, 0, -82.7485}, 0.9999988648},
	{LAB{50, 2.5, 0}, LAB{73, 25, -18}, 27.1492313007},
	{LAB{50, 2.5, 0}, LAB{61, -5, 29}, 22.8976924698},
	{LAB{60.2574, -34.0099, 36.2677}, LAB{60.4626, -34.1751, 39.4387}, 1.2644200136},
	{LAB{63.0109, -31.0961, -5.8663}, LAB{62.8187, -29.7946, -4.0864}, 1.2629592983},
	{LAB{61.2901, 3.7196, -5.3901}, LAB{61.4292, 2.2480, -4.9620}, 1.8730705001},
	{LAB{35.0831, -44.1164, 3.7933}, LAB{35.0232, -40.0716, 1.5901}, 1.8644952342},
	{LAB{22.7233, 20.0904, -46.6940}, LAB{23.0331, 14.9730, -42.5619}, 2.0372582697},
	{LAB{36.4612, 47.8580, 18.3852}, LAB{36.2715, 50.5065, 21.2231}, 1.4145779225},
	{LAB{90.8027, -2.0831, 1.4410}, LAB{91.1528, -1.6435, 0.0447}, 1.4441290781},
	{LAB{2.0776, 0.0795, -1.1350}, LAB{0.9033, -0.0636, -0.5514}, 0.9082328396},
}

func TestCIEDE2000_FullPrecision(t *testing.T) {
	for i, p := range precisePairs {
		got := CIEDE2000(p.lab1, p.lab2)
		if math.Abs(got-p.want) > 1e-6 {
			t.Errorf("pair %d: CIEDE2000(%+v, %+v) = %.10f, want %.10f", i+1, p.lab1, p.lab2, got, p.want)
		}
	}
}

func TestCIEDE2000_Identity(t *testing.T) {
	labs := []LAB{{0, 0, 0}, {100, 0, 0}, {50, 2.5, 0}, {25.29, 25.37, 6.61}, {66.5, -6.2, -52.1}, {10, -120, 140}}
	for _, lab := range labs {
		if got := CIEDE2000(lab, lab); got != 0 {
			t.Errorf("CIEDE2000(%+v, itself) = %v, want 0", lab, got)
		}
	}
}

func TestCIEDE2000_Symmetry(t *testing.T) {
	for i, p := range sharmaPairs {
		ab := CIEDE2000(p.lab1, p.lab2)
		ba := CIEDE2000(p.lab2, p.lab1)
		if ab != ba {
			t.Errorf("pair %d: not symmetric: %v vs %v", i+1, ab, ba)
		}
		if ab < 0 {
			t.Errorf("pair %d: negative distance %v", i+1, ab)
		}
	}
}

func TestHueAngle_Range(t *testing.T) {
	tests := []struct {
		lab  LAB
		want float64
	}{
		{LAB{50, 10, 0}, 0},
		{LAB{50, 0, 10}, 90},
		{LAB{50, -10, 0}, 180},
		{LAB{50, 0, -10}, 270},
		{LAB{50, 0, 0}, 0},
		{LAB{50, 10, -1e-300}, 0},
	}
	for _, tt := range tests {
		got := HueAngle(tt.lab)
		if got < 0 || got >= 360 {
			t.Errorf("HueAngle(%+v) = %v outside [0,360)", tt.lab, got)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("HueAngle(%+v) = %v, want %v", tt.lab, got, tt.want)
		}
	}

	for a := -100.0; a <= 100; a += 7.3 {
		for b := -100.0; b <= 100; b += 7.3 {
			if h := HueAngle(LAB{50, a, b}); h < 0 || h >= 360 {
				t.Fatalf("HueAngle(a=%v, b=%v) = %v outside [0,360)", a, b, h)
			}
		}
	}
}
