// Package colorspace converts between hex, sRGB, CIE XYZ and CIE L*a*b*
// representations and measures perceptual distance between colors.
//
// All conversions use the D65 reference white:
//   - Xn = 0.95047
//   - Yn = 1.00000
//   - Zn = 1.08883
//
// # Error Handling
//
// Nothing in this package returns an error or panics for bad input. Parsing
// functions report failure through a boolean ok result; every other function
// is total over its input type.
//
// # Thread Safety
//
// The package holds no mutable state. Every function is safe for concurrent use.
package colorspace
