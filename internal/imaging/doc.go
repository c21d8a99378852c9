// Package imaging reads swatch colors out of photographs and scans of fabric
// samples so they can be classified like any hex or LAB reading.
//
// Coordinates are 0-based with the origin at the top-left corner. Regions
// are half-open: (X1,Y1) is inclusive and (X2,Y2) is exclusive.
//
// # Sampling
//
// Three ways of reading a color are provided:
//   - SampleColor reads one pixel, optionally after a Gaussian denoise of its
//     neighbourhood to suppress sensor noise and fabric texture.
//   - SwatchColor averages every pixel of a rectangular region.
//   - DominantColors builds a quantized palette of the most frequent colors.
//
// Every result carries hex, 8-bit RGB and CIE L*a*b* (D65) values.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The sampling functions hold no state
// and may be called concurrently on the same image as long as nobody mutates it.
package imaging
