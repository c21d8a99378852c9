// Package catalog implements the catalog-side consumers of the color engine:
// choosing a family and SKU for a new color entry, warning about near
// duplicates by ΔE00, and re-running classification over a whole catalog.
//
// Storage is not handled here. Callers pass in the entries they already hold
// and persist whatever they decide to keep.
package catalog
