// Package family classifies colors into named families and derives the
// two-letter codes used as SKU prefixes.
//
// Classification works entirely in CIE L*a*b* space. An ordered table of
// empirically tuned carve-out rules runs first (achromatic, deep purple,
// burgundy, rose, warm red, beige, brown, dark blue); whatever they do not
// claim falls back to contiguous hue sectors described by HueBoundaries.
// The order and the literal thresholds in the rule table are load-bearing:
// existing catalog SKUs were generated from them.
//
// # Boundaries
//
// Sector boundaries are either passed explicitly through a Classifier value
// or read from the process-wide snapshot managed by SetHueBoundaries and
// CurrentBoundaries. The snapshot is replaced atomically, so a concurrent
// classification always sees one complete set of boundaries. Boundaries are
// not validated: gaps yield NoFamily and overlaps resolve in sector order.
//
// # Sentinels
//
// Functions in this package never fail. Unresolvable input produces NoFamily
// ("—") or a false ok result.
package family
