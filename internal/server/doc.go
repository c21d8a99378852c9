// Package server implements the MCP (Model Context Protocol) server that
// exposes color conversion, family classification and swatch sampling as
// tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Conversion:
//   - color_convert: hex, RGB, XYZ and L*a*b* of one color
//   - color_compensate: white-balance a raw device reading
//   - color_delta_e: CIEDE2000 distance between two colors
//
// Family Classification:
//   - color_infer_family: family and deciding rule for a color
//   - color_family_code: two-letter SKU prefix of a family
//   - color_detect_family_name: family implied by a color name
//
// Catalog Operations:
//   - color_resolve_sku: family, prefix and next SKU for a new color
//   - color_check_conflict: nearest catalog color by ΔE00
//   - color_reclassify: re-infer families for a whole catalog
//
// Hue Boundaries:
//   - hue_boundaries_get: current, default and threshold settings
//   - hue_boundaries_set: merge boundary changes, optionally persisted
//
// Image Sampling:
//   - image_load: image metadata
//   - image_sample_color: pixel color, optionally smoothed
//   - image_swatch_color: mean color of a region
//   - image_dominant_colors: classified palette
//   - image_swatch_label: OCR of a swatch label
//
// Every color a tool returns as a classification comes with its family, and
// the SKU code when the family is known.
//
// # White Balance
//
// Explicit L*a*b* readings can be corrected for the measuring device's white
// point before use. The white_balance argument overrides the server default
// (COLOR_MCP_WHITE_BALANCE). Hex input is never corrected.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// A color that cannot be classified is not an error: color_infer_family
// reports the family "—" with resolved set to false.
package server
