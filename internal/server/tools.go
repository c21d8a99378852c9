package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorProperties returns the schema properties of a color given either as
// hex or as an explicit L*a*b* triple.
func colorProperties() map[string]interface{} {
	return map[string]interface{}{
		"hex": map[string]interface{}{
			"type":        "string",
			"description": "Color as #RRGGBB (leading # optional)",
		},
		"labL": map[string]interface{}{
			"type":        "number",
			"description": "CIE L* (0-100). Together with labA and labB takes precedence over hex",
		},
		"labA": map[string]interface{}{
			"type":        "number",
			"description": "CIE a*",
		},
		"labB": map[string]interface{}{
			"type":        "number",
			"description": "CIE b*",
		},
	}
}

// colorSchema is an object schema for a single color.
func colorSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties":  colorProperties(),
	}
}

// withWhiteBalance adds the white_balance switch to a properties map.
func withWhiteBalance(props map[string]interface{}) map[string]interface{} {
	props["white_balance"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Compensate an explicit L*a*b* reading for the measuring device's white point. Defaults to the server setting",
	}
	return props
}

// entriesSchema describes a list of catalog entries.
func entriesSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": "Catalog colors",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id":    map[string]interface{}{"type": "string"},
				"name":  map[string]interface{}{"type": "string"},
				"sku":   map[string]interface{}{"type": "string"},
				"color": colorSchema("Catalog color"),
			},
			"required": []string{"id"},
		},
	}
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// regionProperties returns x1/y1/x2/y2 schema properties.
func regionProperties() map[string]interface{} {
	return map[string]interface{}{
		"x1": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
		"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
		"x2": map[string]interface{}{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
		"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	boundaryProps := map[string]interface{}{}
	for _, f := range []string{"vermelhoStart", "laranjaStart", "amareloStart", "verdeStart", "verdeEnd", "azulStart", "roxoStart", "magentaStart"} {
		boundaryProps[f] = map[string]interface{}{
			"type":        "number",
			"description": "Hue angle in degrees (0-360)",
		}
	}
	boundaryProps["reset"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Restore the default boundaries before applying any fields",
	}
	boundaryProps["delta_threshold"] = map[string]interface{}{
		"type":        "number",
		"description": "New ΔE00 threshold for conflict checks (must be positive)",
	}

	swatchProps := regionProperties()
	swatchProps["path"] = pathProperty()

	labelProps := regionProperties()
	labelProps["path"] = pathProperty()
	labelProps["language"] = map[string]interface{}{
		"type":        "string",
		"description": "Tesseract language code. Defaults to the server setting (por)",
	}

	return []Tool{
		// Color Conversion
		{
			Name:        "color_convert",
			Description: "Convert a color between hex, RGB, XYZ and CIE L*a*b* (D65), reporting hue angle and chroma.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withWhiteBalance(func() map[string]interface{} {
					p := colorProperties()
					p["rgb"] = map[string]interface{}{
						"type":        "object",
						"description": "Color as 8-bit channels, used when neither hex nor L*a*b* is given",
						"properties": map[string]interface{}{
							"r": map[string]interface{}{"type": "integer"},
							"g": map[string]interface{}{"type": "integer"},
							"b": map[string]interface{}{"type": "integer"},
						},
					}
					return p
				}()),
			},
		},
		{
			Name:        "color_compensate",
			Description: "Apply white-balance compensation to a raw L*a*b* reading from the color measuring device.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"labL": map[string]interface{}{"type": "number", "description": "Raw L*"},
					"labA": map[string]interface{}{"type": "number", "description": "Raw a*"},
					"labB": map[string]interface{}{"type": "number", "description": "Raw b*"},
				},
				"required": []string{"labL", "labA", "labB"},
			},
		},
		{
			Name:        "color_delta_e",
			Description: "Perceptual distance between two colors using CIEDE2000.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color1": colorSchema("First color"),
					"color2": colorSchema("Second color"),
				},
				"required": []string{"color1", "color2"},
			},
		},

		// Family Classification
		{
			Name:        "color_infer_family",
			Description: "Classify a color into a family (Vermelho, Azul, Bordô, ...) and report which rule decided.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": withWhiteBalance(colorProperties()),
			},
		},
		{
			Name:        "color_family_code",
			Description: "Two-letter SKU prefix for a family name. Unknown families map to OT.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"family": map[string]interface{}{"type": "string", "description": "Family name"},
				},
				"required": []string{"family"},
			},
		},
		{
			Name:        "color_detect_family_name",
			Description: "Derive a family from the first word of a color name (\"Azul Marinho\" -> Azul).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{"type": "string", "description": "Color name as typed by the user"},
				},
				"required": []string{"name"},
			},
		},

		// Catalog Operations
		{
			Name:        "color_resolve_sku",
			Description: "Resolve family, SKU prefix and next SKU for a new catalog color from its name and color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withWhiteBalance(map[string]interface{}{
					"name":  map[string]interface{}{"type": "string", "description": "Color name"},
					"color": colorSchema("Color reading"),
					"existing_skus": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "SKUs already in the catalog",
					},
				}),
			},
		},
		{
			Name:        "color_check_conflict",
			Description: "Find the catalog color nearest to a candidate by ΔE00 and report whether it is below the conflict threshold.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withWhiteBalance(map[string]interface{}{
					"color":      colorSchema("Candidate color"),
					"entries":    entriesSchema(),
					"exclude_id": map[string]interface{}{"type": "string", "description": "ID of the entry being edited"},
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "ΔE00 threshold. Defaults to the configured value (2.0)",
					},
				}),
				"required": []string{"color", "entries"},
			},
		},
		{
			Name:        "color_reclassify",
			Description: "Re-infer family and SKU prefix for a whole catalog against the current hue boundaries.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withWhiteBalance(map[string]interface{}{
					"entries": entriesSchema(),
				}),
				"required": []string{"entries"},
			},
		},

		// Hue Boundaries
		{
			Name:        "hue_boundaries_get",
			Description: "Current hue sector boundaries, the defaults, and the ΔE conflict threshold.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "hue_boundaries_set",
			Description: "Merge new hue sector boundaries (only the given fields change) and optionally the ΔE threshold. Persisted when a settings file is configured.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": boundaryProps,
			},
		},

		// Image Sampling
		{
			Name:        "image_load",
			Description: "Load a swatch image and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Read the color at a pixel, optionally smoothed over its neighbourhood, and classify it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x":    map[string]interface{}{"type": "integer", "description": "X coordinate (0-based, from left)"},
					"y":    map[string]interface{}{"type": "integer", "description": "Y coordinate (0-based, from top)"},
					"radius": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian smoothing radius in pixels. Default 0 (exact pixel)",
						"default":     0,
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_swatch_color",
			Description: "Average color of a rectangular swatch region, classified into a family.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": swatchProps,
				"required":   []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Most frequent colors of an image or region, each classified into a family.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region to analyze",
						"properties":  regionProperties(),
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_swatch_label",
			Description: "Read the printed label of a swatch with OCR and detect the family from its name. Omit the region to read the whole image.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": labelProps,
				"required":   []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
