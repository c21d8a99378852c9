package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/color-family-mcp/internal/catalog"
	"github.com/ironsheep/color-family-mcp/internal/colorspace"
	"github.com/ironsheep/color-family-mcp/internal/config"
	"github.com/ironsheep/color-family-mcp/internal/family"
	"github.com/ironsheep/color-family-mcp/internal/imaging"
	"github.com/ironsheep/color-family-mcp/internal/ocr"
)

// errNoColor is returned when a tool needs a color but got neither a valid
// hex nor a complete L*a*b* triple.
var errNoColor = errors.New("color needs a valid hex or labL, labA and labB")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_infer_family").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}
	if len(params.Arguments) == 0 {
		params.Arguments = json.RawMessage(`{}`)
	}

	if s.cfg.Debug() {
		log.Printf("tools/call %s %s", params.Name, params.Arguments)
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Conversion
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_compensate":
		return s.handleColorCompensate(args)
	case "color_delta_e":
		return s.handleColorDeltaE(args)

	// Family Classification
	case "color_infer_family":
		return s.handleColorInferFamily(args)
	case "color_family_code":
		return s.handleColorFamilyCode(args)
	case "color_detect_family_name":
		return s.handleColorDetectFamilyName(args)

	// Catalog Operations
	case "color_resolve_sku":
		return s.handleColorResolveSKU(args)
	case "color_check_conflict":
		return s.handleColorCheckConflict(args)
	case "color_reclassify":
		return s.handleColorReclassify(ctx, args)

	// Hue Boundaries
	case "hue_boundaries_get":
		return s.handleHueBoundariesGet(args)
	case "hue_boundaries_set":
		return s.handleHueBoundariesSet(args)

	// Image Sampling
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_swatch_color":
		return s.handleImageSwatchColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_swatch_label":
		return s.handleImageSwatchLabel(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// hasLabTriple reports whether p carries an explicit L*a*b* reading.
func hasLabTriple(p colorspace.PartialColor) bool {
	return p.LabL != nil && p.LabA != nil && p.LabB != nil
}

// prepareColor applies white-balance compensation to an explicit L*a*b*
// reading when enabled by the request or, failing that, the server config.
// Hex colors are screen values and are never compensated.
func (s *Server) prepareColor(p colorspace.PartialColor, whiteBalance *bool) colorspace.PartialColor {
	enabled := s.cfg.WhiteBalance
	if whiteBalance != nil {
		enabled = *whiteBalance
	}
	if !enabled || !hasLabTriple(p) {
		return p
	}
	raw := colorspace.LAB{L: *p.LabL, A: *p.LabA, B: *p.LabB}
	out := colorspace.FromLAB(colorspace.CompensateLab(raw))
	out.Hex = p.Hex
	return out
}

// prepareEntries applies prepareColor to every entry's color so catalog
// readings and the candidate are compared in the same space. The input slice
// is left untouched.
func (s *Server) prepareEntries(entries []catalog.Entry, whiteBalance *bool) []catalog.Entry {
	out := make([]catalog.Entry, len(entries))
	for i, e := range entries {
		e.Color = s.prepareColor(e.Color, whiteBalance)
		out[i] = e
	}
	return out
}

// codeOf is family.CodeFor except that an unclassified color has no code.
func codeOf(fam string) string {
	if fam == family.NoFamily {
		return ""
	}
	return family.CodeFor(fam)
}

// === Color Conversion Handlers ===

type colorConvertArgs struct {
	colorspace.PartialColor
	RGB          *colorspace.RGB `json:"rgb,omitempty"`
	WhiteBalance *bool           `json:"white_balance,omitempty"`
}

type colorConvertResult struct {
	Hex    string         `json:"hex"`
	RGB    colorspace.RGB `json:"rgb"`
	XYZ    colorspace.XYZ `json:"xyz"`
	LAB    colorspace.LAB `json:"lab"`
	Hue    float64        `json:"hue"`
	Chroma float64        `json:"chroma"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var (
		rgb colorspace.RGB
		xyz colorspace.XYZ
		lab colorspace.LAB
	)
	p := s.prepareColor(a.PartialColor, a.WhiteBalance)
	switch {
	case hasLabTriple(p):
		lab = colorspace.LAB{L: *p.LabL, A: *p.LabA, B: *p.LabB}
		xyz = colorspace.LABToXYZ(lab)
		rgb = colorspace.XYZToRGB(xyz)
	case p.Hex != "":
		var ok bool
		if rgb, ok = colorspace.HexToRGB(p.Hex); !ok {
			return nil, fmt.Errorf("invalid hex color %q", p.Hex)
		}
		xyz = colorspace.RGBToXYZ(rgb)
		lab = colorspace.XYZToLAB(xyz)
	case a.RGB != nil:
		rgb = *a.RGB
		xyz = colorspace.RGBToXYZ(rgb)
		lab = colorspace.XYZToLAB(xyz)
	default:
		return nil, errNoColor
	}

	return &colorConvertResult{
		Hex:    colorspace.RGBToHex(rgb),
		RGB:    rgb,
		XYZ:    xyz,
		LAB:    lab.Round(2),
		Hue:    colorspace.HueAngle(lab),
		Chroma: lab.Chroma(),
	}, nil
}

type colorCompensateArgs struct {
	LabL *float64 `json:"labL"`
	LabA *float64 `json:"labA"`
	LabB *float64 `json:"labB"`
}

type colorCompensateResult struct {
	Raw         colorspace.LAB `json:"raw"`
	Compensated colorspace.LAB `json:"compensated"`
	Hex         string         `json:"hex"`
}

func (s *Server) handleColorCompensate(args json.RawMessage) (interface{}, error) {
	var a colorCompensateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.LabL == nil || a.LabA == nil || a.LabB == nil {
		return nil, fmt.Errorf("labL, labA and labB are required")
	}

	raw := colorspace.LAB{L: *a.LabL, A: *a.LabA, B: *a.LabB}
	out := colorspace.CompensateLab(raw)
	return &colorCompensateResult{
		Raw:         raw,
		Compensated: out,
		Hex:         colorspace.LABToHex(out),
	}, nil
}

type colorDeltaEArgs struct {
	Color1 colorspace.PartialColor `json:"color1"`
	Color2 colorspace.PartialColor `json:"color2"`
}

type colorDeltaEResult struct {
	DeltaE    float64 `json:"delta_e"`
	Threshold float64 `json:"threshold"`
	Similar   bool    `json:"similar"`
}

func (s *Server) handleColorDeltaE(args json.RawMessage) (interface{}, error) {
	var a colorDeltaEArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	lab1, ok := colorspace.LabFromPartial(a.Color1)
	if !ok {
		return nil, fmt.Errorf("color1: %w", errNoColor)
	}
	lab2, ok := colorspace.LabFromPartial(a.Color2)
	if !ok {
		return nil, fmt.Errorf("color2: %w", errNoColor)
	}

	threshold := s.settings.Get().DeltaThreshold
	d := colorspace.CIEDE2000(lab1, lab2)
	return &colorDeltaEResult{DeltaE: d, Threshold: threshold, Similar: d < threshold}, nil
}

// === Family Classification Handlers ===

type colorInferFamilyArgs struct {
	colorspace.PartialColor
	WhiteBalance *bool `json:"white_balance,omitempty"`
}

type colorInferFamilyResult struct {
	family.Match
	Code     string          `json:"code,omitempty"`
	LAB      *colorspace.LAB `json:"lab,omitempty"`
	Resolved bool            `json:"resolved"`
}

func (s *Server) handleColorInferFamily(args json.RawMessage) (interface{}, error) {
	var a colorInferFamilyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	p := s.prepareColor(a.PartialColor, a.WhiteBalance)
	m, ok := family.Current().Explain(p)
	res := &colorInferFamilyResult{Match: m, Code: codeOf(m.Family), Resolved: ok}
	if ok {
		lab, _ := colorspace.LabFromPartial(p)
		lab = lab.Round(2)
		res.LAB = &lab
	}
	return res, nil
}

type colorFamilyCodeArgs struct {
	Family string `json:"family"`
}

func (s *Server) handleColorFamilyCode(args json.RawMessage) (interface{}, error) {
	var a colorFamilyCodeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return map[string]string{
		"family": a.Family,
		"code":   family.CodeFor(a.Family),
	}, nil
}

type colorDetectFamilyNameArgs struct {
	Name string `json:"name"`
}

type colorDetectFamilyNameResult struct {
	Name      string `json:"name"`
	Family    string `json:"family,omitempty"`
	Detected  bool   `json:"detected"`
	Canonical bool   `json:"canonical"` // Family is one of the 13 known families
}

func (s *Server) handleColorDetectFamilyName(args json.RawMessage) (interface{}, error) {
	var a colorDetectFamilyNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	res := &colorDetectFamilyNameResult{Name: a.Name}
	if fam, ok := family.DetectFromName(a.Name); ok {
		res.Family, res.Detected = fam, true
		_, res.Canonical = family.IsCanonical(fam)
	}
	return res, nil
}

// === Catalog Handlers ===

type colorResolveSKUArgs struct {
	Name         string                  `json:"name"`
	Color        colorspace.PartialColor `json:"color"`
	ExistingSKUs []string                `json:"existing_skus"`
	WhiteBalance *bool                   `json:"white_balance,omitempty"`
}

func (s *Server) handleColorResolveSKU(args json.RawMessage) (interface{}, error) {
	var a colorResolveSKUArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p := s.prepareColor(a.Color, a.WhiteBalance)
	asg := catalog.AssignSKU(family.Current(), a.Name, p, a.ExistingSKUs)
	return &asg, nil
}

type colorCheckConflictArgs struct {
	Color        colorspace.PartialColor `json:"color"`
	Entries      []catalog.Entry         `json:"entries"`
	ExcludeID    string                  `json:"exclude_id"`
	Threshold    *float64                `json:"threshold,omitempty"`
	WhiteBalance *bool                   `json:"white_balance,omitempty"`
}

type colorCheckConflictResult struct {
	Conflict  bool              `json:"conflict"`
	Nearest   *catalog.Conflict `json:"nearest,omitempty"`
	Threshold float64           `json:"threshold"`
}

func (s *Server) handleColorCheckConflict(args json.RawMessage) (interface{}, error) {
	var a colorCheckConflictArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	threshold := s.settings.Get().DeltaThreshold
	if a.Threshold != nil {
		if *a.Threshold <= 0 {
			return nil, fmt.Errorf("threshold must be positive, got %v", *a.Threshold)
		}
		threshold = *a.Threshold
	}

	p := s.prepareColor(a.Color, a.WhiteBalance)
	if _, ok := colorspace.LabFromPartial(p); !ok {
		return nil, errNoColor
	}

	res := &colorCheckConflictResult{Threshold: threshold}
	entries := s.prepareEntries(a.Entries, a.WhiteBalance)
	if c, ok := catalog.Nearest(p, entries, threshold, a.ExcludeID); ok {
		// Report the entry as the caller sent it.
		for i := range entries {
			if entries[i] == c.Entry {
				c.Entry = a.Entries[i]
				break
			}
		}
		res.Nearest = &c
		res.Conflict = c.Similar
	}
	return res, nil
}

type colorReclassifyArgs struct {
	Entries      []catalog.Entry `json:"entries"`
	WhiteBalance *bool           `json:"white_balance,omitempty"`
}

type colorReclassifyResult struct {
	Results []catalog.Reclassification `json:"results"`
	Count   int                        `json:"count"`
	Changed int                        `json:"changed"` // entries whose SKU prefix would change
}

func (s *Server) handleColorReclassify(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a colorReclassifyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	entries := s.prepareEntries(a.Entries, a.WhiteBalance)
	results, err := catalog.Reclassify(ctx, family.Current(), entries, s.cfg.Workers)
	if err != nil {
		return nil, err
	}

	res := &colorReclassifyResult{Results: results, Count: len(results)}
	for _, r := range results {
		if r.PrefixChanged {
			res.Changed++
		}
	}
	return res, nil
}

// === Hue Boundary Handlers ===

type hueBoundariesResult struct {
	Boundaries     family.HueBoundaries `json:"boundaries"`
	Defaults       family.HueBoundaries `json:"defaults"`
	DeltaThreshold float64              `json:"delta_threshold"`
	SettingsPath   string               `json:"settings_path,omitempty"`
}

func (s *Server) boundariesResult() *hueBoundariesResult {
	return &hueBoundariesResult{
		Boundaries:     family.CurrentBoundaries(),
		Defaults:       family.DefaultHueBoundaries,
		DeltaThreshold: s.settings.Get().DeltaThreshold,
		SettingsPath:   s.settings.Path(),
	}
}

func (s *Server) handleHueBoundariesGet(args json.RawMessage) (interface{}, error) {
	var a struct{}
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.boundariesResult(), nil
}

type hueBoundariesSetArgs struct {
	family.BoundaryUpdate
	Reset          bool     `json:"reset"`
	DeltaThreshold *float64 `json:"delta_threshold,omitempty"`
}

func (s *Server) handleHueBoundariesSet(args json.RawMessage) (interface{}, error) {
	var a hueBoundariesSetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	// Validate before touching any state so a bad threshold changes nothing.
	if a.DeltaThreshold != nil && *a.DeltaThreshold <= 0 {
		return nil, fmt.Errorf("delta_threshold must be positive, got %v", *a.DeltaThreshold)
	}

	// Persist first so a failed write leaves the live boundaries untouched.
	saved, err := s.settings.Apply(config.Change{
		Reset:      a.Reset,
		Boundaries: a.BoundaryUpdate,
		Threshold:  a.DeltaThreshold,
	})
	if err != nil {
		return nil, err
	}
	if a.Reset || !a.BoundaryUpdate.IsEmpty() {
		b := family.SetHueBoundaries(saved.HueBoundaries.Update())
		log.Printf("Hue boundaries updated: %+v", b)
	}
	return s.boundariesResult(), nil
}

// === Image Handlers ===

// swatchResult is a sampled color plus its classification.
type swatchResult struct {
	imaging.Sample
	Family string `json:"family"`
	Rule   string `json:"rule,omitempty"`
	Code   string `json:"code,omitempty"`
}

func describe(c family.Classifier, sample imaging.Sample) swatchResult {
	m := c.Classify(sample.LAB)
	return swatchResult{
		Sample: sample,
		Family: m.Family,
		Rule:   m.Rule,
		Code:   codeOf(m.Family),
	}
}

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path   string  `json:"path"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Radius float64 `json:"radius"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	sample, err := imaging.SampleColor(img, a.X, a.Y, a.Radius)
	if err != nil {
		return nil, err
	}
	res := describe(family.Current(), *sample)
	return &res, nil
}

type imageSwatchColorArgs struct {
	Path string `json:"path"`
	imaging.Region
}

func (s *Server) handleImageSwatchColor(args json.RawMessage) (interface{}, error) {
	var a imageSwatchColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	sample, err := imaging.SwatchColor(img, a.Region)
	if err != nil {
		return nil, err
	}
	res := describe(family.Current(), *sample)
	return &res, nil
}

type imageDominantColorsArgs struct {
	Path   string          `json:"path"`
	Count  int             `json:"count"`
	Region *imaging.Region `json:"region"`
}

type dominantColor struct {
	swatchResult
	Percentage float64 `json:"percentage"`
}

type imageDominantColorsResult struct {
	Colors []dominantColor `json:"colors"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	palette, err := imaging.DominantColors(img, a.Count, a.Region)
	if err != nil {
		return nil, err
	}

	c := family.Current()
	res := &imageDominantColorsResult{Colors: make([]dominantColor, 0, len(palette))}
	for _, p := range palette {
		res.Colors = append(res.Colors, dominantColor{
			swatchResult: describe(c, p.Sample),
			Percentage:   p.Percentage,
		})
	}
	return res, nil
}

type imageSwatchLabelArgs struct {
	Path string `json:"path"`
	imaging.Region
	Language string `json:"language"`
}

type imageSwatchLabelResult struct {
	*ocr.Label
	Code string `json:"code,omitempty"`
}

func (s *Server) handleImageSwatchLabel(args json.RawMessage) (interface{}, error) {
	var a imageSwatchLabelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = s.cfg.OCRLanguage
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region image.Rectangle
	if a.Region != (imaging.Region{}) {
		region = a.Region.Rect()
	}
	label, err := ocr.ReadLabel(img, region, a.Language)
	if err != nil {
		return nil, err
	}

	res := &imageSwatchLabelResult{Label: label}
	if label.Family != "" {
		res.Code = family.CodeFor(label.Family)
	}
	return res, nil
}
