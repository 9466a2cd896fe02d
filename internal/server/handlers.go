package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-mosaic/internal/imaging"
	"github.com/ironsheep/image-mosaic/internal/mosaic"
	"github.com/ironsheep/image-mosaic/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "mosaic_build").
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
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "mosaic_partition":
		return s.handleMosaicPartition(args)
	case "mosaic_build":
		return s.handleMosaicBuild(args)
	case "mosaic_render":
		return s.handleMosaicRender(args)
	case "mosaic_overlay":
		return s.handleMosaicOverlay(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// withDefaultResolution maps an omitted (zero) resolution to the default.
// Negative values are passed through and rejected by the mosaic package.
func withDefaultResolution(n int) mosaic.GridSpec {
	if n == 0 {
		n = mosaic.DefaultResolution
	}
	return mosaic.GridSpec{Resolution: n}
}

// buildMosaic loads path through the cache and builds its mosaic.
func (s *Server) buildMosaic(path string, resolution int) (*mosaic.Mosaic, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return mosaic.New(img, withDefaultResolution(resolution))
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

// PartitionResult is the output of mosaic_partition.
type PartitionResult struct {
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	Resolution int               `json:"resolution"`
	CellWidth  float64           `json:"cell_width"`
	CellHeight float64           `json:"cell_height"`
	CellCount  int               `json:"cell_count"`
	Cells      []mosaic.CellRect `json:"cells"`
}

// maxPartitionCells bounds the cell list mosaic_partition will return for
// an arbitrary width and height.
const maxPartitionCells = 1 << 20

type mosaicPartitionArgs struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	Resolution int `json:"resolution"`
}

func (s *Server) handleMosaicPartition(args json.RawMessage) (interface{}, error) {
	var a mosaicPartitionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	spec := withDefaultResolution(a.Resolution)
	if count := mosaic.CellCount(a.Width, a.Height, spec); count > maxPartitionCells {
		return nil, fmt.Errorf("partition has %d cells, limit is %d", count, maxPartitionCells)
	}
	cells, err := mosaic.Partition(a.Width, a.Height, spec)
	if err != nil {
		return nil, err
	}
	if cells == nil {
		cells = []mosaic.CellRect{}
	}

	cw, ch := spec.CellSize(a.Width, a.Height)
	return &PartitionResult{
		Width:      a.Width,
		Height:     a.Height,
		Resolution: spec.Resolution,
		CellWidth:  cw,
		CellHeight: ch,
		CellCount:  len(cells),
		Cells:      cells,
	}, nil
}

// TileResult describes one tile of a built mosaic.
type TileResult struct {
	Rect    mosaic.CellRect     `json:"rect"`
	SampleX int                 `json:"sample_x"`
	SampleY int                 `json:"sample_y"`
	Color   imaging.ColorResult `json:"color"`
}

// BuildResult is the output of mosaic_build.
type BuildResult struct {
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Resolution int          `json:"resolution"`
	TileCount  int          `json:"tile_count"`
	Fidelity   float64      `json:"mean_delta_e"`
	Tiles      []TileResult `json:"tiles"`
}

type mosaicBuildArgs struct {
	Path       string `json:"path"`
	Resolution int    `json:"resolution"`
}

func (s *Server) handleMosaicBuild(args json.RawMessage) (interface{}, error) {
	var a mosaicBuildArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	m, err := mosaic.New(img, withDefaultResolution(a.Resolution))
	if err != nil {
		return nil, err
	}

	tiles := make([]TileResult, m.Len())
	for i := range tiles {
		t := m.Tile(i)
		tiles[i] = TileResult{
			Rect:    t.Rect,
			SampleX: t.Sample.X,
			SampleY: t.Sample.Y,
			Color:   imaging.DescribeColor(t.Color),
		}
	}

	return &BuildResult{
		Width:      m.Width(),
		Height:     m.Height(),
		Resolution: m.Resolution(),
		TileCount:  m.Len(),
		Fidelity:   mosaic.Fidelity(img, m),
		Tiles:      tiles,
	}, nil
}

type mosaicRenderArgs struct {
	Path       string `json:"path"`
	Resolution int    `json:"resolution"`
	Format     string `json:"format"`
	Background string `json:"background"`
}

func (s *Server) handleMosaicRender(args json.RawMessage) (interface{}, error) {
	var a mosaicRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Format == "" {
		a.Format = "png"
	}
	if a.Background == "" {
		a.Background = "#FFFFFF"
	}
	bg, err := imaging.ParseHexColor(a.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid background: %w", err)
	}

	m, err := s.buildMosaic(a.Path, a.Resolution)
	if err != nil {
		return nil, err
	}
	return render.Encode(m, a.Format, render.Options{Background: bg})
}

type mosaicOverlayArgs struct {
	Path            string `json:"path"`
	Resolution      int    `json:"resolution"`
	GridColor       string `json:"grid_color"`
	ShowCoordinates bool   `json:"show_coordinates"`
}

func (s *Server) handleMosaicOverlay(args json.RawMessage) (interface{}, error) {
	var a mosaicOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	lineColor := imaging.DefaultOverlayColor
	if a.GridColor != "" {
		c, err := imaging.ParseHexColor(a.GridColor)
		if err != nil {
			return nil, fmt.Errorf("invalid grid_color: %w", err)
		}
		lineColor = c
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	cells, err := mosaic.Partition(img.Bounds().Dx(), img.Bounds().Dy(), withDefaultResolution(a.Resolution))
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(imaging.CellOverlay(img, cells, lineColor, a.ShowCoordinates))
}
