package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the source image file",
}

var resolutionProperty = map[string]interface{}{
	"type":        "integer",
	"description": "Number of cells along each image edge (N for an NxN grid). Default 64",
	"default":     64,
	"minimum":     1,
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it has transparency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "mosaic_partition",
			Description: "Compute the integer-pixel cells of an NxN mosaic grid for an image of the given size. Cells are row-major, tile the image exactly, and cells that round to zero area are omitted.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height in pixels",
					},
					"resolution": resolutionProperty,
				},
				"required": []string{"width", "height"},
			},
		},
		{
			Name:        "mosaic_build",
			Description: "Partition an image into an NxN grid and sample one color per cell at the cell's center pixel. Returns every tile with its rectangle, sample point and color, plus the mean CIEDE2000 difference from the source.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty,
					"resolution": resolutionProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "mosaic_render",
			Description: "Render the mosaic of an image as solid rectangles with no outlines and return it base64-encoded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty,
					"resolution": resolutionProperty,
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"png", "jpeg", "bmp", "svg"},
						"description": "Output format. Default png",
						"default":     "png",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background color in hex (#RRGGBB or #RRGGBBAA). Default #FFFFFF",
						"default":     "#FFFFFF",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "mosaic_overlay",
			Description: "Draw the mosaic cell boundaries over the source image and return it as base64-encoded PNG. Useful for checking how the grid falls on the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":       pathProperty,
					"resolution": resolutionProperty,
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Boundary color in hex (#RRGGBB or #RRGGBBAA). Default #FF000080",
						"default":     "#FF000080",
					},
					"show_coordinates": map[string]interface{}{
						"type":        "boolean",
						"description": "Label each cell with its top-left pixel coordinates",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
