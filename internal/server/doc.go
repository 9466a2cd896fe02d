// Package server exposes mosaic generation to MCP clients as JSON-RPC 2.0
// over stdio, one JSON object per line in each direction.
//
// Tools:
//
//   - image_load: source image metadata
//   - mosaic_partition: the cell grid for a width, height and resolution
//   - mosaic_build: tiles with sample points and colors, plus mean ΔE
//   - mosaic_render: the rendered mosaic, base64 PNG, JPEG, BMP or SVG
//   - mosaic_overlay: cell boundaries drawn over the source image
//
// A failing tool answers with error code -32000 and the Go error string as
// data. Decoded images are cached by path for the life of the process.
package server
