// Package render paints a finished mosaic onto a drawing surface.
//
// A surface is anything implementing Canvas: it can set a fill color,
// disable outlines, and fill an axis-aligned rectangle. Draw clears the
// surface to a background color and fills every tile in order with no
// stroke. Drawing the same mosaic again yields a pixel-identical result, so
// callers may redraw every frame or render once and keep the output.
//
// Two surfaces are provided: RasterCanvas (github.com/fogleman/gg) for
// bitmap output and SVGCanvas (github.com/ajstarks/svgo) for vector output.
// Save picks one from the output file extension.
package render
